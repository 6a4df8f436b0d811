// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msgpack2

import (
	"github.com/pkg/errors"
)

type ErrorCode int

const (
	ErrParse      ErrorCode = -32700
	ErrInvalidReq ErrorCode = -32600
	ErrNoMethod   ErrorCode = -32601
	ErrBadParams  ErrorCode = -32602
	ErrInternal   ErrorCode = -32603
	ErrServer     ErrorCode = -32000
)

var ErrNullResult = errors.New("result is null")

// Error is the error object of a failed call.
type Error struct {
	Code    ErrorCode   `msgpack:"code"`
	Message string      `msgpack:"message"`
	Data    interface{} `msgpack:"data"`
}

// NewError reports err as a server error.
func NewError(err error) *Error {
	return &Error{Code: ErrServer, Message: err.Error()}
}

func (e *Error) Error() string {
	return e.Message
}
