// This is a copy from gorilla's jsonrpc2 using msgpack
//
// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msgpack2

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"
	msgpack "github.com/vmihailenco/msgpack"
)

type clientRequest struct {
	Version string      `msgpack:"jsonrpc"`
	Method  string      `msgpack:"method"`
	Params  interface{} `msgpack:"params"`
	// ID matches the response with its request.
	ID uint64 `msgpack:"id"`
}

type clientResponse struct {
	Version string      `msgpack:"jsonrpc"`
	Result  interface{} `msgpack:"result"`
	Error   interface{} `msgpack:"error"`
	ID      interface{} `msgpack:"id"`
}

// EncodeClientRequest encodes parameters for a client request.
func EncodeClientRequest(method string, args interface{}) ([]byte, error) {
	c := &clientRequest{
		Version: Version,
		Method:  method,
		Params:  args,
		ID:      uint64(rand.Int63()),
	}
	return msgpack.Marshal(c)
}

// DecodeClientResponse decodes the response body of a client request into
// reply. A failed call is returned as an *Error.
func DecodeClientResponse(r io.Reader, reply interface{}) error {
	var c clientResponse
	if err := msgpack.NewDecoder(r).Decode(&c); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	if c.Error != nil {
		encoded, err := msgpack.Marshal(c.Error)
		if err != nil {
			return err
		}
		msgErr := &Error{}
		if err = msgpack.Unmarshal(encoded, msgErr); err != nil {
			return &Error{
				Code:    ErrServer,
				Message: string(encoded),
			}
		}
		return msgErr
	}

	if c.Result == nil {
		return ErrNullResult
	}

	encoded, err := msgpack.Marshal(c.Result)
	if err != nil {
		return err
	}
	return msgpack.Unmarshal(encoded, reply)
}
