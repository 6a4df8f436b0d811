// This is a copy from gorilla's jsonrpc2 using msgpack
//
// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2012 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msgpack2

import (
	"net/http"

	rpc "github.com/alpacahq/rpc/rpc2"
	msgpack "github.com/vmihailenco/msgpack"
)

// Version is the protocol version carried in every message.
const Version = "2.0"

// serverRequest is a JSON-RPC 2.0 shaped request encoded with msgpack.
type serverRequest struct {
	Version string      `msgpack:"jsonrpc"`
	Method  string      `msgpack:"method"`
	Params  interface{} `msgpack:"params"`
	ID      interface{} `msgpack:"id"`
}

type serverResponse struct {
	Version string      `msgpack:"jsonrpc"`
	Result  interface{} `msgpack:"result,omitempty"`
	Error   *Error      `msgpack:"error,omitempty"`
	ID      interface{} `msgpack:"id"`
}

// Codec creates a CodecRequest to process each request.
type Codec struct{}

// NewCodec returns a new msgpack Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// NewRequest returns a CodecRequest.
func (c *Codec) NewRequest(r *http.Request) rpc.CodecRequest {
	req := new(serverRequest)
	err := msgpack.NewDecoder(r.Body).Decode(req)
	if err != nil {
		err = &Error{Code: ErrParse, Message: err.Error()}
	} else if req.Version != Version {
		err = &Error{
			Code:    ErrInvalidReq,
			Message: "jsonrpc must be " + Version,
		}
	}
	_ = r.Body.Close()
	return &CodecRequest{request: req, err: err}
}

// CodecRequest decodes and encodes a single request.
type CodecRequest struct {
	request *serverRequest
	err     error
}

// Method returns the RPC method for the current request.
func (c *CodecRequest) Method() (string, error) {
	if c.err == nil {
		return c.request.Method, nil
	}
	return "", c.err
}

// ReadRequest fills the request object for the RPC method.
//
// Params may be sent by name as a map, or by position as an array whose
// first element holds the arguments.
func (c *CodecRequest) ReadRequest(args interface{}) error {
	if c.err != nil || c.request.Params == nil {
		return c.err
	}

	encoded, err := msgpack.Marshal(c.request.Params)
	if err != nil {
		c.err = &Error{Code: ErrInvalidReq, Message: err.Error()}
		return c.err
	}
	if positional, ok := c.request.Params.([]interface{}); ok {
		if len(positional) == 0 {
			return nil
		}
		if encoded, err = msgpack.Marshal(positional[0]); err != nil {
			c.err = &Error{Code: ErrInvalidReq, Message: err.Error()}
			return c.err
		}
	}
	if err := msgpack.Unmarshal(encoded, args); err != nil {
		c.err = &Error{Code: ErrBadParams, Message: err.Error()}
	}
	return c.err
}

// WriteResponse encodes the response and writes it to the ResponseWriter.
func (c *CodecRequest) WriteResponse(w http.ResponseWriter, reply interface{}) {
	c.writeServerResponse(w, &serverResponse{
		Version: Version,
		Result:  reply,
		ID:      c.request.ID,
	})
}

// WriteError encodes err as an error object. Errors that are not already an
// *Error are reported as server errors.
func (c *CodecRequest) WriteError(w http.ResponseWriter, _ int, err error) {
	rpcErr, ok := err.(*Error)
	if !ok {
		rpcErr = NewError(err)
	}
	c.writeServerResponse(w, &serverResponse{
		Version: Version,
		Error:   rpcErr,
		ID:      c.request.ID,
	})
}

func (c *CodecRequest) writeServerResponse(w http.ResponseWriter, res *serverResponse) {
	// Notifications carry no id and get no reply body.
	if c.request.ID == nil && c.err == nil {
		return
	}
	w.Header().Set("Content-Type", "application/x-msgpack")
	if err := msgpack.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
