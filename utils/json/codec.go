// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

var (
	_ rpc.Codec        = (*codec)(nil)
	_ rpc.CodecRequest = (*codecRequest)(nil)
)

// NewCodec returns a JSON-RPC 2.0 codec that accepts lowercased method names,
// so clients call "hookgate.addAddress" rather than "hookgate.AddAddress".
func NewCodec() rpc.Codec {
	return codec{json2.NewCodec()}
}

type codec struct {
	*json2.Codec
}

func (c codec) NewRequest(r *http.Request) rpc.CodecRequest {
	return codecRequest{c.Codec.NewRequest(r)}
}

type codecRequest struct {
	rpc.CodecRequest
}

// Method returns the method of the request, capitalizing the first letter of
// the function name so it maps to the exported Go method.
func (cr codecRequest) Method() (string, error) {
	method, err := cr.CodecRequest.Method()
	if err != nil {
		return "", err
	}
	service, function, found := strings.Cut(method, ".")
	if !found {
		return method, nil
	}
	runes := []rune(function)
	if len(runes) == 0 {
		return method, nil
	}
	runes[0] = unicode.ToUpper(runes[0])
	return service + "." + string(runes), nil
}
