/*
   Copyright 2026 The Serum Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx adapts serum error values to and from HTTP responses.
//
// The body is always the canonical serial form produced by the codec, so a
// serum-aware client on the other side can reconstruct the full error value
// with ReadError. The HTTP status is resolved by the provided apis.Mapper.
package httpx

import (
	"encoding/json"
	"io"
	"net/http"

	serum "github.com/serum-errors/serum-go"
	"github.com/serum-errors/serum-go/apis"
	"github.com/serum-errors/serum-go/codec"
)

// Writer is a thin adapter that knows how to turn a serum error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the error's canonical form as the response body and
// resolves the HTTP status via the Mapper.
//
// No automatic redaction or filtering is performed: whatever is present in
// the error is exposed as-is. Higher-level handlers should apply policies
// before calling Write if needed.
func (w Writer) Write(rw http.ResponseWriter, e *serum.Error) {
	if e == nil {
		return
	}

	st := w.Mapper.Status(e.Code())

	body, err := codec.Encode(e)
	if err != nil {
		// Encoding only fails on adversarial depth; degrade to the bare
		// code so the client still gets a classifiable payload.
		body, _ = json.Marshal(map[string]string{"code": e.Code()})
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(body)
}

// ReadError decodes a response body previously produced by Write (or any
// conforming producer) back into an error value. The reader is drained but
// not closed.
func ReadError(r io.Reader) (*serum.Error, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return codec.Decode(data)
}
