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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw, hyphen-separated hunk prefix (may contain "*").
	// It is normalized/validated when the trie is built.
	prefix string
	// val is the numeric transport status to apply when this prefix matches.
	// For HTTP this is the final value; for gRPC the builder stores ints and
	// converts to codes.Code later.
	val int
}

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpConditions holds condition-suffix HTTP defaults that override or
	// extend the library vocabulary.
	httpConditions map[string]int
	// grpcConditions holds condition-suffix gRPC defaults as ints; converted
	// to codes.Code in New().
	grpcConditions map[string]int

	// httpOverride holds exact full-code HTTP overrides (highest tier).
	httpOverride map[string]int
	// grpcOverride holds exact full-code gRPC overrides as ints.
	grpcOverride map[string]int

	// httpPrefixes holds LPM rules for HTTP, compiled into a hunk trie.
	httpPrefixes []prefixRule
	// grpcPrefixes holds LPM rules for gRPC.
	grpcPrefixes []prefixRule

	// global fallbacks used when nothing matches at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized to hold typical
// numbers of entries.
func newBuilder() *builder {
	return &builder{
		// sized roughly to the number of built-in condition defaults
		httpConditions: make(map[string]int, len(defaultHTTP)),
		grpcConditions: make(map[string]int, len(defaultGRPC)),

		// overrides and prefixes are usually few
		httpOverride: make(map[string]int),
		grpcOverride: make(map[string]int),

		// hard fallbacks if the code was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
