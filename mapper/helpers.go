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

import "google.golang.org/grpc/codes"

// freezeHTTP makes an immutable copy of an HTTP status map. Used when
// finalizing the mapper so later mutations to the builder (or caller-owned
// maps) cannot affect the snapshot. Empty maps normalize to nil to simplify
// nil checks.
func freezeHTTP(src map[string]int) map[string]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a gRPC status map, converting
// builder-style int values into typed gRPC codes.
func freezeGRPC(src map[string]int) map[string]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}
