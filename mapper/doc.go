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

// Package mapper provides deterministic, immutable mappings from serum error
// codes to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// Serum codes are hyphen-separated hunks, conventionally
// "<package>[-error]-<condition>", e.g. "app-error-timeout" or
// "demo-not-found". Transport layers (HTTP handlers, gRPC servers) need to
// turn such a code into concrete status codes. Package mapper does that in a
// way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - prefix-aware — rules can target whole code families by hunk prefix;
//   - condition-aware — a final-hunk vocabulary gives sensible defaults;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the full code;
//  2. longest-prefix-match (LPM) over the code's hunks;
//  3. condition default keyed by the code's final hunk;
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are hunk-aware: codes are treated as "-"-separated hunks, and
// "*" matches exactly one hunk. For example:
//
//	WithHTTPPrefix("app-error", http.StatusBadGateway)
//	WithHTTPPrefix("app-*-storage", http.StatusServiceUnavailable)
//
// The more specific prefix wins.
//
// # Condition defaults
//
// The package ships defaults for conventional condition spellings, keyed by
// the trailing hunks of a code. Two-hunk conditions ("not-found",
// "already-exists", "permission-denied", "rate-limited") are checked before
// single-hunk ones ("timeout", "invalid", "internal", ...), so
// "app-error-not-found" resolves as not-found rather than as a hypothetical
// "found". The vocabulary can be adjusted or extended at build time with
// WithHTTPCondition / WithGRPCCondition.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride("app-error-canceled", 499), // nginx-style
//	    mapper.WithHTTPPrefix("app-error-storage", 503),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status("app-error-storage-timeout")
//	// st.HTTP == 503, st.GRPC per the same resolution
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular code was resolved, including which tier matched and, for
// prefixes, which pattern was used. It is intended for inspection and
// logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps or slices,
// which makes it safe to share a single instance across handlers,
// goroutines, and requests.
package mapper
