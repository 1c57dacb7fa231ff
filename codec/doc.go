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

// Package codec converts serum error values to and from their canonical
// serial representation.
//
// The canonical schema (field names and types are normative):
//
//	Error:
//	  code:    string              (required)
//	  message: string              (optional)
//	  details: map<string,string>  (optional)
//	  cause:   list<Error>         (optional)
//
// Emission rules:
//
//   - code is always emitted;
//   - message is emitted only when present — a present-but-empty message is
//     legal and distinct from an absent one;
//   - details are emitted whenever present, including as an empty map when
//     the producer explicitly set one;
//   - cause is emitted only when non-empty, always as a list, even for a
//     single cause.
//
// JSON output uses the canonical display order code, message, details, cause
// so snapshot tests stay deterministic.
//
// Parsing tolerates unknown extra fields (they are dropped, not an error) so
// producers can add informational fields without breaking older consumers.
// Parse failures carry a positional cause path such as "cause[2].cause[0]"
// pointing at the malformed node, with the innermost structured reason
// preserved for errors.Is.
//
// Round-trip law: Deserialize(Serialize(e)) is serum.Equal to e for every
// valid value, including presence/absence distinctions.
//
// All recursive walks are bounded by MaxDepth so adversarial deeply nested
// input cannot grow the stack without limit.
package codec
