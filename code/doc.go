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

// Package code provides validation and normalization for serum error codes.
//
// A "code" is the stable, machine-readable identity of an error kind, such
// as "app-error-parse" or "demo-not-found". Codes are meant to be:
//
//   - short and stable;
//   - composed of ASCII alphanumerics;
//   - hyphen-separated into "hunks" (no leading/trailing hyphen, no empty hunk);
//   - free of whitespace and characters that need escaping in delimiter-based
//     tooling (grep, cut, log pipelines).
//
// The recommended (not enforced) hunk structure is: the first hunk names the
// producing package or application, an optional second hunk is the literal
// "error", and the remaining hunks name the specific condition. For example
// "app-error-invalid-flag" or "app-invalid-flag".
//
// IMPORTANT: validation here is advisory-strength. The serum codec accepts
// and serializes any non-empty string as a code, because systems regularly
// relay codes minted elsewhere. Use this package as an opt-in guard so that
// programmatically generated codes do not drift from the convention.
package code
