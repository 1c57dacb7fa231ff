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

package apis

// CodedError represents an error classified by a stable, machine-readable
// code such as "app-error-readfile".
//
// The code is the sole field used for programmatic branching. Codes are
// intended to be stable and enumerable, so callers can reason about the full
// set of codes a boundary may produce (see the codeset package).
//
// Implementations SHOULD return codes that follow the lexical convention
// enforced by the code package (alphanumeric hunks separated by hyphens),
// but consumers MUST tolerate foreign codes that do not.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	//
	// The returned value MUST be non-empty. Callers should not try to "fix"
	// or "guess" an empty value here — treat it as an internal error at the
	// boundary instead.
	ErrorCode() string
}

// MessagedError represents an error that carries free-form human prose in
// addition to its code.
//
// The message is never parsed programmatically and may duplicate information
// found in the details.
type MessagedError interface {
	error

	// ErrorMessage returns the human-readable message and whether one is
	// present. A present message may be empty; the distinction matters for
	// faithful re-serialization.
	ErrorMessage() (string, bool)
}

// DetailedError represents an error that exposes flat, string-valued
// machine-oriented annotations (offending field names, numeric values as
// strings, and so on).
//
// Details are never used for control flow. Implementations MUST return a map
// that is safe for the caller to keep and mutate (a defensive copy), and
// MUST report presence separately so an explicitly empty map survives
// round-trips.
type DetailedError interface {
	error

	// ErrorDetails returns the annotations and whether details are present.
	ErrorDetails() (map[string]string, bool)
}

// CausedError represents an error that exposes the ordered sequence of
// upstream errors that led to it.
//
// While Go 1.20 introduced Unwrap() []error, having this interface keeps the
// contract explicit for adapters that need the causes as values rather than
// through errors.Is / errors.As traversal.
type CausedError interface {
	error

	// ErrorCauses returns the direct causes in order. May return nil.
	ErrorCauses() []error
}
