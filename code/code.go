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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of an error code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw, unvalidated input with convention-checked values.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every error MUST have a
// non-empty code.
type Code string

const (
	// codeFmt is the canonical regular expression for a conventional code.
	//
	// The pattern is kept in a separate constant so that:
	//   - it can be referenced from tests;
	//   - it is obvious that the regexp below is derived from this exact pattern.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-zA-Z0-9]+ - a hunk: one or more ASCII alphanumerics;
	//	(-[a-zA-Z0-9]+)* - further hunks, each introduced by a single hyphen;
	//	$ - end of string;
	//
	// The pattern forbids leading/trailing hyphens and empty hunks ("--") by
	// construction. Validate uses it as the fast accept path and only scans
	// character by character to classify a failure.
	codeFmt = `^[a-zA-Z0-9]+(-[a-zA-Z0-9]+)*$`
)

var (
	// codeRe is the compiled regular expression used at runtime to check that
	// a string is a conventional serum code.
	//
	// Precompiled so that repeated validations (registries, hot paths) do not
	// pay the compilation cost over and over again.
	//
	// Examples of valid codes:
	//   - "app"
	//   - "app-error-thing"
	//   - "demo-not-found"
	//
	// Examples of invalid codes:
	//   - ""              (empty)
	//   - "-app"          (leading hyphen)
	//   - "app-"          (trailing hyphen)
	//   - "app--thing"    (empty hunk)
	//   - "app error"     (whitespace)
	codeRe = regexp.MustCompile(codeFmt)
)

// ErrCodeFormat is the sentinel that every *Violation unwraps to.
//
// Having a dedicated sentinel makes it easy for callers and tests to detect
// "this is about code format" with errors.Is without inspecting the concrete
// violation kind.
var ErrCodeFormat = errors.New("serum: code format violation")

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// ViolationKind classifies how a candidate code breaks the convention.
type ViolationKind int

const (
	// ViolationEmptyCode means the candidate was the empty string.
	ViolationEmptyCode ViolationKind = iota + 1

	// ViolationDisallowedChar means the candidate contains a character that
	// is neither an ASCII alphanumeric nor a hyphen. Violation.Pos points at
	// the offending byte.
	ViolationDisallowedChar

	// ViolationEdgeHyphen means the candidate starts or ends with a hyphen.
	ViolationEdgeHyphen

	// ViolationEmptyHunk means two hyphens appear back to back, producing an
	// empty hunk.
	ViolationEmptyHunk
)

// String returns a short, stable name for the kind. Used in Violation.Error
// and safe to match on in tests.
func (k ViolationKind) String() string {
	switch k {
	case ViolationEmptyCode:
		return "empty code"
	case ViolationDisallowedChar:
		return "disallowed character"
	case ViolationEdgeHyphen:
		return "leading or trailing hyphen"
	case ViolationEmptyHunk:
		return "empty hunk"
	default:
		return "unknown violation"
	}
}

// Violation is the structured result of a failed convention check.
//
// It carries enough positional information for a caller to point at the
// offending character without re-scanning the candidate.
type Violation struct {
	// Kind says which rule was broken.
	Kind ViolationKind

	// Input is the candidate string as it was passed to Validate.
	Input string

	// Pos is the byte offset of the offending character. It is meaningful
	// for ViolationDisallowedChar and ViolationEmptyHunk, and -1 otherwise.
	Pos int
}

// Error implements the error interface with a one-line diagnostic.
func (v *Violation) Error() string {
	if v == nil {
		return "<nil>"
	}
	if v.Pos >= 0 {
		return fmt.Sprintf("serum: code format violation: %s at offset %d in %q", v.Kind, v.Pos, v.Input)
	}
	return fmt.Sprintf("serum: code format violation: %s in %q", v.Kind, v.Input)
}

// Unwrap lets errors.Is(err, ErrCodeFormat) succeed for any violation.
func (v *Violation) Unwrap() error { return ErrCodeFormat }

// Empty is the zero-value code. It never validates; every serum error must
// carry a non-empty code.
var Empty Code = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// conventional code form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '_' with '-' (to align identifiers from underscore-style systems).
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "-")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a convention-checked Code value.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level code constants in var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks whether the provided string conforms to the recommended
// lexical convention. It returns nil on acceptance, or a *Violation
// describing the first rule broken.
//
// The check is advisory-strength: a failure here never blocks serialization,
// only construction-time linting when the caller opted in.
func Validate(s string) error {
	return validate(s)
}

// IsValid is a convenience wrapper for callers that only need a boolean.
func IsValid(s string) bool { return validate(s) == nil }

// Hunks splits a code into its hyphen-delimited hunks.
// The code is not validated first; Hunks("") returns a single empty hunk,
// mirroring strings.Split.
func Hunks(s string) []string {
	return strings.Split(s, "-")
}

// Condition returns the final hunk of a code, conventionally the most
// specific condition name (e.g. "thing" for "app-error-thing"). For a code
// without hyphens the whole code is returned.
func Condition(s string) string {
	if i := strings.LastIndexByte(s, '-'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// Hunks splits the code into its hyphen-delimited hunks.
func (c Code) Hunks() []string { return Hunks(string(c)) }

// Condition returns the final hunk of the code.
func (c Code) Condition() string { return Condition(string(c)) }

// MarshalText implements encoding.TextMarshaler.
//
// It refuses to marshal codes that break the convention, so that typed Code
// values never leak malformed identifiers into payloads. Raw foreign codes
// should stay plain strings and go through the codec instead.
func (c Code) MarshalText() ([]byte, error) {
	if err := validate(string(c)); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate checks the candidate against the convention and classifies the
// first failure. The happy path is a single regexp match; the scan below
// only runs for rejected candidates.
func validate(s string) error {
	if codeRe.MatchString(s) {
		return nil
	}
	if s == "" {
		return &Violation{Kind: ViolationEmptyCode, Input: s, Pos: -1}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return &Violation{Kind: ViolationEdgeHyphen, Input: s, Pos: -1}
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '-' {
			if i+1 < len(s) && s[i+1] == '-' {
				return &Violation{Kind: ViolationEmptyHunk, Input: s, Pos: i + 1}
			}
			continue
		}
		if !isAlphanumeric(ch) {
			return &Violation{Kind: ViolationDisallowedChar, Input: s, Pos: i}
		}
	}
	// Unreachable for inputs rejected by codeRe, kept as a safety net.
	return &Violation{Kind: ViolationDisallowedChar, Input: s, Pos: -1}
}

// isAlphanumeric reports whether ch is an ASCII letter or digit.
func isAlphanumeric(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}
