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

// Package serum implements structured errors as plain, immutable values
// identified by a stable string code.
//
// An Error carries:
//   - Code: required, non-empty string identity of the error kind. This is
//     the only field programs branch on.
//   - Message: optional human-readable prose. A present-but-empty message is
//     legal and distinct from an absent one.
//   - Details: optional string-to-string annotations for machine consumption.
//     Presence is preserved: an explicitly set empty map stays present.
//   - Causes: optional ordered sequence of upstream Errors, forming a tree.
//
// Errors are immutable after construction; the WithX helpers return copies
// and never modify the receiver, so values can be shared freely across
// goroutines without synchronization.
package serum

import (
	"errors"
	"fmt"

	"github.com/serum-errors/serum-go/code"
)

// ErrInvalidValue is the sentinel for construction-time violations: an empty
// code, a nil cause, or a cause chain that would contain the value itself.
var ErrInvalidValue = errors.New("serum: invalid error value")

// Error is the canonical serum error value.
//
// The fields are unexported so that presence state (message set vs. absent,
// details set vs. absent) cannot be corrupted after construction and so the
// value stays immutable. Use the accessors; they return defensive copies
// where the underlying data is mutable.
type Error struct {
	// code is the sole classification field. Always non-empty.
	code string

	// message is nil when absent. A pointer to "" is present-but-empty,
	// which serializes differently from absent.
	message *string

	// details is nil when absent. A non-nil empty map is present-but-empty
	// and serializes as {}.
	details map[string]string

	// causes is the ordered cause sequence. nil/empty means no causes.
	// Each element is a full, immutable Error owned by this node.
	causes []*Error
}

// New constructs an Error with the given code, applying the provided options
// in order.
//
// Usage:
//
//	return serum.New("app-error-readfile",
//	    serum.WithMessage("config file unreadable"),
//	    serum.WithDetail("path", "/etc/app.toml"),
//	    serum.WithCause(cause),
//	)
//
// It fails with ErrInvalidValue if the code is empty or a cause is nil, and
// with a code.Violation if WithValidation was requested and the code breaks
// the lexical convention.
func New(codeStr string, opts ...Option) (*Error, error) {
	if codeStr == "" {
		return nil, fmt.Errorf("%w: empty code", ErrInvalidValue)
	}
	e := &Error{code: codeStr}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// MustNew is the panic-on-error variant of New. It is useful for declaring
// package-level error prototypes in var blocks, where the inputs are
// compile-time constants.
func MustNew(codeStr string, opts ...Option) *Error {
	e, err := New(codeStr, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Code returns the error's code. Never empty.
func (e *Error) Code() string { return e.code }

// Message returns the message and whether it is present. A present message
// may still be the empty string.
func (e *Error) Message() (string, bool) {
	if e.message == nil {
		return "", false
	}
	return *e.message, true
}

// Details returns a copy of the details map and whether details are present.
// A present map may be empty. The returned map is the caller's to mutate.
func (e *Error) Details() (map[string]string, bool) {
	if e.details == nil {
		return nil, false
	}
	out := make(map[string]string, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out, true
}

// Detail returns a single detail value by key.
func (e *Error) Detail(key string) (string, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Causes returns a copy of the cause sequence. The elements themselves are
// immutable and shared, so only the slice header is copied. Returns nil when
// there are no causes.
func (e *Error) Causes() []*Error {
	if len(e.causes) == 0 {
		return nil
	}
	out := make([]*Error, len(e.causes))
	copy(out, e.causes)
	return out
}

// Error implements the built-in error interface by rendering the value with
// the default Renderer. See Render for the exact rule set.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return Render(e)
}

// Unwrap exposes the causes to errors.Is / errors.As using the multi-error
// form understood by the standard library since Go 1.20. Returns nil when
// there are no causes.
func (e *Error) Unwrap() []error {
	if len(e.causes) == 0 {
		return nil
	}
	out := make([]error, len(e.causes))
	for i, c := range e.causes {
		out[i] = c
	}
	return out
}

// ErrorCode implements the code-accessor capability (apis.CodedError), so
// foreign tooling can classify a serum error without importing this package's
// concrete type.
func (e *Error) ErrorCode() string { return e.code }

// ErrorMessage implements apis.MessagedError.
func (e *Error) ErrorMessage() (string, bool) { return e.Message() }

// ErrorDetails implements apis.DetailedError.
func (e *Error) ErrorDetails() (map[string]string, bool) { return e.Details() }

// ErrorCauses implements apis.CausedError.
func (e *Error) ErrorCauses() []error {
	if len(e.causes) == 0 {
		return nil
	}
	out := make([]error, len(e.causes))
	for i, c := range e.causes {
		out[i] = c
	}
	return out
}

// WithMessage returns a copy of e with the message set (present). The
// original is not modified.
func (e *Error) WithMessage(msg string) *Error {
	cp := e.clone()
	cp.message = &msg
	return cp
}

// WithDetail returns a copy of e with one extra key/value in details.
// Details become present even if they were absent before.
//
// The method always copies the map to preserve immutability.
func (e *Error) WithDetail(k, v string) *Error {
	cp := e.clone()
	m := make(map[string]string, len(cp.details)+1)
	for k0, v0 := range cp.details {
		m[k0] = v0
	}
	m[k] = v
	cp.details = m
	return cp
}

// WithDetails returns a copy of e with kv merged into details, kv taking
// precedence on key conflicts. Passing a non-nil empty map marks details
// present without adding entries; passing nil is a no-op.
func (e *Error) WithDetails(kv map[string]string) *Error {
	if kv == nil {
		return e
	}
	cp := e.clone()
	m := make(map[string]string, len(cp.details)+len(kv))
	for k0, v0 := range cp.details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.details = m
	return cp
}

// WithCause returns a copy of e with the given causes appended, preserving
// order. It fails with ErrInvalidValue if any cause is nil or if attaching
// would make the value transitively contain itself.
func (e *Error) WithCause(causes ...*Error) (*Error, error) {
	if len(causes) == 0 {
		return e, nil
	}
	for i, c := range causes {
		if c == nil {
			return nil, fmt.Errorf("%w: nil cause at index %d", ErrInvalidValue, i)
		}
		if reaches(c, e) {
			return nil, fmt.Errorf("%w: cause at index %d would create a cycle", ErrInvalidValue, i)
		}
	}
	cp := e.clone()
	cp.causes = append(append([]*Error(nil), cp.causes...), causes...)
	return cp, nil
}

// SameKind reports whether two errors are the same error kind: equality on
// code alone. Messages, details and causes do not participate.
func SameKind(a, b *Error) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.code == b.code
}

// Equal reports structural equality: identical code, identical presence and
// content of message and details, and pairwise-Equal causes in the same
// order. This is the equality the codec round-trip law is stated in.
func Equal(a, b *Error) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.code != b.code {
		return false
	}
	if (a.message == nil) != (b.message == nil) {
		return false
	}
	if a.message != nil && *a.message != *b.message {
		return false
	}
	if (a.details == nil) != (b.details == nil) {
		return false
	}
	if len(a.details) != len(b.details) {
		return false
	}
	for k, v := range a.details {
		if bv, ok := b.details[k]; !ok || bv != v {
			return false
		}
	}
	if len(a.causes) != len(b.causes) {
		return false
	}
	for i := range a.causes {
		if !Equal(a.causes[i], b.causes[i]) {
			return false
		}
	}
	return true
}

// CodeOf extracts the code of the first error in err's chain that carries
// one (a *Error or anything implementing the ErrorCode capability).
// Returns "" if none is found.
func CodeOf(err error) string {
	var coded interface{ ErrorCode() string }
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return ""
}

// IsCode reports whether any error in err's chain carries the given code.
func IsCode(err error, codeStr string) bool {
	return codeStr != "" && CodeOf(err) == codeStr
}

// Validate runs the advisory lexical convention check against the error's
// code. It returns nil or a *code.Violation; it never inspects other fields.
func (e *Error) Validate() error {
	return code.Validate(e.code)
}

// clone makes a shallow copy of e. Callers replace whichever field they are
// changing with a fresh copy before publishing.
func (e *Error) clone() *Error {
	cp := *e
	return &cp
}

// reaches reports whether target is reachable from root through the cause
// tree. The walk uses an explicit stack and a visited set, so shared
// substructure and adversarial depth cannot grow the call stack.
func reaches(root, target *Error) bool {
	if root == target {
		return true
	}
	stack := []*Error{root}
	visited := map[*Error]struct{}{}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[n]; ok {
			continue
		}
		visited[n] = struct{}{}
		for _, c := range n.causes {
			if c == target {
				return true
			}
			stack = append(stack, c)
		}
	}
	return false
}
