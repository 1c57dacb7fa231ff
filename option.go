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

package serum

import (
	"fmt"

	"github.com/serum-errors/serum-go/code"
)

// Option configures an Error during construction via New. Options run in
// order against the not-yet-published value and may reject it with an error.
type Option func(*Error) error

// WithMessage sets the human-readable message (present, possibly empty).
func WithMessage(msg string) Option {
	return func(e *Error) error {
		e.message = &msg
		return nil
	}
}

// WithMessagef sets the message from a fmt format string.
func WithMessagef(format string, args ...any) Option {
	return WithMessage(fmt.Sprintf(format, args...))
}

// WithDetail adds a single detail key/value. Details become present.
func WithDetail(k, v string) Option {
	return func(e *Error) error {
		if e.details == nil {
			e.details = make(map[string]string, 1)
		}
		e.details[k] = v
		return nil
	}
}

// WithDetails merges kv into the details, kv winning on key conflicts.
// A non-nil empty map marks details present without adding entries, which is
// preserved through serialization; nil is a no-op.
func WithDetails(kv map[string]string) Option {
	return func(e *Error) error {
		if kv == nil {
			return nil
		}
		if e.details == nil {
			e.details = make(map[string]string, len(kv))
		}
		for k, v := range kv {
			e.details[k] = v
		}
		return nil
	}
}

// WithCause appends causes in order. Each cause must be non-nil; the value
// under construction cannot be reached from a fresh New call, so no cycle is
// possible here, but nil causes are rejected with ErrInvalidValue.
func WithCause(causes ...*Error) Option {
	return func(e *Error) error {
		for i, c := range causes {
			if c == nil {
				return fmt.Errorf("%w: nil cause at index %d", ErrInvalidValue, i)
			}
		}
		e.causes = append(e.causes, causes...)
		return nil
	}
}

// WithValidation opts in to the advisory lexical convention check: New fails
// with a *code.Violation if the code does not conform. Without this option
// any non-empty code is accepted, so foreign codes can be represented.
func WithValidation() Option {
	return func(e *Error) error {
		return code.Validate(e.code)
	}
}
