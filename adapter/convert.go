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

// Package adapter converts between native Go errors and serum error values.
//
// Conversion is capability-based: any error exposing the apis accessor
// interfaces (ErrorCode and friends) is adapted field by field, never by
// type hierarchy. This is how foreign error representations join the serum
// model without cross-module type coordination.
package adapter

import (
	"errors"

	serum "github.com/serum-errors/serum-go"
	"github.com/serum-errors/serum-go/apis"
)

// UnknownCode is the code given to nested causes that carry no code of
// their own when a capability-bearing error is adapted.
const UnknownCode = "unknown"

// From converts err into a serum error value, if it (or anything in its
// chain) carries the code capability.
//
//   - a *serum.Error is returned as-is (same pointer);
//   - an apis.CodedError is rebuilt field by field from whichever of the
//     optional capabilities (message, details, causes) it also implements;
//     nested causes are adapted recursively, non-convertible ones becoming
//     UnknownCode values that keep their Error() string as the message;
//   - anything else yields (nil, false).
func From(err error) (*serum.Error, bool) {
	if err == nil {
		return nil, false
	}

	var se *serum.Error
	if errors.As(err, &se) {
		return se, true
	}

	var coded apis.CodedError
	if !errors.As(err, &coded) {
		return nil, false
	}
	if coded.ErrorCode() == "" {
		return nil, false
	}

	opts := make([]serum.Option, 0, 3)
	if me, ok := coded.(apis.MessagedError); ok {
		if msg, present := me.ErrorMessage(); present {
			opts = append(opts, serum.WithMessage(msg))
		}
	} else {
		opts = append(opts, serum.WithMessage(coded.Error()))
	}
	if de, ok := coded.(apis.DetailedError); ok {
		if det, present := de.ErrorDetails(); present {
			opts = append(opts, serum.WithDetails(nonNil(det)))
		}
	}
	if ce, ok := coded.(apis.CausedError); ok {
		if causes := ce.ErrorCauses(); len(causes) > 0 {
			converted := make([]*serum.Error, 0, len(causes))
			for _, c := range causes {
				converted = append(converted, Ensure(c, UnknownCode))
			}
			opts = append(opts, serum.WithCause(converted...))
		}
	}

	e, cerr := serum.New(coded.ErrorCode(), opts...)
	if cerr != nil {
		return nil, false
	}
	return e, true
}

// Ensure converts any error to a serum value, falling back to the given
// code for errors that carry none.
//
// Behavior:
//   - nil input => nil output
//   - convertible via From => that value
//   - otherwise a new value with the fallback code and the error's string
//     as its message
func Ensure(err error, fallbackCode string) *serum.Error {
	if err == nil {
		return nil
	}
	if e, ok := From(err); ok {
		return e
	}
	if fallbackCode == "" {
		fallbackCode = UnknownCode
	}
	return serum.MustNew(fallbackCode, serum.WithMessage(err.Error()))
}

// ToDescriptor flattens a serum error together with its resolved transport
// status into a portable descriptor for structured logging, tracing, or
// message-bus propagation.
func ToDescriptor(e *serum.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Code:       e.Code(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
	if msg, ok := e.Message(); ok {
		d.Message = msg
	}
	if det, ok := e.Details(); ok && len(det) > 0 {
		d.Details = det
	}
	for _, c := range e.Causes() {
		d.CauseCodes = append(d.CauseCodes, c.Code())
	}
	return d
}

// nonNil keeps present-but-empty details present when rebuilding.
func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
