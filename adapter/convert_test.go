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

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	serum "github.com/serum-errors/serum-go"
	"github.com/serum-errors/serum-go/apis"
	"google.golang.org/grpc/codes"
)

// codedOnly is a foreign error carrying just the code capability.
type codedOnly struct {
	code string
	msg  string
}

func (e *codedOnly) Error() string     { return e.msg }
func (e *codedOnly) ErrorCode() string { return e.code }

// fullCaps is a foreign error exposing every accessor capability.
type fullCaps struct {
	code    string
	message string
	details map[string]string
	causes  []error
}

func (e *fullCaps) Error() string                           { return e.code + ": " + e.message }
func (e *fullCaps) ErrorCode() string                       { return e.code }
func (e *fullCaps) ErrorMessage() (string, bool)            { return e.message, true }
func (e *fullCaps) ErrorDetails() (map[string]string, bool) { return e.details, e.details != nil }
func (e *fullCaps) ErrorCauses() []error                    { return e.causes }

var (
	_ apis.CodedError    = (*fullCaps)(nil)
	_ apis.MessagedError = (*fullCaps)(nil)
	_ apis.DetailedError = (*fullCaps)(nil)
	_ apis.CausedError   = (*fullCaps)(nil)
)

func TestFrom_SerumPassthrough(t *testing.T) {
	e := serum.MustNew("app-x")
	got, ok := From(e)
	if !ok || got != e {
		t.Fatal("a serum value must pass through unchanged")
	}

	// Also when buried in a wrap chain.
	got, ok = From(fmt.Errorf("context: %w", e))
	if !ok || got != e {
		t.Fatal("a wrapped serum value must be extracted")
	}
}

func TestFrom_CodedOnly(t *testing.T) {
	e, ok := From(&codedOnly{code: "legacy-error-io", msg: "disk on fire"})
	if !ok {
		t.Fatal("coded error must convert")
	}
	if e.Code() != "legacy-error-io" {
		t.Fatalf("Code = %q", e.Code())
	}
	// Without a message capability, Error() becomes the message.
	if msg, present := e.Message(); !present || msg != "disk on fire" {
		t.Fatalf("Message = %q, %v", msg, present)
	}
}

func TestFrom_FullCapabilities(t *testing.T) {
	foreign := &fullCaps{
		code:    "legacy-error-db",
		message: "query failed",
		details: map[string]string{"table": "users"},
		causes: []error{
			&codedOnly{code: "pg-error-connect", msg: "refused"},
			errors.New("also this"),
		},
	}

	e, ok := From(foreign)
	if !ok {
		t.Fatal("full-capability error must convert")
	}
	if e.Code() != "legacy-error-db" {
		t.Fatalf("Code = %q", e.Code())
	}
	if msg, _ := e.Message(); msg != "query failed" {
		t.Fatalf("Message = %q", msg)
	}
	if v, _ := e.Detail("table"); v != "users" {
		t.Fatalf("Detail = %q", v)
	}

	causes := e.Causes()
	if len(causes) != 2 {
		t.Fatalf("causes = %d, want 2", len(causes))
	}
	if causes[0].Code() != "pg-error-connect" {
		t.Fatalf("cause[0].Code = %q", causes[0].Code())
	}
	// Codeless nested causes fall back to the unknown code, keeping their
	// message.
	if causes[1].Code() != UnknownCode {
		t.Fatalf("cause[1].Code = %q, want %q", causes[1].Code(), UnknownCode)
	}
	if msg, _ := causes[1].Message(); msg != "also this" {
		t.Fatalf("cause[1].Message = %q", msg)
	}
}

func TestFrom_NotConvertible(t *testing.T) {
	if _, ok := From(nil); ok {
		t.Fatal("nil must not convert")
	}
	if _, ok := From(errors.New("plain")); ok {
		t.Fatal("plain error must not convert")
	}
	if _, ok := From(&codedOnly{code: "", msg: "empty code"}); ok {
		t.Fatal("empty code must not convert")
	}
}

func TestEnsure(t *testing.T) {
	if Ensure(nil, "app-x") != nil {
		t.Fatal("nil in, nil out")
	}

	e := serum.MustNew("app-x")
	if Ensure(e, "other") != e {
		t.Fatal("serum values must pass through")
	}

	got := Ensure(errors.New("boom"), "app-error-unknown")
	if got.Code() != "app-error-unknown" {
		t.Fatalf("Code = %q", got.Code())
	}
	if msg, _ := got.Message(); msg != "boom" {
		t.Fatalf("Message = %q", msg)
	}

	// Empty fallback degrades to the package default, never panics.
	got = Ensure(errors.New("boom"), "")
	if got.Code() != UnknownCode {
		t.Fatalf("Code = %q, want %q", got.Code(), UnknownCode)
	}
}

func TestToDescriptor(t *testing.T) {
	e := serum.MustNew("app-error-not-found",
		serum.WithMessage("no such widget"),
		serum.WithDetail("widget", "w-17"),
		serum.WithCause(serum.MustNew("pg-error-norows"), serum.MustNew("cache-miss")),
	)
	st := apis.Status{HTTP: http.StatusNotFound, GRPC: codes.NotFound}

	d := ToDescriptor(e, st)
	want := apis.ErrorDescriptor{
		Code:       "app-error-not-found",
		Message:    "no such widget",
		Details:    map[string]string{"widget": "w-17"},
		CauseCodes: []string{"pg-error-norows", "cache-miss"},
		HTTPStatus: http.StatusNotFound,
		GRPCCode:   int(codes.NotFound),
	}
	if !reflect.DeepEqual(d, want) {
		t.Fatalf("ToDescriptor =\n  %+v\nwant\n  %+v", d, want)
	}

	if !reflect.DeepEqual(ToDescriptor(nil, st), apis.ErrorDescriptor{}) {
		t.Fatal("nil error must yield the zero descriptor")
	}
}
