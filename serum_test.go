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
	"errors"
	"testing"

	"github.com/serum-errors/serum-go/code"
)

func TestNew_Basics(t *testing.T) {
	e, err := New("app-error-readfile",
		WithMessage("config file unreadable"),
		WithDetail("path", "/etc/app.toml"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.Code() != "app-error-readfile" {
		t.Fatal("code mismatch")
	}
	msg, ok := e.Message()
	if !ok || msg != "config file unreadable" {
		t.Fatalf("message = %q, %v", msg, ok)
	}
	if v, ok := e.Detail("path"); !ok || v != "/etc/app.toml" {
		t.Fatal("detail missing")
	}
	if e.Causes() != nil {
		t.Fatal("unexpected causes")
	}
}

func TestNew_EmptyCode(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("want ErrInvalidValue, got %v", err)
	}
}

func TestNew_NilCause(t *testing.T) {
	if _, err := New("app-x", WithCause(nil)); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("want ErrInvalidValue, got %v", err)
	}
}

func TestNew_ForeignCodeAccepted(t *testing.T) {
	// Without WithValidation any non-empty string is a legal code.
	e, err := New("Weird Code!!")
	if err != nil {
		t.Fatalf("foreign code must be accepted: %v", err)
	}
	if e.Code() != "Weird Code!!" {
		t.Fatal("code mangled")
	}
}

func TestNew_WithValidation(t *testing.T) {
	if _, err := New("app-error-thing", WithValidation()); err != nil {
		t.Fatalf("conventional code must pass: %v", err)
	}
	_, err := New("app--thing", WithValidation())
	if !errors.Is(err, code.ErrCodeFormat) {
		t.Fatalf("want code format violation, got %v", err)
	}
}

func TestPresence_MessageAndDetails(t *testing.T) {
	e := MustNew("app-x")
	if _, ok := e.Message(); ok {
		t.Fatal("message must be absent by default")
	}
	if _, ok := e.Details(); ok {
		t.Fatal("details must be absent by default")
	}

	// Present-but-empty message is distinct from absent.
	e2 := MustNew("app-x", WithMessage(""))
	if msg, ok := e2.Message(); !ok || msg != "" {
		t.Fatal("empty message must be present")
	}

	// Explicitly set empty details stay present.
	e3 := MustNew("app-x", WithDetails(map[string]string{}))
	if det, ok := e3.Details(); !ok || len(det) != 0 {
		t.Fatal("empty details must be present")
	}

	// Nil map is a no-op, not presence.
	e4 := MustNew("app-x", WithDetails(nil))
	if _, ok := e4.Details(); ok {
		t.Fatal("nil details must stay absent")
	}
}

func TestImmutability_CopyOnWrite(t *testing.T) {
	e1 := MustNew("app-x").WithDetail("k1", "1")
	e2 := e1.WithDetail("k2", "2")

	d1, _ := e1.Details()
	d2, _ := e2.Details()
	if len(d1) != 1 || len(d2) != 2 {
		t.Fatal("details size mismatch")
	}
	if _, ok := d1["k2"]; ok {
		t.Fatal("original mutated")
	}

	// Accessor copies are detached from the value.
	d2["k3"] = "3"
	if _, ok := e2.Detail("k3"); ok {
		t.Fatal("accessor leaked internal map")
	}
}

func TestWithDetails_Merge(t *testing.T) {
	e := MustNew("app-x").WithDetails(map[string]string{"a": "1"})
	e2 := e.WithDetails(map[string]string{"b": "2", "a": "3"})
	if v, _ := e.Detail("a"); v != "1" {
		t.Fatal("original mutated")
	}
	if va, _ := e2.Detail("a"); va != "3" {
		t.Fatal("merge precedence wrong")
	}
	if vb, _ := e2.Detail("b"); vb != "2" {
		t.Fatal("merge failed")
	}
}

func TestWithCause_OrderAndUnwrap(t *testing.T) {
	c1 := MustNew("app-inner-first")
	c2 := MustNew("app-inner-second")
	e, err := MustNew("app-outer").WithCause(c1, c2)
	if err != nil {
		t.Fatalf("WithCause: %v", err)
	}

	causes := e.Causes()
	if len(causes) != 2 || causes[0] != c1 || causes[1] != c2 {
		t.Fatal("cause order not preserved")
	}
	if !errors.Is(e, c1) || !errors.Is(e, c2) {
		t.Fatal("errors.Is must see all causes")
	}
}

func TestCycleRejection(t *testing.T) {
	e := MustNew("app-x")

	// Direct self-attachment.
	if _, err := e.WithCause(e); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("self cause must fail with ErrInvalidValue, got %v", err)
	}

	// Transitive: e is buried inside another tree.
	mid := MustNew("app-mid", WithCause(e))
	outer := MustNew("app-outer", WithCause(mid))
	if _, err := e.WithCause(outer); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("transitive cycle must fail, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Error
		want bool
	}{
		{"same minimal", MustNew("x"), MustNew("x"), true},
		{"different code", MustNew("x"), MustNew("y"), false},
		{"absent vs empty message", MustNew("x"), MustNew("x", WithMessage("")), false},
		{"same message", MustNew("x", WithMessage("m")), MustNew("x", WithMessage("m")), true},
		{"absent vs empty details", MustNew("x"), MustNew("x", WithDetails(map[string]string{})), false},
		{"same details", MustNew("x", WithDetail("k", "v")), MustNew("x", WithDetail("k", "v")), true},
		{"different detail value", MustNew("x", WithDetail("k", "v")), MustNew("x", WithDetail("k", "w")), false},
		{
			"same cause tree",
			MustNew("x", WithCause(MustNew("y"))),
			MustNew("x", WithCause(MustNew("y"))),
			true,
		},
		{
			"cause order matters",
			MustNew("x", WithCause(MustNew("y"), MustNew("z"))),
			MustNew("x", WithCause(MustNew("z"), MustNew("y"))),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Fatalf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSameKind(t *testing.T) {
	a := MustNew("app-x", WithMessage("one"))
	b := MustNew("app-x", WithMessage("two"), WithDetail("k", "v"))
	if !SameKind(a, b) {
		t.Fatal("same code must be same kind")
	}
	if SameKind(a, MustNew("app-y")) {
		t.Fatal("different codes must differ in kind")
	}
}

func TestCodeOf_IsCode(t *testing.T) {
	e := MustNew("app-error-thing")
	wrapped := MustNew("app-outer", WithCause(e))

	if CodeOf(e) != "app-error-thing" {
		t.Fatal("CodeOf direct")
	}
	// The outermost code wins over causes.
	if CodeOf(wrapped) != "app-outer" {
		t.Fatal("CodeOf must report the outermost code")
	}
	if !IsCode(e, "app-error-thing") || IsCode(e, "app-other") {
		t.Fatal("IsCode mismatch")
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Fatal("plain errors carry no code")
	}
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustNew should panic on empty code")
		}
	}()
	_ = MustNew("")
}
