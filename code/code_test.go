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
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestValidate_Accepts(t *testing.T) {
	for _, s := range []string{
		"app",
		"x",
		"0",
		"app-error-thing",
		"demo-not-found",
		"V1-Thing",
		"a-1-b-2",
	} {
		t.Run(s, func(t *testing.T) {
			if err := Validate(s); err != nil {
				t.Fatalf("Validate(%q) = %v, want nil", s, err)
			}
			if !IsValid(s) {
				t.Fatal("IsValid disagrees with Validate")
			}
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ViolationKind
		pos   int
	}{
		{"empty", "", ViolationEmptyCode, -1},
		{"leading hyphen", "-app", ViolationEdgeHyphen, -1},
		{"trailing hyphen", "app-", ViolationEdgeHyphen, -1},
		{"lone hyphen", "-", ViolationEdgeHyphen, -1},
		{"empty hunk", "app--thing", ViolationEmptyHunk, 4},
		{"space", "app error", ViolationDisallowedChar, 3},
		{"underscore", "app_error", ViolationDisallowedChar, 3},
		{"unicode", "caf\xc3\xa9", ViolationDisallowedChar, 3},
		{"colon", "app:error", ViolationDisallowedChar, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if err == nil {
				t.Fatalf("Validate(%q) = nil, want violation", tt.input)
			}
			if !errors.Is(err, ErrCodeFormat) {
				t.Fatal("violation must unwrap to ErrCodeFormat")
			}
			var v *Violation
			if !errors.As(err, &v) {
				t.Fatalf("want *Violation, got %T", err)
			}
			if v.Kind != tt.kind {
				t.Fatalf("Kind = %v, want %v", v.Kind, tt.kind)
			}
			if v.Pos != tt.pos {
				t.Fatalf("Pos = %d, want %d", v.Pos, tt.pos)
			}
			if v.Input != tt.input {
				t.Fatalf("Input = %q, want %q", v.Input, tt.input)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  app-error  ", "app-error"},
		{"APP-Error", "app-error"},
		{"app_error_thing", "app-error-thing"},
		{"already-fine", "already-fine"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("  APP_Error_Thing ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c != Code("app-error-thing") {
		t.Fatalf("Parse = %q", c)
	}

	// Normalization cannot rescue structurally broken input.
	if _, err := Parse("app--thing"); err == nil {
		t.Fatal("Parse must reject empty hunks")
	}
	if _, err := Parse(""); err == nil {
		t.Fatal("Parse must reject the empty string")
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("-bad-")
}

func TestHunksAndCondition(t *testing.T) {
	tests := []struct {
		code      string
		hunks     []string
		condition string
	}{
		{"app-error-thing", []string{"app", "error", "thing"}, "thing"},
		{"app", []string{"app"}, "app"},
		{"demo-not-found", []string{"demo", "not", "found"}, "found"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Hunks(tt.code); !reflect.DeepEqual(got, tt.hunks) {
				t.Fatalf("Hunks = %v, want %v", got, tt.hunks)
			}
			if got := Condition(tt.code); got != tt.condition {
				t.Fatalf("Condition = %q, want %q", got, tt.condition)
			}
			c := Code(tt.code)
			if !reflect.DeepEqual(c.Hunks(), tt.hunks) || c.Condition() != tt.condition {
				t.Fatal("method forms disagree with package functions")
			}
		})
	}
}

func TestCode_TextMarshaling(t *testing.T) {
	type payload struct {
		Code Code `json:"code"`
	}

	out, err := json.Marshal(payload{Code: "app-error-thing"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"code":"app-error-thing"}` {
		t.Fatalf("Marshal = %s", out)
	}

	// Malformed codes refuse to marshal.
	if _, err := json.Marshal(payload{Code: "bad--code"}); err == nil {
		t.Fatal("Marshal must reject malformed codes")
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"code":"  APP_Error "}`), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.Code != "app-error" {
		t.Fatalf("Unmarshal = %q", p.Code)
	}

	if err := json.Unmarshal([]byte(`{"code":"-bad"}`), &p); err == nil {
		t.Fatal("Unmarshal must reject malformed codes")
	}
}

func BenchmarkValidate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Validate("app-error-storage-timeout")
	}
}
