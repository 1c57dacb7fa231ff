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

package codeset

import (
	"sort"
	"strings"
)

// Set is an unordered collection of distinct code strings.
//
// The zero value is the empty set and is ready to use. Sets are treated as
// immutable once built: every operation returns a fresh Set and never
// mutates an operand, so Sets can be shared across goroutines freely.
type Set struct {
	m map[string]struct{}
}

// New builds a Set from the given codes. Duplicates collapse; empty strings
// are dropped, since no valid error carries an empty code.
func New(codes ...string) Set {
	s := Set{m: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		if c == "" {
			continue
		}
		s.m[c] = struct{}{}
	}
	return s
}

// Contains reports whether the set holds the given code.
func (s Set) Contains(code string) bool {
	_, ok := s.m[code]
	return ok
}

// Len returns the number of distinct codes in the set.
func (s Set) Len() int { return len(s.m) }

// IsEmpty reports whether the set has no codes.
func (s Set) IsEmpty() bool { return len(s.m) == 0 }

// Codes returns the codes in lexical order. The slice is the caller's to
// keep; the set is not exposed through it.
func (s Set) Codes() []string {
	out := make([]string, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Union returns a new set holding every code present in either operand.
// The result never contains duplicates; both operands are subsets of it.
func Union(a, b Set) Set {
	out := Set{m: make(map[string]struct{}, len(a.m)+len(b.m))}
	for c := range a.m {
		out.m[c] = struct{}{}
	}
	for c := range b.m {
		out.m[c] = struct{}{}
	}
	return out
}

// Difference returns a new set holding the codes of a that are not in b.
// For exhaustiveness checks, Difference(produced, handled) is the set of
// unhandled codes.
func Difference(a, b Set) Set {
	out := Set{m: make(map[string]struct{}, len(a.m))}
	for c := range a.m {
		if _, ok := b.m[c]; !ok {
			out.m[c] = struct{}{}
		}
	}
	return out
}

// IsSubsetOf reports whether every code in a appears in b. The empty set is
// a subset of everything, and every set is a subset of itself.
func IsSubsetOf(a, b Set) bool {
	if len(a.m) > len(b.m) {
		return false
	}
	for c := range a.m {
		if _, ok := b.m[c]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same codes.
func Equal(a, b Set) bool {
	return len(a.m) == len(b.m) && IsSubsetOf(a, b)
}

// String renders the set as "{a, b, c}" in lexical order. Diagnostic only.
func (s Set) String() string {
	return "{" + strings.Join(s.Codes(), ", ") + "}"
}
