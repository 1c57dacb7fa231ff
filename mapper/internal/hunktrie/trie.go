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

package hunktrie

import (
	"errors"
	"strings"
)

// Trie is a hunk-aware prefix index for hyphen-separated serum codes.
// Each node represents one hunk; the wildcard "*" matches exactly one hunk.
// The trie supports longest-prefix-match (LPM) with hunk boundaries, so a
// more specific rule wins over a shorter one and "app-err" never matches
// "app-error".
type Trie[T any] struct {
	// children contains next hunks, including "*" for a single-hunk wildcard.
	children map[string]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the canonical hyphenated prefix (with '*' if a wildcard was
	// used) for this node, set only when hasVal=true. It is kept for
	// MatchWithPattern / Explain so lookups never build strings.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty hunks, contains invalid characters, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("hunktrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a hyphen-separated prefix to the trie and associates it with
// val.
//
// Examples:
//
//	"app"
//	"app-error"
//	"app-*-timeout"
//
// The wildcard "*" matches exactly one hunk. A prefix made only of "*" hunks
// is rejected, because it would catch everything. Returns ErrInvalidPrefix
// on malformed input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	hunks, ok := splitAndValidate(prefix, true /* allowWildcard */)
	if !ok || len(hunks) == 0 {
		return ErrInvalidPrefix
	}

	allWild := true
	for _, h := range hunks {
		if h != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, h := range hunks {
		child, exists := cur.children[h]
		if !exists {
			child = New[T]()
			cur.children[h] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		cur.pattern = prefix
	}
	return nil
}

// Match finds the best (deepest) prefix match for a full code string.
// The code is treated as a hyphen-separated sequence of hunks; both exact
// hunk matches and "*" wildcard branches are explored. It returns
// (value, true) on success. If the code is malformed at some hunk or
// nothing matches, it returns the zero value and false.
func (t *Trie[T]) Match(code string) (T, bool) {
	v, ok, _ := t.match(code, false)
	return v, ok
}

// MatchWithPattern returns value + the stored rule pattern (if any) for
// Explain. Same traversal as Match; the pattern string comes from the node,
// so nothing is built during lookup.
func (t *Trie[T]) MatchWithPattern(code string) (T, bool, string) {
	return t.match(code, true)
}

func (t *Trie[T]) match(code string, wantPattern bool) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	bestDepth := -1
	var bestVal T
	var bestPat string

	// dfs scans the next hunk starting at byte offset 'off', with 'depth'
	// hunks already consumed.
	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			if wantPattern {
				bestPat = n.pattern
			}
		}
		if off >= len(code) {
			return
		}

		// parse next hunk [off:next), validating [a-zA-Z0-9]+
		i := off
		if !alnum(code[i]) {
			return // invalid hunk start => stop this path
		}
		i++
		for i < len(code) {
			c := code[i]
			if c == '-' {
				break
			}
			if !alnum(c) {
				return // invalid char => stop
			}
			i++
		}
		hunk := code[off:i] // substring; no heap alloc
		nextOff := i
		if nextOff < len(code) && code[nextOff] == '-' {
			nextOff++
		}

		// exact branch
		if next, ok := n.children[hunk]; ok {
			dfs(next, nextOff, depth+1)
		}
		// wildcard branch
		if next, ok := n.children["*"]; ok {
			dfs(next, nextOff, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// splitAndValidate splits a hyphen-separated string into hunks and validates
// each hunk. When allowWildcard=true, a hunk that is exactly "*" is accepted.
// Returns (hunks, true) on success, or (nil, false) on invalid input.
func splitAndValidate(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	hunks := strings.Split(s, "-")
	for _, h := range hunks {
		if !validHunk(h, allowWildcard) {
			return nil, false
		}
	}
	return hunks, true
}

// validHunk reports whether h is a valid trie hunk.
// Rules:
//   - empty hunks are invalid;
//   - when allowWildcard=true, the hunk "*" is allowed;
//   - otherwise the hunk must be ASCII alphanumerics only.
func validHunk(h string, allowWildcard bool) bool {
	if h == "" {
		return false
	}
	if allowWildcard && h == "*" {
		return true
	}
	for i := 0; i < len(h); i++ {
		if !alnum(h[i]) {
			return false
		}
	}
	return true
}

func alnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
