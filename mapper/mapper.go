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

package mapper

import (
	"fmt"
	"strings"

	"github.com/serum-errors/serum-go/apis"
	"github.com/serum-errors/serum-go/code"
	"github.com/serum-errors/serum-go/mapper/internal/hunktrie"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance — no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library condition defaults (HTTP & gRPC).
//  2. Apply user-provided options (conditions, overrides, prefix rules).
//  3. Normalize and validate all hunk prefixes (via code.Normalize).
//  4. Build hunk tries (HTTP & gRPC) supporting longest-prefix-match with
//     '*' as a single-hunk wildcard.
//  5. Freeze all maps and tries into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid prefixes or
// configuration issues during normalization or trie construction.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder; no pre-seeded state is assumed.
	b := newBuilder()

	// (1) Seed the builder with package-level condition defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpConditions[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity; convert to codes.Code
		// when freezing the final snapshot.
		b.grpcConditions[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Build the HTTP prefix trie. Each rule prefix is normalized and
	// validated before insertion.
	httpTrie := hunktrie.New[int]()
	for _, r := range b.httpPrefixes {
		p := code.Normalize(r.prefix)
		if err := httpTrie.Insert(p, r.val); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert HTTP prefix %q: %w", r.prefix, err)
		}
	}

	// (4) Build the gRPC prefix trie. Values are stored as int in the
	// builder and converted to codes.Code here.
	grpcTrie := hunktrie.New[codes.Code]()
	for _, r := range b.grpcPrefixes {
		p := code.Normalize(r.prefix)
		if err := grpcTrie.Insert(p, codes.Code(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert gRPC prefix %q: %w", r.prefix, err)
		}
	}

	// (5) Freeze everything into a read-only snapshot. Each map is freshly
	// allocated; tries are immutable after build.
	m := &mapper{
		httpCondition: freezeHTTP(b.httpConditions),
		grpcCondition: freezeGRPC(b.grpcConditions),
		httpOverride:  freezeHTTP(b.httpOverride),
		grpcOverride:  freezeGRPC(b.grpcOverride),
		httpTrie:      httpTrie,
		grpcTrie:      grpcTrie,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines exact full-code
// overrides, hunk-aware prefix tries, and condition-suffix defaults.
// Lookups are O(hunks) and safe for concurrent use once constructed.
type mapper struct {
	// httpOverride holds explicit HTTP statuses for specific full codes.
	// Highest tier.
	httpOverride map[string]int

	// grpcOverride holds explicit gRPC statuses for specific full codes.
	grpcOverride map[string]codes.Code

	// httpTrie resolves HTTP statuses by longest hunk-prefix match
	// (hyphen-separated, with "*" for one-hunk wildcards).
	httpTrie *hunktrie.Trie[int]

	// grpcTrie resolves gRPC statuses by hunk-prefix match.
	grpcTrie *hunktrie.Trie[codes.Code]

	// httpCondition holds condition-suffix HTTP defaults ("not-found",
	// "timeout", ...). Checked after overrides and prefix rules.
	httpCondition map[string]int

	// grpcCondition holds condition-suffix gRPC defaults.
	grpcCondition map[string]codes.Code

	// fallbackHTTP is used when no tier matches at all.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when no tier matches at all.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact full-code override (explicitly registered);
//  2. longest hunk-prefix-match rule;
//  3. condition-suffix default (two trailing hunks, then one);
//  4. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(c string) int {
	// 1. Fast path: exact override for this code.
	if v, ok := m.httpOverride[c]; ok {
		return v
	}

	// 2. Hunk-prefix LPM over the code.
	if v, ok := m.httpTrie.Match(c); ok {
		return v
	}

	// 3. Condition-suffix default.
	if v, ok := lookupCondition(m.httpCondition, c); ok {
		return v
	}

	// 4. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c string) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}

	// 2. Trie-based LPM for this code.
	if v, ok := m.grpcTrie.Match(c); ok {
		return v
	}

	// 3. Condition default.
	if v, ok := lookupCondition(m.grpcCondition, c); ok {
		return v
	}

	// 4. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC for the same code, keeping transport
// decisions consistent for a single logical error.
func (m *mapper) Status(c string) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// lookupCondition checks the two trailing hunks joined ("not-found") before
// the single final hunk ("timeout"), so multi-hunk condition spellings win
// over their own tails.
func lookupCondition[T any](table map[string]T, c string) (T, bool) {
	hunks := code.Hunks(c)
	if n := len(hunks); n >= 2 {
		if v, ok := table[hunks[n-2]+"-"+hunks[n-1]]; ok {
			return v, true
		}
	}
	v, ok := table[hunks[len(hunks)-1]]
	return v, ok
}

// conditionKey reports which condition suffix matched, for Explain.
func conditionKey[T any](table map[string]T, c string) (string, bool) {
	hunks := code.Hunks(c)
	if n := len(hunks); n >= 2 {
		if _, ok := table[hunks[n-2]+"-"+hunks[n-1]]; ok {
			return hunks[n-2] + "-" + hunks[n-1], true
		}
	}
	k := hunks[len(hunks)-1]
	_, ok := table[k]
	return k, ok
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, prefix, condition, or fallback) and, for prefix matches, which
// pattern was used.
//
// Example output:
//
//	code="app-error-storage-timeout"
//	http: source=prefix pattern="app-error-storage" -> 503
//	grpc: source=condition suffix="timeout" -> DEADLINEEXCEEDED(4)
//
// Notes:
//   - source ∈ {override | prefix | condition | fallback}
//   - pattern is the rule as it was stored in the trie (may contain "*")
func (m *mapper) Explain(c string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(c))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP formats a line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(c string) string {
	// 1) exact full-code override
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}

	// 2) hunk-prefix LPM
	if v, ok, pat := m.httpTrie.MatchWithPattern(c); ok {
		return fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
	}

	// 3) condition-suffix default
	if k, ok := conditionKey(m.httpCondition, c); ok {
		return fmt.Sprintf("http: source=condition suffix=%q -> %d", k, m.httpCondition[k])
	}

	// 4) global fallback
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC formats a line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(c string) string {
	// 1) exact full-code override
	if v, ok := m.grpcOverride[c]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 2) hunk-prefix LPM
	if v, ok, pat := m.grpcTrie.MatchWithPattern(c); ok {
		return fmt.Sprintf("grpc: source=prefix pattern=%q -> %s(%d)", pat, strings.ToUpper(v.String()), int(v))
	}

	// 3) condition-suffix default
	if k, ok := conditionKey(m.grpcCondition, c); ok {
		v := m.grpcCondition[k]
		return fmt.Sprintf("grpc: source=condition suffix=%q -> %s(%d)", k, strings.ToUpper(v.String()), int(v))
	}

	// 4) global fallback
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}
