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

import "google.golang.org/grpc/codes"

// Option configures the Mapper at build time. All options are applied to an
// internal builder and then frozen into an immutable Mapper.
type Option func(*builder)

// WithHTTPCondition sets or replaces the HTTP status for a condition suffix
// (one or two trailing hunks, e.g. "timeout" or "not-found"). This affects
// the default tier used when no override or prefix rule matches.
func WithHTTPCondition(condition string, http int) Option {
	return func(b *builder) { b.httpConditions[condition] = http }
}

// WithGRPCCondition sets or replaces the gRPC status for a condition suffix.
func WithGRPCCondition(condition string, grpc int) Option {
	return func(b *builder) { b.grpcConditions[condition] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for a full code.
// Overrides are the highest tier and win over prefix rules and defaults.
func WithHTTPOverride(code string, http int) Option {
	return func(b *builder) { b.httpOverride[code] = http }
}

// WithGRPCOverride registers an exact gRPC override for a full code.
func WithGRPCOverride(code string, grpc int) Option {
	return func(b *builder) { b.grpcOverride[code] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule. The rule is
// evaluated against the code's hyphen-separated hunks; a more specific
// prefix wins. Use "*" to match a single hunk.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule, same semantics as
// WithHTTPPrefix.
func WithGRPCPrefix(prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, grpc}) }
}

// WithFallback replaces the global fallback pair used when no tier matches.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
