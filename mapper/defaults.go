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
	"net/http"

	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for conventional
// condition suffixes (the trailing hunks of a code). These are only
// defaults: callers are expected to override them at the boundary where HTTP
// is actually produced when a different policy is required.
//
// The intent is to stay close to common REST conventions while naming
// conditions the way serum codes spell them (hyphenated, lowercase).
var defaultHTTP = map[string]int{
	// 5xx — server / dependency / transient issues.
	"internal":    http.StatusInternalServerError, // Generic internal failure; do not expose internals.
	"unavailable": http.StatusServiceUnavailable,  // Service or a required dependency is unreachable.
	"overloaded":  http.StatusServiceUnavailable,  // Service cannot accept more work right now.
	"timeout":     http.StatusGatewayTimeout,      // Operation exceeded its time budget.
	"canceled":    http.StatusRequestTimeout,      // Caller canceled; integrators may switch to 499.

	// 4xx — client/protocol/resource issues.
	"invalid":     http.StatusBadRequest, // Malformed input, validation errors, contract violation.
	"missing":     http.StatusBadRequest, // Required field/parameter/reference absent.
	"unsupported": http.StatusBadRequest, // Known but unsupported operation/content/option.
	"expired":     http.StatusBadRequest, // Resource or token expired; client may refresh and retry.

	"not-found": http.StatusNotFound, // Target resource does not exist (or is not visible).
	"gone":      http.StatusGone,     // Resource used to exist but is permanently gone.

	// Conflicts and concurrency.
	"conflict":       http.StatusConflict, // General conflicting update/action.
	"already-exists": http.StatusConflict, // Resource creation clash.

	// AuthN / AuthZ.
	"unauthenticated":   http.StatusUnauthorized, // No/invalid credentials — caller must authenticate.
	"permission-denied": http.StatusForbidden,    // Authenticated but not allowed.
	"forbidden":         http.StatusForbidden,    // Alternate spelling some producers use.

	// Rate/quotas.
	"rate-limited": http.StatusTooManyRequests, // Client hit a rate limit.
	"throttled":    http.StatusTooManyRequests, // Server asks the client to back off.
}

// defaultGRPC defines the library's built-in gRPC mappings for the same
// condition vocabulary. Values align with canonical gRPC status codes; as
// with HTTP, callers may override at the transport edge.
var defaultGRPC = map[string]codes.Code{
	// Internal / server-side / unexpected.
	"internal": codes.Internal,

	// Input / preconditions / protocol.
	"invalid":     codes.InvalidArgument, // Bad input shape or validation errors.
	"missing":     codes.InvalidArgument, // Required field or parameter missing.
	"unsupported": codes.InvalidArgument, // Unsupported option/content.
	"expired":     codes.FailedPrecondition,

	// Resource state.
	"not-found": codes.NotFound,
	"gone":      codes.NotFound, // gRPC has no 410; NotFound is the closest practical choice.

	// Conflicts / concurrency.
	"already-exists": codes.AlreadyExists,
	"conflict":       codes.Aborted, // General conflict (concurrent updates, etc.).

	// AuthN / AuthZ.
	"unauthenticated":   codes.Unauthenticated,
	"permission-denied": codes.PermissionDenied,
	"forbidden":         codes.PermissionDenied,

	// Availability / load.
	"unavailable": codes.Unavailable,
	"overloaded":  codes.Unavailable,

	// Time / cancellation.
	"timeout":  codes.DeadlineExceeded,
	"canceled": codes.Canceled,

	// Rate/quotas.
	"rate-limited": codes.ResourceExhausted,
	"throttled":    codes.ResourceExhausted,
}
