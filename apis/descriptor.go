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

package apis

// ErrorDescriptor is a flat, transport-friendly summary of a serum error
// together with its resolved transport statuses.
//
// It is intended for structured logging, tracing, or message-bus
// propagation — places that want one flat record rather than the full
// recursive serial form (which the codec package owns).
type ErrorDescriptor struct {
	// Code is the error's code, e.g. "app-error-readfile".
	Code string `json:"code"`

	// Message is the human-readable message, empty when absent. Descriptor
	// consumers do not need the presence distinction; the codec preserves it
	// where it matters.
	Message string `json:"message,omitempty"`

	// Details carries the flat machine-oriented annotations, if any.
	Details map[string]string `json:"details,omitempty"`

	// CauseCodes lists the codes of the direct causes in order. Deeper
	// structure is deliberately not flattened here.
	CauseCodes []string `json:"cause_codes,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code (as integer). 0 (OK) means
	// "not resolved" — an error never maps to OK.
	GRPCCode int `json:"grpc_code,omitempty"`
}
