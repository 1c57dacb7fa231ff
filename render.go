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
	"fmt"
	"strings"
)

// MultiCausePolicy selects how a Renderer displays a node with more than one
// cause. Both policies are deterministic; pick one per surface and keep it.
type MultiCausePolicy int

const (
	// ListCauseCodes renders the codes of all causes, joined by ", " inside
	// square brackets: "x: m: [y, z]". Only codes — deeper structure is not
	// descended into, so output stays one line regardless of tree size.
	ListCauseCodes MultiCausePolicy = iota

	// ElideCauses states that detail was elided and directs the reader to
	// the serialized form: "x: m: (2 causes; see serialized form)".
	ElideCauses
)

// Renderer produces a human-readable one-line string from an Error.
//
// The rule set is fixed:
//
//  1. only code:                        "code"
//  2. code and message:                 "code: message"
//  3. code and exactly one cause:       "code: <rendered cause>"
//  4. code, message and one cause:      "code: message: <rendered cause>"
//
// With more than one cause the configured MultiCausePolicy applies. Details
// never appear in rendered output; they are machine-oriented, and anything a
// human needs is expected to be paraphrased into the message already.
type Renderer struct {
	// MultiCause selects the multi-cause strategy. The zero value is
	// ListCauseCodes.
	MultiCause MultiCausePolicy
}

// defaultRenderer backs the package-level Render and Error.Error.
var defaultRenderer = Renderer{}

// Render formats e with the default policy (ListCauseCodes).
func Render(e *Error) string {
	return defaultRenderer.Render(e)
}

// Render applies the rule set above.
//
// The single-cause spine is walked iteratively, so arbitrarily deep values
// (for example, freshly deserialized adversarial input) cannot grow the call
// stack. Multi-cause nodes terminate the walk by construction: neither
// policy recurses into the branches.
func (r Renderer) Render(e *Error) string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	for cur := e; ; {
		b.WriteString(cur.code)
		if cur.message != nil {
			b.WriteString(": ")
			b.WriteString(*cur.message)
		}
		switch len(cur.causes) {
		case 0:
			return b.String()
		case 1:
			b.WriteString(": ")
			cur = cur.causes[0]
		default:
			b.WriteString(": ")
			r.writeMultiCause(&b, cur.causes)
			return b.String()
		}
	}
}

// writeMultiCause appends the multi-cause tail according to the policy.
func (r Renderer) writeMultiCause(b *strings.Builder, causes []*Error) {
	switch r.MultiCause {
	case ElideCauses:
		fmt.Fprintf(b, "(%d causes; see serialized form)", len(causes))
	default: // ListCauseCodes
		b.WriteByte('[')
		for i, c := range causes {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.code)
		}
		b.WriteByte(']')
	}
}
