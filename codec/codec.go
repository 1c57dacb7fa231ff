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

package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	serum "github.com/serum-errors/serum-go"
)

// MaxDepth bounds cause nesting for every recursive walk in this package.
// Values produced through the serum construction API stay far below this;
// the bound exists to reject adversarial serialized input.
const MaxDepth = 1000

var (
	// ErrMissingCode reports that a serial form had no usable "code" field:
	// absent, not a string, or present but empty.
	ErrMissingCode = errors.New("serum: missing code")

	// ErrMalformedField reports a field that is present but of the wrong
	// shape: a non-string message, a non-flat-string-map details, or a cause
	// entry that is not a valid Error map.
	ErrMalformedField = errors.New("serum: malformed field")

	// ErrDepthExceeded reports cause nesting beyond MaxDepth, in either
	// direction of the codec.
	ErrDepthExceeded = errors.New("serum: cause nesting exceeds depth bound")
)

// FieldError is the structured parse failure. It pins which field broke,
// where in the cause tree, and why, and unwraps to one of the sentinels
// above so callers can branch with errors.Is.
type FieldError struct {
	// Field is the serial field name: "code", "message", "details" or "cause".
	Field string

	// Path locates the failing node from the root, e.g. "cause[2].cause[0]".
	// Empty for the root node itself.
	Path string

	// Reason is a short human explanation of the shape problem.
	Reason string

	sentinel error
}

// Error implements the error interface.
func (f *FieldError) Error() string {
	at := f.Field
	if f.Path != "" {
		at = f.Path + "." + f.Field
	}
	return fmt.Sprintf("%v: %s: %s", f.sentinel, at, f.Reason)
}

// Unwrap returns the classifying sentinel (ErrMissingCode or ErrMalformedField).
func (f *FieldError) Unwrap() error { return f.sentinel }

// Serialize converts an error value into the canonical map representation.
// Causes are serialized recursively; the recursion is bounded by MaxDepth
// and fails with ErrDepthExceeded beyond it.
func Serialize(e *serum.Error) (map[string]any, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: cannot serialize nil", serum.ErrInvalidValue)
	}
	return serialize(e, 0)
}

func serialize(e *serum.Error, depth int) (map[string]any, error) {
	if depth >= MaxDepth {
		return nil, ErrDepthExceeded
	}
	m := map[string]any{"code": e.Code()}
	if msg, ok := e.Message(); ok {
		m["message"] = msg
	}
	if det, ok := e.Details(); ok {
		if det == nil {
			det = map[string]string{}
		}
		m["details"] = det
	}
	if causes := e.Causes(); len(causes) > 0 {
		list := make([]any, len(causes))
		for i, c := range causes {
			cm, err := serialize(c, depth+1)
			if err != nil {
				return nil, err
			}
			list[i] = cm
		}
		m["cause"] = list
	}
	return m, nil
}

// Deserialize parses the canonical map representation into an error value.
//
// Unknown extra fields are ignored. Failures are *FieldError values carrying
// the innermost reason and the positional cause path, classified as
// ErrMissingCode or ErrMalformedField.
func Deserialize(m map[string]any) (*serum.Error, error) {
	return deserialize(m, 0)
}

func deserialize(m map[string]any, depth int) (*serum.Error, error) {
	if depth >= MaxDepth {
		return nil, ErrDepthExceeded
	}

	rawCode, ok := m["code"]
	if !ok {
		return nil, &FieldError{Field: "code", Reason: "field absent", sentinel: ErrMissingCode}
	}
	codeStr, ok := rawCode.(string)
	if !ok {
		return nil, &FieldError{Field: "code", Reason: fmt.Sprintf("not a string (got %T)", rawCode), sentinel: ErrMissingCode}
	}
	if codeStr == "" {
		return nil, &FieldError{Field: "code", Reason: "empty string", sentinel: ErrMissingCode}
	}

	opts := make([]serum.Option, 0, 3)

	if rawMsg, ok := m["message"]; ok {
		msg, ok := rawMsg.(string)
		if !ok {
			return nil, &FieldError{Field: "message", Reason: fmt.Sprintf("not a string (got %T)", rawMsg), sentinel: ErrMalformedField}
		}
		opts = append(opts, serum.WithMessage(msg))
	}

	if rawDet, ok := m["details"]; ok {
		det, err := detailsMap(rawDet)
		if err != nil {
			return nil, err
		}
		opts = append(opts, serum.WithDetails(det))
	}

	if rawCause, ok := m["cause"]; ok {
		causes, err := causeList(rawCause, depth)
		if err != nil {
			return nil, err
		}
		if len(causes) > 0 {
			opts = append(opts, serum.WithCause(causes...))
		}
	}

	return serum.New(codeStr, opts...)
}

// detailsMap coerces the raw details field into a flat string map. Both the
// typed form (from Serialize output fed straight back) and the generic form
// (from encoding/json) are accepted; any non-string value is malformed.
func detailsMap(raw any) (map[string]string, error) {
	switch det := raw.(type) {
	case map[string]string:
		out := make(map[string]string, len(det))
		for k, v := range det {
			out[k] = v
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(det))
		for k, v := range det {
			s, ok := v.(string)
			if !ok {
				return nil, &FieldError{
					Field:    "details",
					Reason:   fmt.Sprintf("value for key %q not a string (got %T)", k, v),
					sentinel: ErrMalformedField,
				}
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, &FieldError{Field: "details", Reason: fmt.Sprintf("not a string map (got %T)", raw), sentinel: ErrMalformedField}
	}
}

// causeList parses the raw cause field into fully validated error values.
// A malformed nested cause invalidates the whole parse; the child's failure
// is re-rooted with this level's index so the caller can pinpoint the node.
func causeList(raw any, depth int) ([]*serum.Error, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, &FieldError{Field: "cause", Reason: fmt.Sprintf("not a list (got %T)", raw), sentinel: ErrMalformedField}
	}
	causes := make([]*serum.Error, 0, len(list))
	for i, item := range list {
		cm, ok := item.(map[string]any)
		if !ok {
			return nil, &FieldError{
				Field:    "cause",
				Reason:   fmt.Sprintf("element %d not an Error map (got %T)", i, item),
				sentinel: ErrMalformedField,
			}
		}
		c, err := deserialize(cm, depth+1)
		if err != nil {
			return nil, prefixPath(err, i)
		}
		causes = append(causes, c)
	}
	return causes, nil
}

// prefixPath re-roots a child parse failure under cause[idx], preserving the
// innermost reason and classification.
func prefixPath(err error, idx int) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		path := fmt.Sprintf("cause[%d]", idx)
		if fe.Path != "" {
			path += "." + fe.Path
		}
		return &FieldError{Field: fe.Field, Path: path, Reason: fe.Reason, sentinel: fe.sentinel}
	}
	return fmt.Errorf("cause[%d]: %w", idx, err)
}

// node mirrors the canonical schema for JSON encoding. Struct field order
// pins the canonical display order; pointers keep presence distinct from
// emptiness (a *string to "" is emitted, a nil pointer is omitted, and the
// same for an explicitly present empty details map).
type node struct {
	Code    string             `json:"code"`
	Message *string            `json:"message,omitempty"`
	Details *map[string]string `json:"details,omitempty"`
	Cause   []*node            `json:"cause,omitempty"`
}

// Encode serializes an error value to canonical JSON.
func Encode(e *serum.Error) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: cannot encode nil", serum.ErrInvalidValue)
	}
	n, err := toNode(e, 0)
	if err != nil {
		return nil, err
	}
	return json.Marshal(n)
}

func toNode(e *serum.Error, depth int) (*node, error) {
	if depth >= MaxDepth {
		return nil, ErrDepthExceeded
	}
	n := &node{Code: e.Code()}
	if msg, ok := e.Message(); ok {
		n.Message = &msg
	}
	if det, ok := e.Details(); ok {
		if det == nil {
			det = map[string]string{}
		}
		n.Details = &det
	}
	for _, c := range e.Causes() {
		cn, err := toNode(c, depth+1)
		if err != nil {
			return nil, err
		}
		n.Cause = append(n.Cause, cn)
	}
	return n, nil
}

// Decode parses canonical JSON into an error value. Failures in the JSON
// syntax itself surface as ErrMalformedField; shape failures carry the full
// FieldError diagnostics from Deserialize.
func Decode(data []byte) (*serum.Error, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedField, err)
	}
	return Deserialize(m)
}
