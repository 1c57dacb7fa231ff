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

// Package grpcx adapts serum error values to and from gRPC statuses.
//
// Outbound, a serum error becomes a status whose code is resolved by the
// provided apis.Mapper, with two details attached: the full canonical serial
// form as a google.protobuf.Struct, and a google.rpc.ErrorInfo carrying the
// code and flat details for clients that only understand the standard detail
// vocabulary. Inbound, FromStatus reconstructs the full error value from the
// Struct detail, falling back to ErrorInfo when only that survived.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	serum "github.com/serum-errors/serum-go"
	"github.com/serum-errors/serum-go/apis"
	"github.com/serum-errors/serum-go/codec"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// serum errors into gRPC statuses with serum details attached.
//
// The provided apis.Mapper resolves the transport status from the error
// code. The domain is stamped into the ErrorInfo detail and conventionally
// names the producing service (e.g. "app.example.com"); it may be empty.
//
// Errors that do not carry a serum value anywhere in their chain are
// returned as-is.
func UnaryServerInterceptor(m apis.Mapper, domain string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var se *serum.Error
		if !errors.As(err, &se) {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, ToStatus(se, m, domain).Err()
	}
}

// ToStatus converts a serum error into a gRPC status using the mapper for
// the status code and the rendered string as the status message.
//
// Detail attachment is best-effort: if the serial form cannot be attached
// (proto marshal failure, depth bound), the plain status is returned so the
// transport still sees the right code and message.
func ToStatus(e *serum.Error, m apis.Mapper, domain string) *gstatus.Status {
	st := m.Status(e.Code())
	base := gstatus.New(st.GRPC, e.Error())

	ei := &errdetails.ErrorInfo{
		Reason: e.Code(),
		Domain: domain,
	}
	if det, ok := e.Details(); ok && len(det) > 0 {
		ei.Metadata = det
	}

	serial, err := codec.Serialize(e)
	if err != nil {
		if with, werr := base.WithDetails(ei); werr == nil {
			return with
		}
		return base
	}
	spb, err := structpb.NewStruct(structCompatible(serial))
	if err != nil {
		if with, werr := base.WithDetails(ei); werr == nil {
			return with
		}
		return base
	}

	if with, err := base.WithDetails(spb, ei); err == nil {
		return with
	}
	return base
}

// FromStatus pulls a serum error value out of a gRPC error, if present.
// Useful in clients and tests.
//
// Preference order: the full Struct detail (lossless), then ErrorInfo
// (code + flat details + status message). Returns (nil, false) when the
// error carries neither.
func FromStatus(err error) (*serum.Error, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}

	var ei *errdetails.ErrorInfo
	for _, d := range st.Details() {
		switch d := d.(type) {
		case *structpb.Struct:
			if e, derr := codec.Deserialize(d.AsMap()); derr == nil {
				return e, true
			}
		case *errdetails.ErrorInfo:
			ei = d
		}
	}

	if ei == nil || ei.GetReason() == "" {
		return nil, false
	}
	opts := []serum.Option{serum.WithMessage(st.Message())}
	if len(ei.GetMetadata()) > 0 {
		opts = append(opts, serum.WithDetails(ei.GetMetadata()))
	}
	e, cerr := serum.New(ei.GetReason(), opts...)
	if cerr != nil {
		return nil, false
	}
	return e, true
}

// structCompatible rewrites the canonical serial map into the value
// vocabulary structpb accepts: string maps become map[string]any, cause
// lists are rewritten recursively. Depth is already bounded by the codec.
func structCompatible(m map[string]any) map[string]any {
	if det, ok := m["details"].(map[string]string); ok {
		conv := make(map[string]any, len(det))
		for k, v := range det {
			conv[k] = v
		}
		m["details"] = conv
	}
	if list, ok := m["cause"].([]any); ok {
		for i, item := range list {
			if cm, ok := item.(map[string]any); ok {
				list[i] = structCompatible(cm)
			}
		}
	}
	return m
}
