// Package ledgerv1 declares the ledger gRPC services. Messages are plain Go
// structs carried by a JSON codec, so no protoc step is needed.
package ledgerv1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
)

// CodecName is the gRPC content-subtype (application/grpc+json).
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal reports bad input in terms of JSON fields, never Go types.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return fmt.Errorf("field %s: unexpected %s", typeErr.Field, typeErr.Value)
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset)
	default:
		return errors.New("malformed JSON")
	}
}

func (jsonCodec) Name() string {
	return CodecName
}

func unaryHandler[Req any, Resp any](fullMethod string, call func(srv any, ctx context.Context, req *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, decodeError(err)
		}
		if interceptor == nil {
			return unwrap[Resp](call(srv, ctx, in))
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return unwrap[Resp](call(srv, ctx, req.(*Req)))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// decodeError turns a request decoding failure into InvalidArgument. grpc
// reports it as Internal by default.
func decodeError(err error) error {
	msg := status.Convert(err).Message()
	if i := strings.LastIndex(msg, "unmarshalling request: "); i >= 0 {
		msg = msg[i+len("unmarshalling request: "):]
	}
	return status.Error(codes.InvalidArgument, "invalid request: "+msg)
}

// unwrap keeps a nil *Resp from becoming a non-nil interface.
func unwrap[Resp any](resp *Resp, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
