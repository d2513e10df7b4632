package escrowrpc

import (
	"context"

	"google.golang.org/grpc"
)

type unaryCall func(srv interface{}, ctx context.Context, req interface{}) (interface{}, error)

// unaryHandler returns a grpc method handler that decodes a request created
// by newRequest and dispatches it to call through the optional interceptor.
func unaryHandler(
	fullMethod string, newRequest func() interface{}, call unaryCall,
) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(
		srv interface{}, ctx context.Context, dec func(interface{}) error,
		interceptor grpc.UnaryServerInterceptor,
	) (interface{}, error) {
		in := newRequest()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv, ctx, req)
		}
		return interceptor(ctx, in, info, handler)
	}
}
