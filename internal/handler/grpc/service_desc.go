package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/NiharGandhi/pent/internal/rpc"
	"github.com/NiharGandhi/pent/models"
)

// CredentialsServer is the server API of the pent.credentials.v1.Credentials
// service.
type CredentialsServer interface {
	Register(context.Context, *models.Credentials) (*models.PublicUser, error)
	Authenticate(context.Context, *models.Credentials) (*models.PublicUser, error)
	LookupByID(context.Context, *models.LookupRequest) (*models.PublicUser, error)
	Version(context.Context, *rpc.Empty) (*models.VersionResponse, error)
}

// ServiceDesc describes the Credentials service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: rpc.ServiceName,
	HandlerType: (*CredentialsServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(rpc.MethodRegister, CredentialsServer.Register),
		unaryMethod(rpc.MethodAuthenticate, CredentialsServer.Authenticate),
		unaryMethod(rpc.MethodLookupByID, CredentialsServer.LookupByID),
		unaryMethod(rpc.MethodVersion, CredentialsServer.Version),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pent/credentials/v1",
}

// RegisterCredentialsServer registers srv on s.
func RegisterCredentialsServer(s grpc.ServiceRegistrar, srv CredentialsServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unaryMethod builds the MethodDesc of one unary method: decode the request,
// then call through the interceptor chain when one is installed.
func unaryMethod[Req, Resp any](name string, call func(CredentialsServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := rpc.FullMethod(name)

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CredentialsServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CredentialsServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
