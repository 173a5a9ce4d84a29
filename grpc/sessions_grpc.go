// Client and server bindings for sessions.proto, written in the shape
// protoc-gen-go-grpc produces.

package grpc

import (
	context "context"

	grpc_base "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	structpb "google.golang.org/protobuf/types/known/structpb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	Sessions_Issue_FullMethodName     = "/sessionstore.Sessions/Issue"
	Sessions_IsValid_FullMethodName   = "/sessionstore.Sessions/IsValid"
	Sessions_GetLogin_FullMethodName  = "/sessionstore.Sessions/GetLogin"
	Sessions_GetRoleId_FullMethodName = "/sessionstore.Sessions/GetRoleId"
	Sessions_Revoke_FullMethodName    = "/sessionstore.Sessions/Revoke"
)

type SessionsClient interface {
	Issue(ctx context.Context, in *structpb.Struct, opts ...grpc_base.CallOption) (*wrapperspb.StringValue, error)
	IsValid(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc_base.CallOption) (*wrapperspb.BoolValue, error)
	GetLogin(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc_base.CallOption) (*wrapperspb.StringValue, error)
	GetRoleId(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc_base.CallOption) (*wrapperspb.Int32Value, error)
	Revoke(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc_base.CallOption) (*emptypb.Empty, error)
}

type sessionsClient struct {
	cc grpc_base.ClientConnInterface
}

func NewSessionsClient(cc grpc_base.ClientConnInterface) SessionsClient {
	return &sessionsClient{cc}
}

func (c *sessionsClient) Issue(ctx context.Context, in *structpb.Struct, opts ...grpc_base.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, Sessions_Issue_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionsClient) IsValid(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc_base.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, Sessions_IsValid_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionsClient) GetLogin(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc_base.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, Sessions_GetLogin_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionsClient) GetRoleId(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc_base.CallOption) (*wrapperspb.Int32Value, error) {
	out := new(wrapperspb.Int32Value)
	if err := c.cc.Invoke(ctx, Sessions_GetRoleId_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionsClient) Revoke(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc_base.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, Sessions_Revoke_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// SessionsServer must be embedded with UnimplementedSessionsServer.
type SessionsServer interface {
	Issue(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	IsValid(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	GetLogin(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	GetRoleId(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int32Value, error)
	Revoke(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	mustEmbedUnimplementedSessionsServer()
}

type UnimplementedSessionsServer struct{}

func (UnimplementedSessionsServer) Issue(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Issue not implemented")
}
func (UnimplementedSessionsServer) IsValid(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsValid not implemented")
}
func (UnimplementedSessionsServer) GetLogin(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLogin not implemented")
}
func (UnimplementedSessionsServer) GetRoleId(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int32Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRoleId not implemented")
}
func (UnimplementedSessionsServer) Revoke(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Revoke not implemented")
}
func (UnimplementedSessionsServer) mustEmbedUnimplementedSessionsServer() {}

func RegisterSessionsServer(s grpc_base.ServiceRegistrar, srv SessionsServer) {
	s.RegisterService(&Sessions_ServiceDesc, srv)
}

func _Sessions_Issue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc_base.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServer).Issue(ctx, in)
	}
	info := &grpc_base.UnaryServerInfo{Server: srv, FullMethod: Sessions_Issue_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServer).Issue(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Sessions_IsValid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc_base.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServer).IsValid(ctx, in)
	}
	info := &grpc_base.UnaryServerInfo{Server: srv, FullMethod: Sessions_IsValid_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServer).IsValid(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Sessions_GetLogin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc_base.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServer).GetLogin(ctx, in)
	}
	info := &grpc_base.UnaryServerInfo{Server: srv, FullMethod: Sessions_GetLogin_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServer).GetLogin(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Sessions_GetRoleId_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc_base.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServer).GetRoleId(ctx, in)
	}
	info := &grpc_base.UnaryServerInfo{Server: srv, FullMethod: Sessions_GetRoleId_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServer).GetRoleId(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Sessions_Revoke_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc_base.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServer).Revoke(ctx, in)
	}
	info := &grpc_base.UnaryServerInfo{Server: srv, FullMethod: Sessions_Revoke_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServer).Revoke(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

var Sessions_ServiceDesc = grpc_base.ServiceDesc{
	ServiceName: "sessionstore.Sessions",
	HandlerType: (*SessionsServer)(nil),
	Methods: []grpc_base.MethodDesc{
		{MethodName: "Issue", Handler: _Sessions_Issue_Handler},
		{MethodName: "IsValid", Handler: _Sessions_IsValid_Handler},
		{MethodName: "GetLogin", Handler: _Sessions_GetLogin_Handler},
		{MethodName: "GetRoleId", Handler: _Sessions_GetRoleId_Handler},
		{MethodName: "Revoke", Handler: _Sessions_Revoke_Handler},
	},
	Streams:  []grpc_base.StreamDesc{},
	Metadata: "sessions.proto",
}
