package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	BeerService_CreateBeer_FullMethodName   = "/beerkeeper.BeerService/CreateBeer"
	BeerService_GetBeers_FullMethodName     = "/beerkeeper.BeerService/GetBeers"
	BeerService_GetBeerCount_FullMethodName = "/beerkeeper.BeerService/GetBeerCount"
	BeerService_Ping_FullMethodName         = "/beerkeeper.BeerService/Ping"
)

// BeerServiceClient is the client API for BeerService. Every call is sent
// with the JSON content-subtype.
type BeerServiceClient interface {
	CreateBeer(ctx context.Context, in *CreateBeerRequest, opts ...grpc.CallOption) (*Beer, error)
	GetBeers(ctx context.Context, in *GetBeersRequest, opts ...grpc.CallOption) (*GetBeersResponse, error)
	GetBeerCount(ctx context.Context, in *GetBeerCountRequest, opts ...grpc.CallOption) (*BeerCount, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
}

type beerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBeerServiceClient(cc grpc.ClientConnInterface) BeerServiceClient {
	return &beerServiceClient{cc}
}

func (c *beerServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, cOpts...)
}

func (c *beerServiceClient) CreateBeer(ctx context.Context, in *CreateBeerRequest, opts ...grpc.CallOption) (*Beer, error) {
	out := new(Beer)
	if err := c.invoke(ctx, BeerService_CreateBeer_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *beerServiceClient) GetBeers(ctx context.Context, in *GetBeersRequest, opts ...grpc.CallOption) (*GetBeersResponse, error) {
	out := new(GetBeersResponse)
	if err := c.invoke(ctx, BeerService_GetBeers_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *beerServiceClient) GetBeerCount(ctx context.Context, in *GetBeerCountRequest, opts ...grpc.CallOption) (*BeerCount, error) {
	out := new(BeerCount)
	if err := c.invoke(ctx, BeerService_GetBeerCount_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *beerServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.invoke(ctx, BeerService_Ping_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// BeerServiceServer is the server API for BeerService. Implementations must
// embed UnimplementedBeerServiceServer.
type BeerServiceServer interface {
	CreateBeer(context.Context, *CreateBeerRequest) (*Beer, error)
	GetBeers(context.Context, *GetBeersRequest) (*GetBeersResponse, error)
	GetBeerCount(context.Context, *GetBeerCountRequest) (*BeerCount, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	mustEmbedUnimplementedBeerServiceServer()
}

type UnimplementedBeerServiceServer struct{}

func (UnimplementedBeerServiceServer) CreateBeer(context.Context, *CreateBeerRequest) (*Beer, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateBeer not implemented")
}
func (UnimplementedBeerServiceServer) GetBeers(context.Context, *GetBeersRequest) (*GetBeersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBeers not implemented")
}
func (UnimplementedBeerServiceServer) GetBeerCount(context.Context, *GetBeerCountRequest) (*BeerCount, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBeerCount not implemented")
}
func (UnimplementedBeerServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedBeerServiceServer) mustEmbedUnimplementedBeerServiceServer() {}

func RegisterBeerServiceServer(s grpc.ServiceRegistrar, srv BeerServiceServer) {
	s.RegisterService(&BeerService_ServiceDesc, srv)
}

func _BeerService_CreateBeer_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateBeerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BeerServiceServer).CreateBeer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BeerService_CreateBeer_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BeerServiceServer).CreateBeer(ctx, req.(*CreateBeerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BeerService_GetBeers_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetBeersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BeerServiceServer).GetBeers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BeerService_GetBeers_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BeerServiceServer).GetBeers(ctx, req.(*GetBeersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BeerService_GetBeerCount_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetBeerCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BeerServiceServer).GetBeerCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BeerService_GetBeerCount_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BeerServiceServer).GetBeerCount(ctx, req.(*GetBeerCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BeerService_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BeerServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BeerService_Ping_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BeerServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BeerService_ServiceDesc is the grpc.ServiceDesc for BeerService.
var BeerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "beerkeeper.BeerService",
	HandlerType: (*BeerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateBeer", Handler: _BeerService_CreateBeer_Handler},
		{MethodName: "GetBeers", Handler: _BeerService_GetBeers_Handler},
		{MethodName: "GetBeerCount", Handler: _BeerService_GetBeerCount_Handler},
		{MethodName: "Ping", Handler: _BeerService_Ping_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "beerkeeper.proto",
}
