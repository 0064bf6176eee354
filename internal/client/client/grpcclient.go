package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/beerkeeper/internal/client/models"
	"github.com/dmitrijs2005/beerkeeper/internal/common"
	pb "github.com/dmitrijs2005/beerkeeper/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.BeerServiceClient
	health      healthpb.HealthClient
}

func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) > 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
}

func (s *GRPCClient) requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

// NewBeerClient creates a client for the server at endpointURL. Extra dial
// options are appended after the defaults.
func NewBeerClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewBeerServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) CreateBeer(ctx context.Context, name string) (*models.Beer, error) {
	resp, err := s.client.CreateBeer(ctx, &pb.CreateBeerRequest{Name: name})
	if err != nil {
		return nil, s.mapError(err)
	}
	b := toModel(resp)
	return &b, nil
}

func (s *GRPCClient) GetBeers(ctx context.Context) ([]models.Beer, error) {
	resp, err := s.client.GetBeers(ctx, &pb.GetBeersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	list := make([]models.Beer, 0, len(resp.GetBeers()))
	for _, b := range resp.GetBeers() {
		list = append(list, toModel(b))
	}
	return list, nil
}

func (s *GRPCClient) GetBeerCount(ctx context.Context) (int64, error) {
	resp, err := s.client.GetBeerCount(ctx, &pb.GetBeerCountRequest{})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.GetCount(), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != common.StatusOK {
		return ErrUnavailable
	}

	return nil
}

// Health asks the standard health service about BeerService and returns the
// reported status name, e.g. "SERVING".
func (s *GRPCClient) Health(ctx context.Context) (string, error) {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.BeerService_ServiceDesc.ServiceName})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetStatus().String(), nil
}

func toModel(b *pb.Beer) models.Beer {
	return models.Beer{ID: b.GetId(), Name: b.GetName(), CreatedAt: b.GetCreatedAt()}
}

const storagePrefix = "storage "

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		// the status carries only the message, the field is unknown here
		return common.NewValidationError("", st.Message())
	case codes.Unavailable:
		// "storage <op> failed" comes from the server, anything else from
		// the transport
		if op, ok := strings.CutPrefix(st.Message(), storagePrefix); ok && strings.HasSuffix(op, " failed") {
			return common.NewStorageError(strings.TrimSuffix(op, " failed"), ErrUnavailable)
		}
		return ErrUnavailable
	case codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
