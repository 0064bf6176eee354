package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/beerkeeper/internal/logging"
	pb "github.com/dmitrijs2005/beerkeeper/internal/proto"
	"github.com/dmitrijs2005/beerkeeper/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// beerSvc is the façade consumed by the handlers.
type beerSvc interface {
	Create(ctx context.Context, input models.CreateBeerInput) (*models.Beer, error)
	List(ctx context.Context) ([]models.Beer, error)
	Count(ctx context.Context) (*models.BeerCount, error)
}

// pinger reports whether the storage medium is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

const defaultHealthInterval = 5 * time.Second

type GRPCServer struct {
	pb.UnimplementedBeerServiceServer
	address        string
	beers          beerSvc
	store          pinger
	healthInterval time.Duration
	logger         logging.Logger
}

// NewGRPCServer builds the server. A nil store is treated as always
// reachable.
func NewGRPCServer(a string, l logging.Logger, bs beerSvc, store pinger) *GRPCServer {
	return &GRPCServer{
		address:        a,
		logger:         l.With("module", "grpc_server"),
		beers:          bs,
		store:          store,
		healthInterval: defaultHealthInterval,
	}
}

// newServer builds a grpc.Server with the interceptors, BeerService and the
// standard health service registered.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.loggingInterceptor))

	pb.RegisterBeerServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.BeerService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.newServer()

	go s.watchHealth(ctx, hs)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}

// checkStorage pings the store, bounded by the health interval.
func (s *GRPCServer) checkStorage(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.healthInterval)
	defer cancel()
	return s.store.Ping(ctx)
}

// watchHealth keeps the health service in step with storage reachability
// until ctx is done.
func (s *GRPCServer) watchHealth(ctx context.Context, hs *health.Server) {
	ticker := time.NewTicker(s.healthInterval)
	defer ticker.Stop()

	serving := true
	for {
		err := s.checkStorage(ctx)
		if ctx.Err() != nil {
			return
		}

		if ok := err == nil; ok != serving {
			serving = ok
			st := healthpb.HealthCheckResponse_SERVING
			if !ok {
				st = healthpb.HealthCheckResponse_NOT_SERVING
				s.logger.Warn(ctx, "Storage unreachable", "error", err.Error())
			} else {
				s.logger.Info(ctx, "Storage reachable again")
			}
			hs.SetServingStatus("", st)
			hs.SetServingStatus(pb.BeerService_ServiceDesc.ServiceName, st)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
