package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/beerkeeper/internal/common"
	pb "github.com/dmitrijs2005/beerkeeper/internal/proto"
	"github.com/dmitrijs2005/beerkeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) CreateBeer(ctx context.Context, req *pb.CreateBeerRequest) (*pb.Beer, error) {
	beer, err := s.beers.Create(ctx, models.CreateBeerInput{Name: req.GetName()})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Beer created", "id", beer.ID)
	return toPBBeer(beer), nil
}

func (s *GRPCServer) GetBeers(ctx context.Context, req *pb.GetBeersRequest) (*pb.GetBeersResponse, error) {
	list, err := s.beers.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.GetBeersResponse{Beers: make([]*pb.Beer, 0, len(list))}
	for i := range list {
		resp.Beers = append(resp.Beers, toPBBeer(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) GetBeerCount(ctx context.Context, req *pb.GetBeerCountRequest) (*pb.BeerCount, error) {
	count, err := s.beers.Count(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.BeerCount{Count: count.Count}, nil
}

// Ping reports StatusOK when storage answers, Unavailable otherwise.
func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	if err := s.checkStorage(ctx); err != nil {
		s.logger.Error(ctx, "Storage ping failed", "error", err.Error())
		return nil, status.Error(codes.Unavailable, "storage ping failed")
	}
	return &pb.PingResponse{Status: common.StatusOK, Timestamp: time.Now().UTC()}, nil
}

func toPBBeer(b *models.Beer) *pb.Beer {
	return &pb.Beer{Id: b.ID, Name: b.Name, CreatedAt: b.CreatedAt}
}

// toStatus maps façade errors to gRPC status codes. Storage causes are
// logged here and not sent to the caller.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return status.Error(codes.InvalidArgument, ve.Message)
	}

	var se *common.StorageError
	if errors.As(err, &se) {
		s.logger.Error(ctx, "Storage failure", "op", se.Op, "error", err.Error())
		return status.Error(codes.Unavailable, "storage "+se.Op+" failed")
	}

	s.logger.Error(ctx, "Unexpected failure", "error", err.Error())
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
