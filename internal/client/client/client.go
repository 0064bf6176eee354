package client

import (
	"context"

	"github.com/dmitrijs2005/beerkeeper/internal/client/models"
)

// Client is the transport-agnostic contract the CLI talks to.
type Client interface {
	Close() error
	CreateBeer(ctx context.Context, name string) (*models.Beer, error)
	GetBeers(ctx context.Context) ([]models.Beer, error)
	GetBeerCount(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	Health(ctx context.Context) (string, error)
}
