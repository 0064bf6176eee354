// Package services holds the caller-facing operations of the server. Each
// operation validates its input where needed and hands over to a repository.
package services

import (
	"context"

	"github.com/dmitrijs2005/beerkeeper/internal/server/models"
	"github.com/dmitrijs2005/beerkeeper/internal/server/repositories/beers"
)

// BeerService is the query façade over the beer record store. Repository
// errors are returned unchanged and never retried.
type BeerService struct {
	repo beers.Repository
}

func NewBeerService(repo beers.Repository) *BeerService {
	return &BeerService{repo: repo}
}

// Create validates input and stores a new record. On validation failure the
// store is not touched.
func (s *BeerService) Create(ctx context.Context, input models.CreateBeerInput) (*models.Beer, error) {
	if err := ValidateName(input.Name); err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, input.Name)
}

// List returns all records in insertion order.
func (s *BeerService) List(ctx context.Context) ([]models.Beer, error) {
	return s.repo.SelectAll(ctx)
}

// Count returns the number of stored records.
func (s *BeerService) Count(ctx context.Context) (*models.BeerCount, error) {
	n, err := s.repo.SelectCount(ctx)
	if err != nil {
		return nil, err
	}
	return &models.BeerCount{Count: n}, nil
}
