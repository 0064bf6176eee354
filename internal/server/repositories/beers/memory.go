package beers

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/beerkeeper/internal/server/models"
)

// InMemoryRepository keeps records in process memory. Ids come from a
// counter advanced under the same lock that appends the record, so an
// observer never sees an id that is not yet queryable.
type InMemoryRepository struct {
	mu     sync.RWMutex
	lastID int64
	items  []models.Beer
	now    Clock
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{now: systemClock}
}

// WithClock replaces the timestamp source; used by tests.
func (r *InMemoryRepository) WithClock(c Clock) *InMemoryRepository {
	r.now = c
	return r
}

func (r *InMemoryRepository) Insert(ctx context.Context, name string) (*models.Beer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	beer := models.Beer{ID: r.lastID, Name: name, CreatedAt: r.now()}
	r.items = append(r.items, beer)

	return &beer, nil
}

func (r *InMemoryRepository) SelectAll(ctx context.Context) ([]models.Beer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Beer, len(r.items))
	copy(result, r.items)
	return result, nil
}

func (r *InMemoryRepository) SelectCount(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.items)), nil
}
