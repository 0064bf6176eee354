// Package beers provides the record store for beer entries: a SQL
// implementation shared by the PostgreSQL and SQLite dialects and an
// in-memory implementation.
package beers

import (
	"context"
	"time"

	"github.com/dmitrijs2005/beerkeeper/internal/server/models"
)

// Operation names reported in common.StorageError.Op.
const (
	OpInsert      = "insert"
	OpSelectAll   = "select_all"
	OpSelectCount = "select_count"
)

// Repository is the record store. Insert does not validate name: callers
// that need validation go through services.BeerService.
type Repository interface {
	// Insert assigns the next id and the creation time, persists the
	// record and returns it.
	Insert(ctx context.Context, name string) (*models.Beer, error)
	// SelectAll returns every record ordered by id ascending. The slice is
	// empty, never nil, when the store holds no records.
	SelectAll(ctx context.Context) ([]models.Beer, error)
	// SelectCount returns the number of stored records.
	SelectCount(ctx context.Context) (int64, error)
}

// Clock supplies creation timestamps.
type Clock func() time.Time

// systemClock truncates to microseconds, the precision of a PostgreSQL
// timestamp, so an inserted record compares equal to its later reads.
func systemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
