package beers

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/beerkeeper/internal/common"
	"github.com/dmitrijs2005/beerkeeper/internal/dbx"
	"github.com/dmitrijs2005/beerkeeper/internal/server/models"
)

const tableName = "beers"

// SQLRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
// The identity column of the table assigns ids, so concurrent inserts never
// collide; each insert is a single statement and therefore atomic.
type SQLRepository struct {
	db      dbx.DBTX
	builder sq.StatementBuilderType
	now     Clock
}

// NewPostgresRepository constructs a repository emitting $n placeholders.
func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return newSQLRepository(db, sq.Dollar)
}

// NewSQLiteRepository constructs a repository emitting ? placeholders.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return newSQLRepository(db, sq.Question)
}

func newSQLRepository(db dbx.DBTX, format sq.PlaceholderFormat) *SQLRepository {
	return &SQLRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(format),
		now:     systemClock,
	}
}

// WithClock replaces the timestamp source; used by tests.
func (r *SQLRepository) WithClock(c Clock) *SQLRepository {
	r.now = c
	return r
}

func (r *SQLRepository) Insert(ctx context.Context, name string) (*models.Beer, error) {
	beer := &models.Beer{Name: name, CreatedAt: r.now()}

	query, args, err := r.builder.
		Insert(tableName).
		Columns("name", "created_at").
		Values(beer.Name, beer.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&beer.ID); err != nil {
		return nil, common.NewStorageError(OpInsert, err)
	}

	return beer, nil
}

func (r *SQLRepository) SelectAll(ctx context.Context) ([]models.Beer, error) {
	query, args, err := r.builder.
		Select("id", "name", "created_at").
		From(tableName).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewStorageError(OpSelectAll, err)
	}
	defer rows.Close()

	result := make([]models.Beer, 0)
	for rows.Next() {
		var item models.Beer
		if err := rows.Scan(&item.ID, &item.Name, &item.CreatedAt); err != nil {
			return nil, common.NewStorageError(OpSelectAll, err)
		}
		item.CreatedAt = item.CreatedAt.UTC()
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError(OpSelectAll, err)
	}
	return result, nil
}

func (r *SQLRepository) SelectCount(ctx context.Context) (int64, error) {
	query, args, err := r.builder.
		Select("COUNT(*)").
		From(tableName).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, common.NewStorageError(OpSelectCount, err)
	}
	return n, nil
}
