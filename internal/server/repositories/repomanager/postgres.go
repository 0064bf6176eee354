package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/beerkeeper/internal/dbx"
	"github.com/dmitrijs2005/beerkeeper/internal/logging"
	"github.com/dmitrijs2005/beerkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/beerkeeper/internal/server/repositories/beers"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct {
	logger logging.Logger
}

// Beers returns a beers.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Beers(db dbx.DBTX) beers.Repository {
	return beers.NewPostgresRepository(db)
}

// RunMigrations applies the PostgreSQL migrations through the pgx dialect.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "pgx", migrations.PostgresDir, m.logger)
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(logger logging.Logger) RepositoryManager {
	return &PostgresRepositoryManager{logger: logger}
}
