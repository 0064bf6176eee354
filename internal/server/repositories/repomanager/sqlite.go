package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/beerkeeper/internal/dbx"
	"github.com/dmitrijs2005/beerkeeper/internal/logging"
	"github.com/dmitrijs2005/beerkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/beerkeeper/internal/server/repositories/beers"
)

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct {
	logger logging.Logger
}

func (m *SQLiteRepositoryManager) Beers(db dbx.DBTX) beers.Repository {
	return beers.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", migrations.SQLiteDir, m.logger)
}

func NewSQLiteRepositoryManager(logger logging.Logger) RepositoryManager {
	return &SQLiteRepositoryManager{logger: logger}
}
