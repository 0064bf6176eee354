// Package repomanager wires repository constructors and goose schema
// migrations together for each supported SQL dialect.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/beerkeeper/internal/dbx"
	"github.com/dmitrijs2005/beerkeeper/internal/logging"
	"github.com/dmitrijs2005/beerkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/beerkeeper/internal/server/repositories/beers"
	"github.com/pressly/goose/v3"
)

// RepositoryManager vends repositories bound to a DBTX and brings the
// schema up to date.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Beers(db dbx.DBTX) beers.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// runMigrations applies the embedded migrations of one dialect directory.
// goose keeps dialect and filesystem in package state, so both are set on
// every call. Migration progress goes to logger.
func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string, logger logging.Logger) error {
	goose.SetLogger(newGooseLogger(ctx, logger))
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, dir)
}
