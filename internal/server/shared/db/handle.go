// Package db owns the lifecycle of the persistence medium: it opens the
// connection selected by configuration, migrates the schema, vends the record
// store and closes everything at shutdown.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/beerkeeper/internal/filex"
	"github.com/dmitrijs2005/beerkeeper/internal/logging"
	"github.com/dmitrijs2005/beerkeeper/internal/server/config"
	"github.com/dmitrijs2005/beerkeeper/internal/server/repositories/beers"
	"github.com/dmitrijs2005/beerkeeper/internal/server/repositories/repomanager"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Handle is an open persistence medium. It is created once at startup,
// injected into services and closed at shutdown.
type Handle struct {
	driver string
	conn   *sql.DB
	beers  beers.Repository
}

// Open connects to the medium named by driver (config.DriverPostgres,
// config.DriverSQLite or config.DriverMemory), verifies the connection and
// applies migrations.
func Open(ctx context.Context, driver, dsn string, logger logging.Logger) (*Handle, error) {
	logger = logger.With("module", "db", "driver", driver)

	switch driver {
	case config.DriverMemory:
		logger.Warn(ctx, "Using in-memory storage, records are lost on restart")
		return &Handle{driver: driver, beers: beers.NewInMemoryRepository()}, nil
	case config.DriverPostgres:
		return openSQL(ctx, driver, "pgx", dsn, 0, repomanager.NewPostgresRepositoryManager(logger), logger)
	case config.DriverSQLite:
		if path := filex.SQLitePath(dsn); path != "" {
			if err := filex.EnsureParentDir(path); err != nil {
				return nil, fmt.Errorf("db open error: %w", err)
			}
		}
		// a single connection keeps ":memory:" databases shared and
		// serializes writers instead of failing with SQLITE_BUSY
		return openSQL(ctx, driver, "sqlite", dsn, 1, repomanager.NewSQLiteRepositoryManager(logger), logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// openSQL opens the pool, limiting it to maxOpenConns when positive.
func openSQL(ctx context.Context, driver, sqlDriver, dsn string, maxOpenConns int, m repomanager.RepositoryManager, logger logging.Logger) (*Handle, error) {
	conn, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if maxOpenConns > 0 {
		conn.SetMaxOpenConns(maxOpenConns)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := m.RunMigrations(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	logger.Info(ctx, "Database ready")

	return &Handle{driver: driver, conn: conn, beers: m.Beers(conn)}, nil
}

// Driver reports the configured driver name.
func (h *Handle) Driver() string {
	return h.driver
}

// Beers returns the record store backed by this handle.
func (h *Handle) Beers() beers.Repository {
	return h.beers
}

// Ping checks that the medium is still reachable.
func (h *Handle) Ping(ctx context.Context) error {
	if h.conn == nil {
		return nil
	}
	return h.conn.PingContext(ctx)
}

// Close releases the connection pool. It is a no-op for in-memory storage.
func (h *Handle) Close() error {
	if h.conn == nil {
		return nil
	}
	return h.conn.Close()
}
