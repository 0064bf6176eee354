// Package migrations embeds the SQL schema migrations applied with goose,
// one directory per SQL dialect.
package migrations

import "embed"

// Directories inside Migrations holding each dialect's files.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
