// Package migrations embeds the SQL schema of the server (PostgreSQL) and of
// the local client store (SQLite) and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect selects the migration set and the goose dialect.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var gooseDialects = map[Dialect]string{
	DialectPostgres: "pgx",
	DialectSQLite:   "sqlite3",
}

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: unknown dialect %q", dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(dialect)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
