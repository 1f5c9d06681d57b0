package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// DB is a *sql.DB bound to one dialect: its query builder, its error
// classifier and its migration set.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	queries            queryBuilder
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect migrations.Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		queries: newQueryBuilder(dialect),
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Migrate applies the embedded schema of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op and repeats it while the classifier reports a transient
// failure, up to maxAttempts times in total.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	backoff := retryBackoff

	for attempt := 1; ; attempt++ {
		err = op()
		if err == nil || attempt == maxAttempts || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt).
			Msg("retrying transient database error")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
