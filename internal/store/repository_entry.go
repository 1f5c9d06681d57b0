// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// entryRepository is the SQL implementation of [EntryRepository] used for
// both PostgreSQL (server) and SQLite (local client). Statements come from
// the DB's dialect-aware query builder.
//
// Every method obtains a context-scoped logger via [logger.FromContext].
// Only ids are logged, never titles or envelopes.
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *entryRepository) Insert(ctx context.Context, entry models.Entry) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.insertEntry(entry)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.Insert").
			Int64("owner_id", entry.OwnerID).
			Str("entry_id", entry.ID).
			Msg("failed to insert entry")

		if r.errorClassificator.IsUniqueViolation(err) {
			return "", ErrEntryAlreadyExists
		}
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry.ID, nil
}

func (r *entryRepository) FindByOwner(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectEntriesByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.FindByOwner").
			Int64("owner_id", ownerID).
			Msg("failed to query entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.FindByOwner").
				Int64("owner_id", ownerID).
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "entryRepository.FindByOwner").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *entryRepository) FindByID(ctx context.Context, ownerID int64, id string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectEntryByID(ownerID, id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.Entry
	err = r.withRetry(ctx, func() error {
		var scanErr error
		entry, scanErr = scanEntry(r.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.FindByID").
			Int64("owner_id", ownerID).
			Str("entry_id", id).
			Msg("failed to get entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *entryRepository) Update(ctx context.Context, entry models.Entry) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.updateEntry(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.Update").
			Int64("owner_id", entry.OwnerID).
			Str("entry_id", entry.ID).
			Msg("failed to update entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *entryRepository) DeleteByID(ctx context.Context, ownerID int64, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.deleteEntry(ownerID, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.DeleteByID").
			Int64("owner_id", ownerID).
			Str("entry_id", id).
			Msg("failed to delete entry")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var e models.Entry
	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Title,
		&e.Username,
		&e.Secret,
		&e.URL,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}
