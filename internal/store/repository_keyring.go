package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// keyringRepository is the SQLite implementation of [KeyringRepository].
type keyringRepository struct {
	*DB
	logger *logger.Logger
}

// NewKeyringRepository constructs a [KeyringRepository] backed by db.
func NewKeyringRepository(db *DB, logger *logger.Logger) KeyringRepository {
	return &keyringRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *keyringRepository) LoadKeyring(ctx context.Context, ownerID int64) (models.Keyring, error) {
	query, args, err := r.queries.selectKeyring(ownerID)
	if err != nil {
		return models.Keyring{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var k models.Keyring
	err = r.QueryRowContext(ctx, query, args...).Scan(&k.OwnerID, &k.Salt, &k.WrappedKey, &k.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Keyring{}, ErrKeyringNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "keyringRepository.LoadKeyring").Msg("failed to load keyring")
		return models.Keyring{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return k, nil
}

func (r *keyringRepository) SaveKeyring(ctx context.Context, keyring models.Keyring) error {
	query, args, err := r.queries.insertKeyring(keyring)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "keyringRepository.SaveKeyring").Msg("failed to save keyring")
		if r.errorClassificator.IsUniqueViolation(err) {
			return ErrKeyringAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
