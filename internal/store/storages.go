package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups the server repositories. Close releases the connection
// pool they share.
type Storages struct {
	UserRepository  UserRepository
	EntryRepository EntryRepository

	close func() error
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// server repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		EntryRepository: NewEntryRepository(db, log),
		close:           db.Close,
	}, nil
}

// Close releases the underlying database.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// ClientStorages groups the repositories of a local vault file.
type ClientStorages struct {
	EntryRepository   EntryRepository
	KeyringRepository KeyringRepository

	close func() error
}

// NewClientStorages opens the local store selected by cfg.Mode: a SQLite
// database (migrated on open) or a bbolt file. Remote mode has no local
// store and returns [ErrUnsupportedStorageMode].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	switch cfg.Mode {
	case config.StorageModeSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Path, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &ClientStorages{
			EntryRepository:   NewEntryRepository(db, log),
			KeyringRepository: NewKeyringRepository(db, log),
			close:             db.Close,
		}, nil

	case config.StorageModeBolt:
		db, err := NewConnectBolt(cfg.Path, log)
		if err != nil {
			return nil, err
		}
		return &ClientStorages{
			EntryRepository:   NewBoltEntryRepository(db, log),
			KeyringRepository: NewBoltKeyringRepository(db, log),
			close:             db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStorageMode, cfg.Mode)
	}
}

// Close releases the local database file.
func (s *ClientStorages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
