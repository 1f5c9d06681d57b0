package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntryRepository persists vault entries. Entries are always scoped to an
// owner: an id that belongs to someone else behaves as if it did not exist.
//
// It is implemented by PostgreSQL and SQLite (shared SQL code), by bbolt, and
// on the client by the remote HTTP adapter, so the vault service does not
// know where entries live.
type EntryRepository interface {
	// Insert stores a new entry and returns its id.
	Insert(ctx context.Context, entry models.Entry) (string, error)
	// FindByOwner returns all entries of ownerID, newest first.
	FindByOwner(ctx context.Context, ownerID int64) ([]models.Entry, error)
	// FindByID returns one entry or [ErrEntryNotFound].
	FindByID(ctx context.Context, ownerID int64, id string) (models.Entry, error)
	// Update replaces the mutable fields of an existing entry.
	Update(ctx context.Context, entry models.Entry) error
	// DeleteByID removes an entry and reports whether it existed.
	DeleteByID(ctx context.Context, ownerID int64, id string) (bool, error)
}

// UserRepository persists server accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// KeyringRepository persists the key material of a local vault.
type KeyringRepository interface {
	LoadKeyring(ctx context.Context, ownerID int64) (models.Keyring, error)
	SaveKeyring(ctx context.Context, keyring models.Keyring) error
}

// ErrorClassificator interprets driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a primary key or unique
	// constraint violation.
	IsUniqueViolation(err error) bool
}
