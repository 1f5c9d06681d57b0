// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the vault server on behalf of the client.
//
// [ServerAdapter] covers the account endpoints and also satisfies
// store.EntryRepository, so the client's vault service runs unchanged against
// the server or a local file. The server derives the owner from the bearer
// token; ownerID arguments are used only to fill in the returned entries.
//
// Non-2xx answers are mapped by mapHTTPError to the sentinels in errors.go
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). Entry operations
// additionally translate 404 and 409 into store.ErrEntryNotFound and
// store.ErrEntryAlreadyExists.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the vault server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the current bearer token or "".
	Token() string

	// Register creates the account and stores the returned bearer token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// RequestSalt fetches the encryption salt stored for login.
	RequestSalt(ctx context.Context, login string) (models.User, error)

	// Login authenticates with the auth hash, stores the returned bearer
	// token and returns the user with its wrapped data key.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	Insert(ctx context.Context, entry models.Entry) (string, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]models.Entry, error)
	FindByID(ctx context.Context, ownerID int64, id string) (models.Entry, error)
	Update(ctx context.Context, entry models.Entry) error
	DeleteByID(ctx context.Context, ownerID int64, id string) (bool, error)
}
