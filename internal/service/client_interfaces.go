package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService opens a remote vault. The passphrase never leaves the
// client: only the salt, the wrapped data key and the auth hash are sent to
// the server.
type ClientAuthService interface {
	// Register creates fresh key material for login, creates the account on
	// the server and returns an unlocked session.
	Register(ctx context.Context, login, passphrase string) (models.Session, error)

	// Login fetches the salt, derives the key-encryption key, authenticates
	// with the auth hash and unwraps the data key returned by the server.
	// A wrong passphrase surfaces as [ErrWrongPassword].
	Login(ctx context.Context, login, passphrase string) (models.Session, error)
}

// LocalKeyringService opens a vault kept in a local file.
type LocalKeyringService interface {
	// Unlock loads the keyring of the local vault, creating it on first use,
	// and unwraps the data key. A wrong passphrase surfaces as
	// [ErrWrongPassphrase].
	Unlock(ctx context.Context, passphrase string) (models.Session, error)
}

// VaultService manages the entries of an unlocked session. Passwords are
// sealed before they reach the repository and opened only by Reveal.
type VaultService interface {
	Generate(ctx context.Context, policy models.GenerationPolicy) (models.GeneratedPassword, error)
	Save(ctx context.Context, session models.Session, input models.EntryInput) (models.Entry, error)
	List(ctx context.Context, session models.Session) ([]models.Entry, error)
	// Get returns the entry with its password still sealed.
	Get(ctx context.Context, session models.Session, id string) (models.Entry, error)
	// Reveal returns the entry together with its plaintext password.
	Reveal(ctx context.Context, session models.Session, id string) (models.Entry, string, error)
	// Edit updates the entry. The password is re-sealed only when
	// input.Password is set.
	Edit(ctx context.Context, session models.Session, id string, input models.EntryInput) (models.Entry, error)
	Delete(ctx context.Context, session models.Session, id string) error
}
