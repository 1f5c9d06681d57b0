package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=EntryServiceWrapper

// AuthService manages server accounts. The server only ever sees the auth
// hash, the salt and the wrapped data key; it keeps a bcrypt digest of the
// auth hash.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	Params(ctx context.Context, login string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EntryService stores sealed entries for an owner. Secrets are opaque
// envelopes; the server never opens them.
type EntryService interface {
	Create(ctx context.Context, ownerID int64, input models.EntryInput) (models.Entry, error)
	List(ctx context.Context, ownerID int64) ([]models.Entry, error)
	Get(ctx context.Context, ownerID int64, id string) (models.Entry, error)
	Update(ctx context.Context, ownerID int64, id string, input models.EntryInput) (models.Entry, error)
	Delete(ctx context.Context, ownerID int64, id string) error
}

// EntryServiceWrapper decorates an EntryService, e.g. with input
// validation.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService
}

// GeneratorService produces passwords under a policy. Generated passwords
// are never logged.
type GeneratorService interface {
	Generate(ctx context.Context, policy models.GenerationPolicy) (models.GeneratedPassword, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
