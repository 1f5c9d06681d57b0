package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// authService is the concrete implementation of AuthService.
//
// The auth hash sent by the client is derived from the passphrase key and is
// itself a secret: it is stored only as a bcrypt digest and never logged.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt cost applied at registration.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// compare checks an auth hash against a bcrypt digest.
	compare func(digest, authHash []byte) error

	logger *logger.Logger
}

// unknownUserDigest is compared against when the login does not exist, so
// both failure paths cost one bcrypt comparison.
var unknownUserDigest = sync.OnceValue(func() []byte {
	digest, err := bcrypt.GenerateFromPassword([]byte("unknown-user"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("bcrypt digest for unknown users: %v", err))
	}
	return digest
})

// NewAuthService constructs an AuthService wired to userRepository with token
// parameters taken from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashCost:       bcrypt.DefaultCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		compare:        bcrypt.CompareHashAndPassword,
		logger:         logger,
	}
}

// RegisterUser creates an account from client-built key material.
//
// Login, AuthHash, EncryptionSalt and EncryptedMasterKey are required and the
// wrapped key must be a well-formed envelope. The returned user carries the
// server-assigned UserID and no auth hash.
//
// Returns ErrInvalidDataProvided on missing or malformed fields, or a wrapped
// store error (see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.AuthHash == "" || user.EncryptionSalt == "" || user.EncryptedMasterKey == "" {
		log.Error().Str("login", user.Login).Msg("incomplete registration data")
		return models.User{}, ErrInvalidDataProvided
	}
	if _, err := crypto.ParseEnvelope(user.EncryptedMasterKey); err != nil {
		log.Error().Str("login", user.Login).Msg("wrapped key is not an envelope")
		return models.User{}, ErrInvalidDataProvided
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(user.AuthHash), a.hashCost)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("hashing auth hash failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	user.AuthHash = string(digest)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.AuthHash = ""
	return registeredUser, nil
}

// Login checks the auth hash against the stored bcrypt digest.
//
// An unknown login and a wrong hash both yield ErrWrongPassword. On success
// the user is returned with salt and wrapped key but without the digest.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.AuthHash == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("login", user.Login).Msg("login attempt for unknown user")
		_ = a.compare(unknownUserDigest(), []byte(user.AuthHash))
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err := a.compare([]byte(foundUser.AuthHash), []byte(user.AuthHash)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	foundUser.AuthHash = ""
	return foundUser, nil
}

// Params returns the login and encryption salt the client needs to derive
// its passphrase key before logging in.
func (a *authService) Params(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" {
		log.Error().Msg("empty login for params request")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	return models.User{Login: foundUser.Login, EncryptionSalt: foundUser.EncryptionSalt}, nil
}

// CreateToken issues a signed JWT for user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates tokenString. Expired tokens yield ErrTokenIsExpired,
// every other failure ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
