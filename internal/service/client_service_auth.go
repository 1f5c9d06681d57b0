package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	keyChain crypto.KeyChainService

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChainService, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, keyChain: keyChain, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, login, passphrase string) (models.Session, error) {
	if err := checkCredentials(login, passphrase); err != nil {
		return models.Session{}, err
	}

	salt, err := a.keyChain.GenerateSalt()
	if err != nil {
		return models.Session{}, fmt.Errorf("generate salt: %w", err)
	}

	dataKey, err := a.keyChain.GenerateDataKey()
	if err != nil {
		return models.Session{}, fmt.Errorf("generate data key: %w", err)
	}

	kek, err := a.keyChain.DeriveKEK(passphrase, salt)
	if err != nil {
		return models.Session{}, fmt.Errorf("derive key: %w", err)
	}

	wrapped, err := a.keyChain.WrapKey(dataKey, kek)
	if err != nil {
		return models.Session{}, fmt.Errorf("wrap data key: %w", err)
	}

	user := models.User{
		Login:              login,
		AuthHash:           a.keyChain.AuthHash(kek),
		EncryptionSalt:     base64.StdEncoding.EncodeToString(salt),
		EncryptedMasterKey: wrapped.String(),
	}

	if _, err = a.adapter.Register(ctx, user); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	a.logger.Info().Str("login", login).Msg("account registered")
	return a.session(dataKey)
}

func (a *clientAuthService) Login(ctx context.Context, login, passphrase string) (models.Session, error) {
	if err := checkCredentials(login, passphrase); err != nil {
		return models.Session{}, err
	}

	params, err := a.adapter.RequestSalt(ctx, login)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	salt, err := base64.StdEncoding.DecodeString(params.EncryptionSalt)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: decode salt: %w", ErrCorruptedKeyMaterial, err)
	}

	kek, err := a.keyChain.DeriveKEK(passphrase, salt)
	if err != nil {
		return models.Session{}, fmt.Errorf("derive key: %w", err)
	}

	found, err := a.adapter.Login(ctx, models.User{Login: login, AuthHash: a.keyChain.AuthHash(kek)})
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	wrapped, err := crypto.ParseEnvelope(found.EncryptedMasterKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptedKeyMaterial, err)
	}

	// The server accepted the auth hash, so the passphrase is right and a
	// failure here means the stored key does not match it.
	dataKey, err := a.keyChain.UnwrapKey(wrapped, kek)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptedKeyMaterial, err)
	}

	a.logger.Info().Str("login", login).Msg("logged in")
	return a.session(dataKey)
}

func (a *clientAuthService) session(dataKey crypto.Key) (models.Session, error) {
	token := a.adapter.Token()
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return models.Session{UserID: userID, Token: token, Key: dataKey}, nil
}

func checkCredentials(login, passphrase string) error {
	if strings.TrimSpace(login) == "" {
		return fmt.Errorf("%w: login is required", ErrInvalidDataProvided)
	}
	if passphrase == "" {
		return ErrEmptyPassphrase
	}
	return nil
}

