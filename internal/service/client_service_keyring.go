package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// localOwnerID owns every entry of a local vault file.
const localOwnerID int64 = 1

type localKeyringService struct {
	keyringRepository store.KeyringRepository
	keyChain          crypto.KeyChainService
	now               func() time.Time

	logger *logger.Logger
}

func NewLocalKeyringService(keyringRepository store.KeyringRepository, keyChain crypto.KeyChainService, logger *logger.Logger) LocalKeyringService {
	return &localKeyringService{
		keyringRepository: keyringRepository,
		keyChain:          keyChain,
		now:               currentTime,
		logger:            logger,
	}
}

// Unlock opens the local vault. The first call on an empty file creates the
// keyring, so the passphrase given then becomes the vault passphrase.
func (s *localKeyringService) Unlock(ctx context.Context, passphrase string) (models.Session, error) {
	if passphrase == "" {
		return models.Session{}, ErrEmptyPassphrase
	}

	keyring, err := s.keyringRepository.LoadKeyring(ctx, localOwnerID)
	if errors.Is(err, store.ErrKeyringNotFound) {
		return s.initialize(ctx, passphrase)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load keyring: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(keyring.Salt)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: decode salt: %w", ErrCorruptedKeyMaterial, err)
	}

	wrapped, err := crypto.ParseEnvelope(keyring.WrappedKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptedKeyMaterial, err)
	}

	kek, err := s.keyChain.DeriveKEK(passphrase, salt)
	if err != nil {
		return models.Session{}, fmt.Errorf("derive key: %w", err)
	}

	dataKey, err := s.keyChain.UnwrapKey(wrapped, kek)
	if errors.Is(err, crypto.ErrDecryptionFailed) {
		return models.Session{}, ErrWrongPassphrase
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("unwrap data key: %w", err)
	}

	return models.Session{UserID: localOwnerID, Key: dataKey}, nil
}

func (s *localKeyringService) initialize(ctx context.Context, passphrase string) (models.Session, error) {
	salt, err := s.keyChain.GenerateSalt()
	if err != nil {
		return models.Session{}, fmt.Errorf("generate salt: %w", err)
	}

	dataKey, err := s.keyChain.GenerateDataKey()
	if err != nil {
		return models.Session{}, fmt.Errorf("generate data key: %w", err)
	}

	kek, err := s.keyChain.DeriveKEK(passphrase, salt)
	if err != nil {
		return models.Session{}, fmt.Errorf("derive key: %w", err)
	}

	wrapped, err := s.keyChain.WrapKey(dataKey, kek)
	if err != nil {
		return models.Session{}, fmt.Errorf("wrap data key: %w", err)
	}

	err = s.keyringRepository.SaveKeyring(ctx, models.Keyring{
		OwnerID:    localOwnerID,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		WrappedKey: wrapped.String(),
		CreatedAt:  s.now(),
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("save keyring: %w", err)
	}

	s.logger.Info().Msg("local vault initialized")
	return models.Session{UserID: localOwnerID, Key: dataKey}, nil
}
