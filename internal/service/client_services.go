package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// ClientServices is the service set of one client run. Exactly one of
// AuthService and KeyringService is set, depending on the storage mode.
type ClientServices struct {
	AuthService    ClientAuthService
	KeyringService LocalKeyringService
	VaultService   VaultService
}

// NewRemoteClientServices builds services that keep entries on the server
// behind serverAdapter.
func NewRemoteClientServices(cfg config.ClientKDF, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	keyChain := newClientKeyChain(cfg)

	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, keyChain, logger),
		VaultService: NewVaultService(serverAdapter, NewGeneratorService(config.DefaultMaxLength, logger), logger),
	}
}

// NewLocalClientServices builds services on top of a local vault file.
func NewLocalClientServices(cfg config.ClientKDF, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	keyChain := newClientKeyChain(cfg)

	return &ClientServices{
		KeyringService: NewLocalKeyringService(storages.KeyringRepository, keyChain, logger),
		VaultService:   NewVaultService(storages.EntryRepository, NewGeneratorService(config.DefaultMaxLength, logger), logger),
	}
}

func newClientKeyChain(cfg config.ClientKDF) crypto.KeyChainService {
	return crypto.NewKeyChainService(crypto.WithArgon2Params(cfg.Time, cfg.MemoryKiB, cfg.Threads))
}
