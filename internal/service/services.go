package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Services struct {
	AuthService      AuthService
	EntryService     EntryService
	GeneratorService GeneratorService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	entryService := NewEntryValidationService().Wrap(NewEntryService(storages.EntryRepository, logger))

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		EntryService:     entryService,
		GeneratorService: NewGeneratorService(cfg.Generator.MaxLength, logger),
		AppInfoService:   appInfoService,
	}, nil
}
