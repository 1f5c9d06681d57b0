package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService serves the configured version. A blank version is a
// startup error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
