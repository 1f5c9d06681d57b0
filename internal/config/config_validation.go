// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// minTokenSignKeyLen matches the HS256 key size.
const minTokenSignKeyLen = 32

// validate checks that the final merged [StructuredConfig] can start the
// server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if len(cfg.App.TokenSignKey) < minTokenSignKeyLen {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minTokenSignKeyLen)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Generator.MaxLength < 1 {
		return ErrInvalidGeneratorConfigs
	}

	return validateLogLevel(cfg.Log.Level)
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Mode {
	case StorageModeRemote:
		if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
		if cfg.App.Login == "" {
			return fmt.Errorf("%w: login is required in remote mode", ErrInvalidAppConfigs)
		}
	case StorageModeSQLite, StorageModeBolt:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("%w: database path is required in %s mode", ErrInvalidStorageConfigs, cfg.Storage.Mode)
		}
	default:
		return fmt.Errorf("%w: unknown storage mode %q", ErrInvalidStorageConfigs, cfg.Storage.Mode)
	}

	if cfg.Clipboard.ClearAfter <= 0 {
		return ErrInvalidClipboardConfigs
	}

	return validateLogLevel(cfg.Log.Level)
}

func validateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}
