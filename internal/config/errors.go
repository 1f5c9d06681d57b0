package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token settings on the server or
	// a missing login for the remote client.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing DSN, an unknown client
	// storage mode or a missing local database path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or
	// non-positive timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid remote adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidGeneratorConfigs indicates a non-positive maximum length.
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidClipboardConfigs indicates a non-positive clear delay.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
