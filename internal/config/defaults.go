package config

import (
	"os"
	"path/filepath"
	"time"
)

// Server defaults. Key material deliberately has none.
const (
	DefaultTokenIssuer     = "go-pass-vault"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxLength       = 128
	DefaultLogLevel        = "info"
	DefaultVersion         = "dev"
)

// Client defaults.
const (
	DefaultStorageMode    = StorageModeBolt
	DefaultClientTimeout  = 10 * time.Second
	DefaultClipboardClear = 15 * time.Second
	DefaultClientAddress  = "http://localhost:8080"
	defaultClientDirName  = "go-pass-vault"
	defaultClientDBName   = "vault.db"
	defaultClientLogName  = "client.log"
)

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Generator: Generator{MaxLength: DefaultMaxLength},
		Log:       Log{Level: DefaultLogLevel},
	}
}

func clientDefaults() *ClientConfig {
	dir := clientDataDir()

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultClientAddress,
			RequestTimeout: DefaultClientTimeout,
		},
		Storage: ClientStorage{
			Mode: DefaultStorageMode,
			Path: filepath.Join(dir, defaultClientDBName),
		},
		Clipboard: ClientClipboard{ClearAfter: DefaultClipboardClear},
		Log: ClientLog{
			File:  filepath.Join(dir, defaultClientLogName),
			Level: DefaultLogLevel,
		},
	}
}

// clientDataDir is the per-user directory holding the local vault and log.
func clientDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, defaultClientDirName)
}
