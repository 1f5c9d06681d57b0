package config

import (
	"os"
	"time"
)

// Client storage modes.
const (
	StorageModeRemote = "remote"
	StorageModeSQLite = "sqlite"
	StorageModeBolt   = "bolt"
)

// clientEnvPrefix keeps client variables apart from the server ones when both
// run on one machine.
const clientEnvPrefix = "VAULT_"

// ClientConfig is the configuration of the command-line client. Environment
// variables carry the VAULT_ prefix, e.g. VAULT_STORAGE_MODE.
type ClientConfig struct {
	// App holds the account the client acts for in remote mode.
	App ClientApp `envPrefix:"APP_"`
	// Adapter holds the server address and request timeout for remote mode.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// Storage selects where entries live.
	Storage ClientStorage `envPrefix:"STORAGE_"`
	// Clipboard controls the copy command.
	Clipboard ClientClipboard `envPrefix:"CLIPBOARD_"`
	// KDF tunes passphrase key derivation. Zero values keep the defaults.
	KDF ClientKDF `envPrefix:"KDF_"`
	// Log controls where and how verbosely the client logs.
	Log ClientLog `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG"`
}

// ClientApp holds account settings.
type ClientApp struct {
	Login string `env:"LOGIN"`
}

// ClientAdapter holds network settings used by the remote adapter.
type ClientAdapter struct {
	// HTTPAddress is the server base URL, with or without scheme.
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientStorage selects the entry store.
type ClientStorage struct {
	// Mode is one of "remote", "sqlite" or "bolt".
	Mode string `env:"MODE"`
	// Path is the local database file for the sqlite and bolt modes.
	Path string `env:"PATH"`
}

// ClientClipboard controls how long copied secrets stay on the clipboard.
type ClientClipboard struct {
	ClearAfter time.Duration `env:"CLEAR_AFTER"`
}

// ClientKDF holds Argon2id cost parameters.
type ClientKDF struct {
	Time      uint32 `env:"TIME"`
	MemoryKiB uint32 `env:"MEMORY_KIB"`
	Threads   uint8  `env:"THREADS"`
}

// ClientLog controls the client log file.
type ClientLog struct {
	File  string `env:"FILE"`
	Level string `env:"LEVEL"`
}

// IsRemote reports whether entries are kept on the server.
func (cfg *ClientConfig) IsRemote() bool {
	return cfg.Storage.Mode == StorageModeRemote
}

// GetClientConfig loads the client configuration from os.Args and the
// process environment. See [LoadClientConfig].
func GetClientConfig() (*ClientConfig, []string, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig loads, merges, and validates the client configuration in
// the same order as [LoadStructuredConfig]. Global flags come first in args;
// everything from the first non-flag argument on is returned as the command
// line of the subcommand.
func LoadClientConfig(args []string) (*ClientConfig, []string, error) {
	return newClientConfigBuilder(args).
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

func newClientConfigBuilder(args []string) *configBuilder[ClientConfig] {
	return newConfigBuilder(args, sources[ClientConfig]{
		envPrefix: clientEnvPrefix,
		flags:     registerClientFlags,
		json:      parseClientJSON,
		jsonPath:  func(cfg *ClientConfig) string { return cfg.JSONFilePath },
		defaults:  clientDefaults,
		validate:  (*ClientConfig).validate,
	})
}
