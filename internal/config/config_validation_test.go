package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := serverDefaults()
	cfg.Storage.DB.DSN = "postgres://localhost/vault"
	cfg.App.TokenSignKey = testSignKey
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "short sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "short" }, wantErr: ErrInvalidAppConfigs},
		{name: "no issuer", mutate: func(c *StructuredConfig) { c.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "max length zero", mutate: func(c *StructuredConfig) { c.Generator.MaxLength = 0 }, wantErr: ErrInvalidGeneratorConfigs},
		{name: "bad log level", mutate: func(c *StructuredConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{name: "valid local", mutate: func(*ClientConfig) {}},
		{name: "valid remote", mutate: func(c *ClientConfig) { c.Storage.Mode = StorageModeRemote; c.App.Login = "alice" }},
		{name: "remote without login", mutate: func(c *ClientConfig) { c.Storage.Mode = StorageModeRemote }, wantErr: ErrInvalidAppConfigs},
		{name: "remote without address", mutate: func(c *ClientConfig) {
			c.Storage.Mode = StorageModeRemote
			c.App.Login = "alice"
			c.Adapter.HTTPAddress = ""
		}, wantErr: ErrInvalidAdapterConfigs},
		{name: "unknown mode", mutate: func(c *ClientConfig) { c.Storage.Mode = "cloud" }, wantErr: ErrInvalidStorageConfigs},
		{name: "local without path", mutate: func(c *ClientConfig) { c.Storage.Path = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no clipboard delay", mutate: func(c *ClientConfig) { c.Clipboard.ClearAfter = 0 }, wantErr: ErrInvalidClipboardConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := clientDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
