package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Generator struct {
		MaxLength int `json:"max_length"`
	} `json:"generator,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

// ClientJSONConfig is the on-disk JSON layout of [ClientConfig].
type ClientJSONConfig struct {
	Login string `json:"login"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Mode string `json:"mode"`
		Path string `json:"path"`
	} `json:"storage,omitempty"`

	Clipboard struct {
		ClearAfter Duration `json:"clear_after"`
	} `json:"clipboard,omitempty"`

	KDF struct {
		Time      uint32 `json:"time"`
		MemoryKiB uint32 `json:"memory_kib"`
		Threads   uint8  `json:"threads"`
	} `json:"kdf,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseServerJSON(jsonFilePath string) (*StructuredConfig, error) {
	var jsonCfg StructuredJSONConfig
	if err := decodeJSONFile(jsonFilePath, &jsonCfg); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Generator: Generator{MaxLength: jsonCfg.Generator.MaxLength},
		Log:       Log{Level: jsonCfg.Log.Level},
	}

	return cfg, nil
}

func parseClientJSON(jsonFilePath string) (*ClientConfig, error) {
	var jsonCfg ClientJSONConfig
	if err := decodeJSONFile(jsonFilePath, &jsonCfg); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		App: ClientApp{Login: jsonCfg.Login},
		Adapter: ClientAdapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: ClientStorage{
			Mode: jsonCfg.Storage.Mode,
			Path: jsonCfg.Storage.Path,
		},
		Clipboard: ClientClipboard{ClearAfter: time.Duration(jsonCfg.Clipboard.ClearAfter)},
		KDF: ClientKDF{
			Time:      jsonCfg.KDF.Time,
			MemoryKiB: jsonCfg.KDF.MemoryKiB,
			Threads:   jsonCfg.KDF.Threads,
		},
		Log: ClientLog{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

func decodeJSONFile(path string, dst any) error {
	jsonFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	if err := json.NewDecoder(jsonFile).Decode(dst); err != nil {
		return fmt.Errorf("error decoding json configs: %w", err)
	}

	return nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
