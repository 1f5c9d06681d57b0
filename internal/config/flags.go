package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// registerServerFlags binds the server flags to cfg.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-max-length longest password the generate endpoint returns
//	-log-level zerolog level
func registerServerFlags(fs *flag.FlagSet, cfg *StructuredConfig) {
	fs.Func("a", "Net address host:port", func(s string) error {
		var addr NetAddress
		if err := addr.Set(s); err != nil {
			return err
		}
		cfg.Server.HTTPAddress = addr.String()
		return nil
	})
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.IntVar(&cfg.Generator.MaxLength, "max-length", 0, "Maximum generated password length")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
}

// registerClientFlags binds the global client flags to cfg.
//
// Flags:
//
//	-a server URL for remote mode
//	-login account login for remote mode
//	-mode storage mode: remote, sqlite or bolt
//	-db local database file
//	-timeout request timeout
//	-clear-after clipboard clear delay
//	-c/-config json file path with configs
//	-log-file log file path
//	-log-level zerolog level
func registerClientFlags(fs *flag.FlagSet, cfg *ClientConfig) {
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server URL")
	fs.StringVar(&cfg.App.Login, "login", "", "Account login")
	fs.StringVar(&cfg.Storage.Mode, "mode", "", "Storage mode: remote, sqlite or bolt")
	fs.StringVar(&cfg.Storage.Path, "db", "", "Local database file")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&cfg.Clipboard.ClearAfter, "clear-after", 0, "Clipboard clear delay (e.g., 15s)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
