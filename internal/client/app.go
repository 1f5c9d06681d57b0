package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

type App struct {
	cfg       *config.ClientConfig
	services  *service.ClientServices
	server    adapter.ServerAdapter
	buildInfo models.AppBuildInfo

	secrets     SecretReader
	getenv      func(string) string
	clipboard   workers.Clipboard
	in          io.Reader
	out         io.Writer
	interactive bool

	close  func() error
	logger *logger.Logger
}

// NewApp builds the client for the storage mode in cfg. Close must be called
// when the app is no longer needed.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	app := &App{
		cfg:         cfg,
		buildInfo:   buildInfo,
		secrets:     NewTerminalReader(),
		getenv:      os.Getenv,
		clipboard:   workers.SystemClipboard(),
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd())),
		close:       func() error { return nil },
		logger:      logger,
	}

	if cfg.IsRemote() {
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
		if err != nil {
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
		app.server = serverAdapter
		app.services = service.NewRemoteClientServices(cfg.KDF, serverAdapter, logger)
		return app, nil
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("open local vault: %w", err)
	}
	app.services = service.NewLocalClientServices(cfg.KDF, storages, logger)
	app.close = storages.Close

	return app, nil
}

// Run executes one command. args[0] is the command name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrMissingCommand
	}

	name, rest := args[0], args[1:]
	switch name {
	case "help", "-h", "-help", "--help":
		a.usage()
		return nil
	}

	cmd, ok := a.commands()[name]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Str("mode", a.cfg.Storage.Mode).Msg("running command")
	return cmd.run(ctx, rest)
}

// Close releases the local vault file, if any.
func (a *App) Close() error {
	return a.close()
}

// passphrase returns the master passphrase from the environment or asks for
// it.
func (a *App) passphrase(prompt string) (string, error) {
	if p := a.getenv(passphraseEnv); p != "" {
		return p, nil
	}
	return a.secrets.ReadSecret(prompt)
}

// unlock opens the vault with the master passphrase.
func (a *App) unlock(ctx context.Context) (models.Session, error) {
	pass, err := a.passphrase("Master passphrase: ")
	if err != nil {
		return models.Session{}, err
	}

	if a.cfg.IsRemote() {
		return a.services.AuthService.Login(ctx, a.cfg.App.Login, pass)
	}
	return a.services.KeyringService.Unlock(ctx, pass)
}

func (a *App) usage() {
	fmt.Fprint(a.out, `usage: client [global flags] <command> [flags] [id]

commands:
  register   create an account on the server
  generate   print a new password
  add        store a new entry
  list       list entries
  show       show an entry (-reveal prints the password)
  copy       copy a password to the clipboard and clear it later
  edit       change an entry
  delete     remove an entry
  version    print version information
`)
}
