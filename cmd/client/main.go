package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		return 2
	}

	log, closeLog := logger.NewClientLogger("go-pass-vault-client", cfg.Log.File)
	defer closeLog()
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Err(err).Msg("close client app")
		}
	}()

	if err = app.Run(ctx, args); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		return 1
	}

	return 0
}
