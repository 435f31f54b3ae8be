package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-key-vault/internal/app"
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("keyvault", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("keyvault", cfg.App.LogLevel)
	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("algorithm", cfg.Crypto.Algorithm).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	vault, err := app.NewApp(ctx, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error starting key vault")
	}

	if err = vault.Close(); err != nil {
		log.Error().Err(err).Msg("error closing key vault")
	}
}
