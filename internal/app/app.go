// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the key vault from configuration: it opens the
// database, brings the schema up to date and builds the services on top.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/models"
)

// App owns the storage connection and the services built over it.
type App struct {
	Services *service.Services

	storages *store.Storages
	build    models.AppBuildInfo
	logger   *logger.Logger
}

// NewApp connects to the configured database, ensures the vault schema and
// wires the services. The caller must Close the returned App.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	if err = storages.VaultStorage.EnsureSchema(ctx); err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error ensuring vault schema: %w", err)
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	log.Info().
		Str("version", build.BuildVersion()).
		Str("commit", build.BuildCommit()).
		Str("driver", cfg.Storage.DB.Driver).
		Str("algorithm", cfg.Crypto.Algorithm).
		Msg("key vault is ready")

	return &App{
		Services: services,
		storages: storages,
		build:    build,
		logger:   log,
	}, nil
}

// Close releases the database connection.
func (a *App) Close() error {
	a.logger.Info().Str("version", a.build.BuildVersion()).Msg("closing key vault")
	return a.storages.Close()
}
