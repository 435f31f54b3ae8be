package service

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/keys"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
)

type Services struct {
	KeyVaultService KeyVaultService

	// Metrics holds the vault operation collectors.
	Metrics *prometheus.Registry
}

// NewServices wires the vault service over storages. Requests are counted,
// then validated, before they reach storage.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	engine, err := crypto.NewCipherEngine(cfg.Crypto)
	if err != nil {
		return nil, fmt.Errorf("error creating cipher engine: %w", err)
	}

	registry := prometheus.NewRegistry()
	metrics, err := NewKeyVaultMetricsService(registry)
	if err != nil {
		return nil, fmt.Errorf("error registering vault metrics: %w", err)
	}

	codec := keys.NewDERCodec()
	vault := NewKeyVaultService(storages.VaultStorage, crypto.NewKeyCipher(engine, codec), codec, logger)

	return &Services{
		KeyVaultService: metrics.Wrap(NewKeyVaultValidationService().Wrap(vault)),
		Metrics:         registry,
	}, nil
}
