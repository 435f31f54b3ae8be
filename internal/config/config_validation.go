// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. The returned error wraps one of the ErrInvalid* sentinels.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.ConnectTimeout < 0 {
		return fmt.Errorf("%w: negative pool settings", ErrInvalidStorageConfigs)
	}

	switch cfg.Crypto.Algorithm {
	case AlgorithmAES256GCM, AlgorithmXChaCha20Poly1305:
	default:
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidCryptoConfigs, cfg.Crypto.Algorithm)
	}

	if cfg.Crypto.ArgonTime < 1 || cfg.Crypto.ArgonThreads < 1 {
		return fmt.Errorf("%w: argon time and threads must be positive", ErrInvalidCryptoConfigs)
	}

	if cfg.Crypto.ArgonTime > MaxArgonTime {
		return fmt.Errorf("%w: argon time above %d", ErrInvalidCryptoConfigs, MaxArgonTime)
	}

	if cfg.Crypto.ArgonMemory < 8*uint32(cfg.Crypto.ArgonThreads) || cfg.Crypto.ArgonMemory > MaxArgonMemory {
		return fmt.Errorf("%w: argon memory must be between 8 KiB per thread and %d KiB", ErrInvalidCryptoConfigs, MaxArgonMemory)
	}

	return nil
}
