// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/logger"
)

// vaultStorage is the default implementation of [VaultStorage].
//
// Outside a transaction it behaves as the pool-bound [KeyRepository];
// InTx hands the callback a repository bound to the open transaction.
type vaultStorage struct {
	*keyRepository

	db     *DB
	logger *logger.Logger
}

// NewVaultStorage constructs a [VaultStorage] over db.
func NewVaultStorage(db *DB, logger *logger.Logger) VaultStorage {
	logger.Debug().Msg("creating vault storage")

	return &vaultStorage{
		keyRepository: newKeyRepository(db),
		db:            db,
		logger:        logger,
	}
}

// InTx implements [VaultStorage].
//
// The deferred Rollback is a no-op after a successful Commit and also
// runs while a panic unwinds, so fn can never leave a transaction open.
func (s *vaultStorage) InTx(ctx context.Context, fn func(ctx context.Context, repo KeyRepository) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "vaultStorage.InTx").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(ctx, s.keyRepository.withTx(tx)); err != nil {
		log.Debug().
			Str("func", "vaultStorage.InTx").
			Str("reason", err.Error()).
			Msg("rolling back transaction")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "vaultStorage.InTx").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// EnsureSchema implements [VaultStorage].
func (s *vaultStorage) EnsureSchema(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.db.Migrate(ctx); err != nil {
		log.Err(err).
			Str("func", "vaultStorage.EnsureSchema").
			Str("driver", s.db.driver).
			Msg("failed to ensure schema")
		return fmt.Errorf("%w: %w", ErrMigratingSchema, err)
	}

	log.Info().
		Str("func", "vaultStorage.EnsureSchema").
		Str("driver", s.db.driver).
		Msg("schema is up to date")

	return nil
}
