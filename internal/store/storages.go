package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
)

// Storages bundles the storage components built over one database.
type Storages struct {
	VaultStorage VaultStorage

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.Driver and
// builds the storage components over it. The schema is not touched; call
// VaultStorage.EnsureSchema for that.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	return &Storages{
		VaultStorage: NewVaultStorage(db, log),
		db:           db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
