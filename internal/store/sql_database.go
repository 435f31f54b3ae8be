package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/migrations"
	"github.com/MKhiriev/go-key-vault/models"
)

// DB wraps a connection pool with the knowledge of which backend it talks
// to.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the backend.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// builder returns a squirrel statement builder with the backend's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// supportsRowLocks reports whether SELECT ... FOR UPDATE is available.
// SQLite serializes writers with BEGIN IMMEDIATE instead.
func (db *DB) supportsRowLocks() bool {
	return db.driver == config.DriverPostgres
}

// Records returns every stored record named name, the public one first.
// Private material is returned as stored, still encrypted.
func (db *DB) Records(ctx context.Context, name string) ([]models.VaultRecord, error) {
	query, args, err := buildListRecordsQuery(db.builder(), name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.VaultRecord
	for rows.Next() {
		var (
			record models.VaultRecord
			owner  sql.NullInt64
		)
		if err = rows.Scan(&record.ID, &record.IsPrivate, &record.Name, &owner, &record.Material); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if owner.Valid {
			record.Owner = &owner.Int64
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return records, nil
}
