// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-vault/internal/config"
)

func TestDialectFor_ConfiguredDrivers(t *testing.T) {
	for _, driver := range []string{config.DriverPostgres, config.DriverSQLite} {
		_, dir, err := dialectFor(driver)
		require.NoError(t, err, driver)
		assert.NotEmpty(t, dir)
	}

	_, _, err := dialectFor("mysql")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB itself; no expectations means every call fails

	err = Migrate(context.Background(), db, config.DriverPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, config.DriverPostgres)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "oracle")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "vault.db") + "?_foreign_keys=on"
	db, err := sql.Open(config.DriverSQLite, dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_SQLiteIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Migrate(ctx, db, config.DriverSQLite))
	require.NoError(t, Migrate(ctx, db, config.DriverSQLite))

	var indexes int
	err := db.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'index' AND tbl_name = 'vault_keys' AND name LIKE 'vault_keys_%'`,
	).Scan(&indexes)
	require.NoError(t, err)
	assert.Equal(t, 4, indexes)
}

func TestMigrate_SQLiteConstraints(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	require.NoError(t, Migrate(ctx, db, config.DriverSQLite))

	_, err := db.ExecContext(ctx, `INSERT INTO users (user_id) VALUES (1)`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO vault_keys (is_private, name, material) VALUES (0, 'k', x'01')`)
	require.NoError(t, err)

	t.Run("second public record with the same name", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO vault_keys (is_private, name, material) VALUES (0, 'k', x'02')`)
		assert.Error(t, err)
	})

	t.Run("public record with an owner", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO vault_keys (is_private, name, owner, material) VALUES (0, 'other', 1, x'02')`)
		assert.Error(t, err)
	})

	t.Run("private record without an owner", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO vault_keys (is_private, name, material) VALUES (1, 'other', x'02')`)
		assert.Error(t, err)
	})

	t.Run("private record of an unknown user", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO vault_keys (is_private, name, owner, material) VALUES (1, 'k', 99, x'02')`)
		assert.Error(t, err)
	})

	t.Run("deleting a user removes only their private records", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO vault_keys (is_private, name, owner, material) VALUES (1, 'k', 1, x'03')`)
		require.NoError(t, err)

		_, err = db.ExecContext(ctx, `DELETE FROM users WHERE user_id = 1`)
		require.NoError(t, err)

		var private, public int
		require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM vault_keys WHERE is_private`).Scan(&private))
		require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM vault_keys WHERE NOT is_private`).Scan(&public))
		assert.Zero(t, private)
		assert.Equal(t, 1, public)
	})
}
