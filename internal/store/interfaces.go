package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import "context"

// KeyRepository is the set of single-statement operations on the
// vault_keys table. A KeyRepository is bound either to the connection pool
// or to an open transaction; callers do not need to know which.
type KeyRepository interface {
	// ExistsPublic reports whether a public record named name exists.
	ExistsPublic(ctx context.Context, name string) (bool, error)
	// ExistsPrivate reports whether owner has a private record named name.
	ExistsPrivate(ctx context.Context, name string, owner int64) (bool, error)

	// InsertPublic stores the public half of a key pair. A second public
	// record with the same name yields [ErrKeyRecordExists].
	InsertPublic(ctx context.Context, name string, material []byte) error
	// InsertPrivate stores an encrypted private key for owner. A second
	// record for the same (name, owner) yields [ErrKeyRecordExists].
	InsertPrivate(ctx context.Context, name string, owner int64, envelope []byte) error
	// UpsertPrivate stores the envelope for owner, replacing the one owner
	// already holds under name. It never yields [ErrKeyRecordExists].
	UpsertPrivate(ctx context.Context, name string, owner int64, envelope []byte) error

	// FetchPublic returns the public key material or [ErrKeyNotFound].
	FetchPublic(ctx context.Context, name string) ([]byte, error)
	// FetchPrivateEnvelope returns the encrypted private key or
	// [ErrKeyNotFound]. Inside a transaction on PostgreSQL the row is
	// locked until the transaction ends.
	FetchPrivateEnvelope(ctx context.Context, name string, owner int64) ([]byte, error)

	// UpdatePrivateEnvelope replaces the envelope of exactly one private
	// record; any other outcome is [ErrUnexpectedRowsAffected].
	UpdatePrivateEnvelope(ctx context.Context, name string, owner int64, envelope []byte) error

	// DeleteByName removes every record (public and private) named name and
	// returns how many rows were removed.
	DeleteByName(ctx context.Context, name string) (int64, error)
	// DeletePrivate removes the private record of owner named name and
	// returns how many rows were removed.
	DeletePrivate(ctx context.Context, name string, owner int64) (int64, error)
}

// VaultStorage is a [KeyRepository] bound to the connection pool that can
// also run a group of operations atomically.
type VaultStorage interface {
	KeyRepository

	// InTx runs fn inside a database transaction. The repository passed to
	// fn executes every statement in that transaction. The transaction is
	// committed when fn returns nil and rolled back when it returns an error
	// or panics; fn's error is returned unchanged.
	InTx(ctx context.Context, fn func(ctx context.Context, repo KeyRepository) error) error

	// EnsureSchema creates the vault tables and indexes if they are absent.
	EnsureSchema(ctx context.Context) error
}

// ErrorClassificator decides how a driver error should be treated.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
