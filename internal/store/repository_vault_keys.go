package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-vault/internal/logger"
)

// querier is the subset of *sql.DB and *sql.Tx used by the repository.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// keyRepository implements [KeyRepository] against the vault_keys table.
// The same code serves the pool and a transaction; only q differs.
type keyRepository struct {
	db   *DB
	q    querier
	inTx bool
}

// NewKeyRepository constructs a [KeyRepository] bound to the connection
// pool of db.
func NewKeyRepository(db *DB) KeyRepository {
	return newKeyRepository(db)
}

func newKeyRepository(db *DB) *keyRepository {
	return &keyRepository{db: db, q: db.DB}
}

// withTx returns a copy of the repository executing statements in tx.
func (r *keyRepository) withTx(tx *sql.Tx) *keyRepository {
	return &keyRepository{db: r.db, q: tx, inTx: true}
}

// ExistsPublic implements [KeyRepository].
func (r *keyRepository) ExistsPublic(ctx context.Context, name string) (bool, error) {
	log := logger.FromContext(ctx)

	exists, err := r.exists(ctx, publicKey(name))
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.ExistsPublic").
			Str("name", name).
			Msg("failed to check public key existence")
		return false, err
	}

	return exists, nil
}

// ExistsPrivate implements [KeyRepository].
func (r *keyRepository) ExistsPrivate(ctx context.Context, name string, owner int64) (bool, error) {
	log := logger.FromContext(ctx)

	exists, err := r.exists(ctx, privateKey(name, owner))
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.ExistsPrivate").
			Str("name", name).
			Int64("owner", owner).
			Msg("failed to check private key existence")
		return false, err
	}

	return exists, nil
}

func (r *keyRepository) exists(ctx context.Context, where sq.Sqlizer) (bool, error) {
	query, args, err := buildExistsQuery(r.db.builder(), where)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// InsertPublic implements [KeyRepository].
func (r *keyRepository) InsertPublic(ctx context.Context, name string, material []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPublicQuery(r.db.builder(), name, material)
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.InsertPublic").
			Str("name", name).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		return r.insertError(ctx, "keyRepository.InsertPublic", name, err)
	}

	log.Debug().
		Str("func", "keyRepository.InsertPublic").
		Str("name", name).
		Msg("public key record inserted")

	return nil
}

// InsertPrivate implements [KeyRepository].
func (r *keyRepository) InsertPrivate(ctx context.Context, name string, owner int64, envelope []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPrivateQuery(r.db.builder(), name, owner, envelope)
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.InsertPrivate").
			Str("name", name).
			Int64("owner", owner).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		return r.insertError(ctx, "keyRepository.InsertPrivate", name, err)
	}

	log.Debug().
		Str("func", "keyRepository.InsertPrivate").
		Str("name", name).
		Int64("owner", owner).
		Msg("private key record inserted")

	return nil
}

// UpsertPrivate implements [KeyRepository].
func (r *keyRepository) UpsertPrivate(ctx context.Context, name string, owner int64, envelope []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertPrivateQuery(r.db.builder(), name, owner, envelope)
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.UpsertPrivate").
			Str("name", name).
			Int64("owner", owner).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		return r.insertError(ctx, "keyRepository.UpsertPrivate", name, err)
	}

	log.Debug().
		Str("func", "keyRepository.UpsertPrivate").
		Str("name", name).
		Int64("owner", owner).
		Msg("private key record upserted")

	return nil
}

// insertError translates a failed INSERT. Unique violations become
// [ErrKeyRecordExists] with the driver error kept in the chain.
func (r *keyRepository) insertError(ctx context.Context, fn, name string, err error) error {
	log := logger.FromContext(ctx)

	if r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err) {
		log.Warn().
			Str("func", fn).
			Str("name", name).
			Msg("key record already exists")
		return fmt.Errorf("%w: %w", ErrKeyRecordExists, err)
	}

	log.Err(err).
		Str("func", fn).
		Str("name", name).
		Msg("failed to insert key record")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// FetchPublic implements [KeyRepository].
func (r *keyRepository) FetchPublic(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	material, err := r.fetchMaterial(ctx, publicKey(name), false)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		log.Err(err).
			Str("func", "keyRepository.FetchPublic").
			Str("name", name).
			Msg("failed to fetch public key")
	}

	return material, err
}

// FetchPrivateEnvelope implements [KeyRepository].
func (r *keyRepository) FetchPrivateEnvelope(ctx context.Context, name string, owner int64) ([]byte, error) {
	log := logger.FromContext(ctx)

	lock := r.inTx && r.db.supportsRowLocks()

	envelope, err := r.fetchMaterial(ctx, privateKey(name, owner), lock)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		log.Err(err).
			Str("func", "keyRepository.FetchPrivateEnvelope").
			Str("name", name).
			Int64("owner", owner).
			Msg("failed to fetch private key envelope")
	}

	return envelope, err
}

func (r *keyRepository) fetchMaterial(ctx context.Context, where sq.Sqlizer, lock bool) ([]byte, error) {
	query, args, err := buildFetchMaterialQuery(r.db.builder(), where, lock)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var material []byte
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&material)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return material, nil
}

// UpdatePrivateEnvelope implements [KeyRepository].
func (r *keyRepository) UpdatePrivateEnvelope(ctx context.Context, name string, owner int64, envelope []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePrivateQuery(r.db.builder(), name, owner, envelope)
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.UpdatePrivateEnvelope").
			Str("name", name).
			Int64("owner", owner).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.execAffected(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.UpdatePrivateEnvelope").
			Str("name", name).
			Int64("owner", owner).
			Msg("failed to update private key envelope")
		return err
	}

	if affected != 1 {
		log.Error().
			Str("func", "keyRepository.UpdatePrivateEnvelope").
			Str("name", name).
			Int64("owner", owner).
			Int64("rows_affected", affected).
			Msg("update must affect exactly one row")
		return fmt.Errorf("%w: %d", ErrUnexpectedRowsAffected, affected)
	}

	return nil
}

// DeleteByName implements [KeyRepository].
func (r *keyRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.db.builder(), sq.Eq{colName: name})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.execAffected(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.DeleteByName").
			Str("name", name).
			Msg("failed to delete key records")
		return 0, err
	}

	log.Debug().
		Str("func", "keyRepository.DeleteByName").
		Str("name", name).
		Int64("rows_affected", affected).
		Msg("key records deleted")

	return affected, nil
}

// DeletePrivate implements [KeyRepository].
func (r *keyRepository) DeletePrivate(ctx context.Context, name string, owner int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.db.builder(), privateKey(name, owner))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.execAffected(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "keyRepository.DeletePrivate").
			Str("name", name).
			Int64("owner", owner).
			Msg("failed to delete private key record")
		return 0, err
	}

	return affected, nil
}

func (r *keyRepository) execAffected(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
