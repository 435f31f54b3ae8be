package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	vaultKeysTable = "vault_keys"

	colID        = "id"
	colIsPrivate = "is_private"
	colName      = "name"
	colOwner     = "owner"
	colMaterial  = "material"
)

// publicKey selects the public record named name.
func publicKey(name string) sq.Sqlizer {
	return sq.And{
		sq.Eq{colIsPrivate: false},
		sq.Eq{colName: name},
	}
}

// privateKey selects the private record of owner named name.
func privateKey(name string, owner int64) sq.Sqlizer {
	return sq.And{
		sq.Eq{colIsPrivate: true},
		sq.Eq{colName: name},
		sq.Eq{colOwner: owner},
	}
}

// buildExistsQuery builds a query returning a single row with the value 1
// when a record matching where exists and no rows otherwise.
func buildExistsQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select("1").
		From(vaultKeysTable).
		Where(where).
		Limit(1).
		ToSql()
}

// buildFetchMaterialQuery builds a SELECT of the material column. With
// lock set the row is locked for the rest of the transaction.
func buildFetchMaterialQuery(b sq.StatementBuilderType, where sq.Sqlizer, lock bool) (string, []any, error) {
	query := b.Select(colMaterial).
		From(vaultKeysTable).
		Where(where)

	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	return query.ToSql()
}

func buildInsertPublicQuery(b sq.StatementBuilderType, name string, material []byte) (string, []any, error) {
	return b.Insert(vaultKeysTable).
		Columns(colIsPrivate, colName, colMaterial).
		Values(false, name, material).
		ToSql()
}

func buildInsertPrivateQuery(b sq.StatementBuilderType, name string, owner int64, envelope []byte) (string, []any, error) {
	return b.Insert(vaultKeysTable).
		Columns(colIsPrivate, colName, colOwner, colMaterial).
		Values(true, name, owner, envelope).
		ToSql()
}

// buildUpsertPrivateQuery inserts a private record or, when owner already
// holds one named name, replaces its envelope. The conflict target is the
// partial unique index on (name, owner).
func buildUpsertPrivateQuery(b sq.StatementBuilderType, name string, owner int64, envelope []byte) (string, []any, error) {
	return b.Insert(vaultKeysTable).
		Columns(colIsPrivate, colName, colOwner, colMaterial).
		Values(true, name, owner, envelope).
		Suffix("ON CONFLICT (" + colName + ", " + colOwner + ") WHERE " + colIsPrivate +
			" DO UPDATE SET " + colMaterial + " = EXCLUDED." + colMaterial).
		ToSql()
}

func buildUpdatePrivateQuery(b sq.StatementBuilderType, name string, owner int64, envelope []byte) (string, []any, error) {
	return b.Update(vaultKeysTable).
		Set(colMaterial, envelope).
		Where(privateKey(name, owner)).
		ToSql()
}

// buildDeleteQuery builds a DELETE of every record matching where.
func buildDeleteQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Delete(vaultKeysTable).
		Where(where).
		ToSql()
}

// buildListRecordsQuery builds a SELECT of every column of the records
// named name, public record first.
func buildListRecordsQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select(colID, colIsPrivate, colName, colOwner, colMaterial).
		From(vaultKeysTable).
		Where(sq.Eq{colName: name}).
		OrderBy(colIsPrivate, colID).
		ToSql()
}
