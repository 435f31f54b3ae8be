package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when a lookup by name (and owner) matches no
	// record.
	ErrKeyNotFound = errors.New("key record was not found")

	// ErrKeyRecordExists is returned when an INSERT violates one of the
	// uniqueness rules: one public record per name, one private record per
	// (name, owner).
	ErrKeyRecordExists = errors.New("key record already exists")

	// ErrUnexpectedRowsAffected is returned when an UPDATE that must touch
	// exactly one row touched zero or several.
	ErrUnexpectedRowsAffected = errors.New("unexpected number of rows affected")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan key record row")

	// ErrMigratingSchema is returned when the schema cannot be brought up
	// to date.
	ErrMigratingSchema = errors.New("failed to migrate schema")
)
