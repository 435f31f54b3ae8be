package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// retryablePgCodes are the SQLSTATE codes after which the whole
// transaction may be retried as is.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {}, // 08000
	pgerrcode.ConnectionDoesNotExist: {}, // 08003
	pgerrcode.ConnectionFailure:      {}, // 08006
	pgerrcode.TransactionRollback:    {}, // 40000
	pgerrcode.SerializationFailure:   {}, // 40001
	pgerrcode.DeadlockDetected:       {}, // 40P01
	pgerrcode.LockNotAvailable:       {}, // 55P03
	pgerrcode.CannotConnectNow:       {}, // 57P03
}

// PostgresErrorClassifier implements [ErrorClassificator] for errors
// returned by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not come from
// PostgreSQL are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code, ok := pgErrorCode(err)
	if !ok {
		return NonRetryable
	}
	if _, retry := retryablePgCodes[code]; retry {
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	code, ok := pgErrorCode(err)
	return ok && code == pgerrcode.UniqueViolation
}

func pgErrorCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return "", false
	}
	return pgErr.Code, true
}
