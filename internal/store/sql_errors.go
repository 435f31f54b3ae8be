package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It indicates whether a failed database
// operation should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable
)

var classifiers = []ErrorClassificator{
	NewPostgresErrorClassifier(),
	NewSQLiteErrorClassifier(),
}

// IsRetryable reports whether err, anywhere in its chain, is a driver error
// that any supported backend considers transient. The vault never retries
// by itself; callers decide.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	for _, c := range classifiers {
		if c.Classify(err) == Retryable {
			return true
		}
	}

	return false
}
