package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/keys"
	"github.com/MKhiriev/go-key-vault/internal/store"
)

// Error kinds returned by [KeyVaultService]. Every error returned by the
// service matches exactly one of them with [errors.Is].
var (
	ErrKeyExists           = errors.New("key pair already exists")
	ErrNotFound            = errors.New("key not found")
	ErrWrongPassword       = errors.New("wrong password")
	ErrInternalConsistency = errors.New("internal consistency violation")
	ErrStorageFailure      = errors.New("storage failure")
	ErrInvalidDataProvided = errors.New("invalid data provided")
)

var domainErrors = []error{
	ErrKeyExists,
	ErrNotFound,
	ErrWrongPassword,
	ErrInternalConsistency,
	ErrStorageFailure,
	ErrInvalidDataProvided,
}

// toServiceError maps an error from the store, crypto or keys packages onto
// one of the service error kinds. The original error stays in the chain, so
// store.IsRetryable still works on the result.
func toServiceError(err error) error {
	if err == nil {
		return nil
	}

	for _, kind := range domainErrors {
		if errors.Is(err, kind) {
			return err
		}
	}

	switch {
	case errors.Is(err, store.ErrKeyRecordExists):
		return fmt.Errorf("%w: %w", ErrKeyExists, err)
	case errors.Is(err, store.ErrKeyNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrUnexpectedRowsAffected):
		return fmt.Errorf("%w: %w", ErrInternalConsistency, err)
	case errors.Is(err, crypto.ErrWrongPassword):
		return fmt.Errorf("%w: %w", ErrWrongPassword, err)
	case errors.Is(err, crypto.ErrMalformedEnvelope), errors.Is(err, keys.ErrMalformedKey):
		// stored bytes that do not decode are a bug or corruption, not a
		// user mistake
		return fmt.Errorf("%w: %w", ErrInternalConsistency, err)
	case errors.Is(err, crypto.ErrEmptyPassword), errors.Is(err, keys.ErrUnsupportedKey):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	default:
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
}
