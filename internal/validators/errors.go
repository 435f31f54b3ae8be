package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidKeyName    = errors.New("invalid key name")
	ErrInvalidOwner      = errors.New("invalid owner")
	ErrEmptyPassword     = errors.New("password is required")
	ErrMissingPrivateKey = errors.New("private key is required")
	ErrMissingPublicKey  = errors.New("public key is required")
	ErrKeyPairMismatch   = errors.New("public key does not belong to private key")
)
