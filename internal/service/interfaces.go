package service

import (
	"context"

	"github.com/MKhiriev/go-key-vault/models"
)

// KeyVaultService stores named key pairs: the public half is shared, the
// private half belongs to one owner and is encrypted under a password that
// is never stored.
type KeyVaultService interface {
	// SaveKeyPair stores a new pair. It fails with ErrKeyExists when a
	// public key with the same name is already stored; nothing is written
	// in that case.
	SaveKeyPair(ctx context.Context, request models.SaveKeyPairRequest) error

	GetPublicKey(ctx context.Context, name string) (models.PublicKey, error)
	GetPublicKeyMaterial(ctx context.Context, name string) ([]byte, error)

	// GetPrivateKey decrypts the owner's private key. A wrong password is
	// reported as ErrWrongPassword, never as a damaged key.
	GetPrivateKey(ctx context.Context, request models.PrivateKeyRequest) (models.PrivateKey, error)

	// DeleteKeyPair removes the public key and every owner's private key
	// stored under name. Deleting an unknown name succeeds.
	DeleteKeyPair(ctx context.Context, name string) error
	// DeletePrivateKey removes only the owner's private key. Deleting an
	// unknown key succeeds.
	DeletePrivateKey(ctx context.Context, name string, owner int64) error

	ChangePrivateKeyPassword(ctx context.Context, request models.ChangePasswordRequest) error

	// CopyPrivateKey re-encrypts FromOwner's private key for ToOwner. An
	// existing private key of ToOwner under the same name is overwritten.
	CopyPrivateKey(ctx context.Context, request models.CopyPrivateKeyRequest) error
}

// KeyVaultServiceWrapper defines middleware composition for KeyVaultService.
// Implementations wrap an existing KeyVaultService to add behavior such as
// validation.
type KeyVaultServiceWrapper interface {
	Wrap(KeyVaultService) KeyVaultService
}
