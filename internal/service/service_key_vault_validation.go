package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/validators"
	"github.com/MKhiriev/go-key-vault/models"
)

// KeyVaultValidationService rejects malformed requests before they reach
// the wrapped service. Every rejection matches [ErrInvalidDataProvided].
type KeyVaultValidationService struct {
	inner     KeyVaultService
	validator validators.Validator
}

func NewKeyVaultValidationService() KeyVaultServiceWrapper {
	return &KeyVaultValidationService{
		validator: validators.NewKeyRequestValidator(),
	}
}

func (v *KeyVaultValidationService) SaveKeyPair(ctx context.Context, request models.SaveKeyPairRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return invalidData("save key pair", err)
	}

	return v.inner.SaveKeyPair(ctx, request)
}

func (v *KeyVaultValidationService) GetPublicKey(ctx context.Context, name string) (models.PublicKey, error) {
	if err := v.validateName(ctx, name); err != nil {
		return nil, invalidData("get public key", err)
	}

	return v.inner.GetPublicKey(ctx, name)
}

func (v *KeyVaultValidationService) GetPublicKeyMaterial(ctx context.Context, name string) ([]byte, error) {
	if err := v.validateName(ctx, name); err != nil {
		return nil, invalidData("get public key", err)
	}

	return v.inner.GetPublicKeyMaterial(ctx, name)
}

func (v *KeyVaultValidationService) GetPrivateKey(ctx context.Context, request models.PrivateKeyRequest) (models.PrivateKey, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, invalidData("get private key", err)
	}

	return v.inner.GetPrivateKey(ctx, request)
}

func (v *KeyVaultValidationService) DeleteKeyPair(ctx context.Context, name string) error {
	if err := v.validateName(ctx, name); err != nil {
		return invalidData("delete key pair", err)
	}

	return v.inner.DeleteKeyPair(ctx, name)
}

func (v *KeyVaultValidationService) DeletePrivateKey(ctx context.Context, name string, owner int64) error {
	request := models.PrivateKeyRequest{Name: name, Owner: owner}
	if err := v.validator.Validate(ctx, request, validators.FieldName, validators.FieldOwner); err != nil {
		return invalidData("delete private key", err)
	}

	return v.inner.DeletePrivateKey(ctx, name, owner)
}

func (v *KeyVaultValidationService) ChangePrivateKeyPassword(ctx context.Context, request models.ChangePasswordRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return invalidData("change private key password", err)
	}

	return v.inner.ChangePrivateKeyPassword(ctx, request)
}

func (v *KeyVaultValidationService) CopyPrivateKey(ctx context.Context, request models.CopyPrivateKeyRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return invalidData("copy private key", err)
	}

	return v.inner.CopyPrivateKey(ctx, request)
}

func (v *KeyVaultValidationService) Wrap(inner KeyVaultService) KeyVaultService {
	v.inner = inner
	return v
}

// validateName checks a bare key pair name.
func (v *KeyVaultValidationService) validateName(ctx context.Context, name string) error {
	return v.validator.Validate(ctx, models.PrivateKeyRequest{Name: name}, validators.FieldName)
}

func invalidData(op string, err error) error {
	return fmt.Errorf("%w: error during %s request validation: %w", ErrInvalidDataProvided, op, err)
}
