// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-vault/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSaveKeyPairRequest(t *testing.T) models.SaveKeyPairRequest {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	return models.SaveKeyPairRequest{
		Name:       "deploy",
		Owner:      1,
		PrivateKey: priv,
		PublicKey:  pub,
		Password:   models.NewPassword("s3cret"),
	}
}

func TestNewKeyRequestValidator(t *testing.T) {
	v := NewKeyRequestValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewKeyRequestValidator()
	ctx := context.Background()

	save := validSaveKeyPairRequest(t)
	priv := models.PrivateKeyRequest{Name: "deploy", Owner: 1, Password: models.NewPassword("pw")}
	change := models.ChangePasswordRequest{Name: "deploy", Owner: 1, OldPassword: models.NewPassword("a"), NewPassword: models.NewPassword("b")}
	cp := models.CopyPrivateKeyRequest{Name: "deploy", FromOwner: 1, ToOwner: 2, FromPassword: models.NewPassword("a"), ToPassword: models.NewPassword("b")}

	for name, obj := range map[string]any{
		"save value":      save,
		"save pointer":    &save,
		"private value":   priv,
		"private pointer": &priv,
		"change value":    change,
		"change pointer":  &change,
		"copy value":      cp,
		"copy pointer":    &cp,
	} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, v.Validate(ctx, obj))
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, "deploy"), ErrUnsupportedType)
	})
}

func TestValidate_KeyName(t *testing.T) {
	v := NewKeyRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		keyName string
		wantErr bool
	}{
		{name: "simple", keyName: "deploy"},
		{name: "mixed case is kept", keyName: "Deploy-Key_01"},
		{name: "exactly 64 characters", keyName: strings.Repeat("k", models.MaxKeyNameLength)},
		{name: "64 multibyte characters", keyName: strings.Repeat("ключ", 16)},
		{name: "empty", keyName: "", wantErr: true},
		{name: "65 characters", keyName: strings.Repeat("k", models.MaxKeyNameLength+1), wantErr: true},
		{name: "invalid utf-8", keyName: "\xff\xfe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.PrivateKeyRequest{Name: tt.keyName}, FieldName)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKeyName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_SaveKeyPair(t *testing.T) {
	v := NewKeyRequestValidator()
	ctx := context.Background()

	otherPub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(r *models.SaveKeyPairRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.SaveKeyPairRequest) {}},
		{name: "zero owner", mutate: func(r *models.SaveKeyPairRequest) { r.Owner = 0 }, wantErr: ErrInvalidOwner},
		{name: "negative owner", mutate: func(r *models.SaveKeyPairRequest) { r.Owner = -5 }, wantErr: ErrInvalidOwner},
		{name: "no private key", mutate: func(r *models.SaveKeyPairRequest) { r.PrivateKey = nil }, wantErr: ErrMissingPrivateKey},
		{name: "no public key", mutate: func(r *models.SaveKeyPairRequest) { r.PublicKey = nil }, wantErr: ErrMissingPublicKey},
		{name: "mismatched pair", mutate: func(r *models.SaveKeyPairRequest) { r.PublicKey = otherPub }, wantErr: ErrKeyPairMismatch},
		{name: "typed nil private key", mutate: func(r *models.SaveKeyPairRequest) { r.PrivateKey = (*ecdsa.PrivateKey)(nil) }, wantErr: ErrMissingPrivateKey},
		{name: "typed nil public key", mutate: func(r *models.SaveKeyPairRequest) { r.PublicKey = (*ecdsa.PublicKey)(nil) }, wantErr: ErrMissingPublicKey},
		{name: "empty ed25519 private key", mutate: func(r *models.SaveKeyPairRequest) { r.PrivateKey = ed25519.PrivateKey{} }, wantErr: ErrMissingPrivateKey},
		{name: "ecdsa key without curve", mutate: func(r *models.SaveKeyPairRequest) { r.PrivateKey = &ecdsa.PrivateKey{} }, wantErr: ErrKeyPairMismatch},
		{name: "empty password", mutate: func(r *models.SaveKeyPairRequest) { r.Password = nil }, wantErr: ErrEmptyPassword},
		{name: "bad name", mutate: func(r *models.SaveKeyPairRequest) { r.Name = "" }, wantErr: ErrInvalidKeyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSaveKeyPairRequest(t)
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_ChangePassword(t *testing.T) {
	v := NewKeyRequestValidator()
	ctx := context.Background()

	valid := models.ChangePasswordRequest{Name: "deploy", Owner: 1, OldPassword: models.NewPassword("a"), NewPassword: models.NewPassword("b")}

	noOld := valid
	noOld.OldPassword = nil
	assert.ErrorIs(t, v.Validate(ctx, noOld), ErrEmptyPassword)

	noNew := valid
	noNew.NewPassword = models.Password{}
	assert.ErrorIs(t, v.Validate(ctx, noNew), ErrEmptyPassword)

	noOwner := valid
	noOwner.Owner = 0
	assert.ErrorIs(t, v.Validate(ctx, noOwner), ErrInvalidOwner)
}

func TestValidate_CopyPrivateKey(t *testing.T) {
	v := NewKeyRequestValidator()
	ctx := context.Background()

	valid := models.CopyPrivateKeyRequest{Name: "deploy", FromOwner: 1, ToOwner: 2, FromPassword: models.NewPassword("a"), ToPassword: models.NewPassword("b")}

	tests := []struct {
		name    string
		mutate  func(r *models.CopyPrivateKeyRequest)
		wantErr error
	}{
		{name: "from owner", mutate: func(r *models.CopyPrivateKeyRequest) { r.FromOwner = 0 }, wantErr: ErrInvalidOwner},
		{name: "to owner", mutate: func(r *models.CopyPrivateKeyRequest) { r.ToOwner = -1 }, wantErr: ErrInvalidOwner},
		{name: "from password", mutate: func(r *models.CopyPrivateKeyRequest) { r.FromPassword = nil }, wantErr: ErrEmptyPassword},
		{name: "to password", mutate: func(r *models.CopyPrivateKeyRequest) { r.ToPassword = nil }, wantErr: ErrEmptyPassword},
		{name: "same owner is allowed", mutate: func(r *models.CopyPrivateKeyRequest) { r.ToOwner = r.FromOwner }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewKeyRequestValidator()
	ctx := context.Background()

	// Only the name is checked, so the missing owner and password pass.
	assert.NoError(t, v.Validate(ctx, models.PrivateKeyRequest{Name: "deploy"}, FieldName))
	assert.ErrorIs(t, v.Validate(ctx, models.PrivateKeyRequest{Name: "deploy"}, FieldName, FieldOwner), ErrInvalidOwner)
	assert.ErrorIs(t, v.Validate(ctx, models.PrivateKeyRequest{Name: "deploy"}, "bogus"), ErrUnknownField)
}
