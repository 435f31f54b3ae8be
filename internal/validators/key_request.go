package validators

import (
	"context"
	"reflect"
	"unicode/utf8"

	"github.com/MKhiriev/go-key-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName         = "name"
	FieldOwner        = "owner"
	FieldFromOwner    = "from_owner"
	FieldToOwner      = "to_owner"
	FieldPassword     = "password"
	FieldOldPassword  = "old_password"
	FieldNewPassword  = "new_password"
	FieldFromPassword = "from_password"
	FieldToPassword   = "to_password"
	FieldPrivateKey   = "private_key"
	FieldPublicKey    = "public_key"
	FieldKeyPair      = "key_pair"
)

// KeyRequestValidator implements [Validator] for the key vault request
// models. Both values and pointers are accepted.
type KeyRequestValidator struct {
}

func NewKeyRequestValidator() Validator {
	return &KeyRequestValidator{}
}

func (v *KeyRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SaveKeyPairRequest:
		return v.validateSaveKeyPair(value, fields...)
	case *models.SaveKeyPairRequest:
		return v.validateSaveKeyPair(*value, fields...)

	case models.PrivateKeyRequest:
		return v.validatePrivateKeyRequest(value, fields...)
	case *models.PrivateKeyRequest:
		return v.validatePrivateKeyRequest(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	case models.CopyPrivateKeyRequest:
		return v.validateCopyPrivateKey(value, fields...)
	case *models.CopyPrivateKeyRequest:
		return v.validateCopyPrivateKey(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *KeyRequestValidator) validateSaveKeyPair(request models.SaveKeyPairRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldOwner, FieldPrivateKey, FieldPublicKey, FieldKeyPair, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !isValidKeyName(request.Name) {
				return ErrInvalidKeyName
			}
		case FieldOwner:
			if request.Owner <= 0 {
				return ErrInvalidOwner
			}
		case FieldPrivateKey:
			if isNilKey(request.PrivateKey) {
				return ErrMissingPrivateKey
			}
		case FieldPublicKey:
			if isNilKey(request.PublicKey) {
				return ErrMissingPublicKey
			}
		case FieldKeyPair:
			if isNilKey(request.PrivateKey) || isNilKey(request.PublicKey) {
				continue
			}
			if !keysMatch(request.PublicKey, request.PrivateKey) {
				return ErrKeyPairMismatch
			}
		case FieldPassword:
			if request.Password.IsEmpty() {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *KeyRequestValidator) validatePrivateKeyRequest(request models.PrivateKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldOwner, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !isValidKeyName(request.Name) {
				return ErrInvalidKeyName
			}
		case FieldOwner:
			if request.Owner <= 0 {
				return ErrInvalidOwner
			}
		case FieldPassword:
			if request.Password.IsEmpty() {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *KeyRequestValidator) validateChangePassword(request models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldOwner, FieldOldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !isValidKeyName(request.Name) {
				return ErrInvalidKeyName
			}
		case FieldOwner:
			if request.Owner <= 0 {
				return ErrInvalidOwner
			}
		case FieldOldPassword:
			if request.OldPassword.IsEmpty() {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if request.NewPassword.IsEmpty() {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *KeyRequestValidator) validateCopyPrivateKey(request models.CopyPrivateKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldFromOwner, FieldToOwner, FieldFromPassword, FieldToPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !isValidKeyName(request.Name) {
				return ErrInvalidKeyName
			}
		case FieldFromOwner:
			if request.FromOwner <= 0 {
				return ErrInvalidOwner
			}
		case FieldToOwner:
			if request.ToOwner <= 0 {
				return ErrInvalidOwner
			}
		case FieldFromPassword:
			if request.FromPassword.IsEmpty() {
				return ErrEmptyPassword
			}
		case FieldToPassword:
			if request.ToPassword.IsEmpty() {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isNilKey reports whether key is nil, a typed nil pointer, or an empty
// byte-slice key such as ed25519.PrivateKey{}.
func isNilKey(key any) bool {
	v := reflect.ValueOf(key)
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map:
		return v.IsNil()
	case reflect.Slice:
		return v.Len() == 0
	default:
		return false
	}
}

// keysMatch reports whether public is the public half of private. Keys
// whose methods panic on malformed internals do not match.
func keysMatch(public models.PublicKey, private models.PrivateKey) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	return public.Equal(private.Public())
}

// isValidKeyName reports whether name is valid UTF-8 of 1 to
// [models.MaxKeyNameLength] characters. Names are case-sensitive and are
// not trimmed.
func isValidKeyName(name string) bool {
	if !utf8.ValidString(name) {
		return false
	}
	n := utf8.RuneCountInString(name)
	return n >= 1 && n <= models.MaxKeyNameLength
}
