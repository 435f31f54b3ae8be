// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/keys"
	"github.com/MKhiriev/go-key-vault/models"
)

// keyCipher is the private implementation of [KeyCipher].
type keyCipher struct {
	engine CipherEngine
	codec  keys.Codec
}

// NewKeyCipher composes a [CipherEngine] and a [keys.Codec].
func NewKeyCipher(engine CipherEngine, codec keys.Codec) KeyCipher {
	return &keyCipher{
		engine: engine,
		codec:  codec,
	}
}

// SealPrivateKey serializes key and encrypts it under password. The key pair
// name is bound as associated data, so an envelope moved to another name no
// longer opens.
func (k *keyCipher) SealPrivateKey(password models.Password, key models.PrivateKey, name string) ([]byte, error) {
	der, err := k.codec.MarshalPrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("serialize private key: %w", err)
	}
	defer clear(der)

	envelope, err := k.engine.Encrypt(password, der, associatedData(name))
	if err != nil {
		return nil, fmt.Errorf("encrypt private key: %w", err)
	}

	return envelope, nil
}

// OpenPrivateKey decrypts envelope and validates that the result is a
// private key. Authentication and structural failures both yield
// [ErrWrongPassword]; [ErrMalformedEnvelope] is returned unchanged because it
// says nothing about the password.
func (k *keyCipher) OpenPrivateKey(password models.Password, envelope []byte, name string) (models.PrivateKey, error) {
	der, err := k.engine.Decrypt(password, envelope, associatedData(name))
	if err != nil {
		if errors.Is(err, ErrAuthenticationFailed) {
			return nil, fmt.Errorf("%w: %w", ErrWrongPassword, err)
		}
		return nil, err
	}
	defer clear(der)

	key, err := k.codec.ParsePrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}

	return key, nil
}

func associatedData(name string) []byte {
	return []byte("vault_keys/" + name)
}
