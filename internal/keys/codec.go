// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/models"
)

var (
	// ErrMalformedKey is returned when bytes cannot be parsed into a key that
	// satisfies the vault's capability interfaces.
	ErrMalformedKey = errors.New("malformed key")

	// ErrUnsupportedKey is returned when a key object has no canonical
	// encoding.
	ErrUnsupportedKey = errors.New("unsupported key type")
)

// Codec serializes key objects. Parse* must fail for any input that was not
// produced by the matching Marshal* call.
type Codec interface {
	MarshalPrivateKey(key models.PrivateKey) ([]byte, error)
	ParsePrivateKey(der []byte) (models.PrivateKey, error)
	MarshalPublicKey(key models.PublicKey) ([]byte, error)
	ParsePublicKey(der []byte) (models.PublicKey, error)
}

type derCodec struct{}

// NewDERCodec returns a [Codec] using PKCS#8 for private keys and PKIX for
// public keys.
func NewDERCodec() Codec {
	return derCodec{}
}

func (derCodec) MarshalPrivateKey(key models.PrivateKey) ([]byte, error) {
	if key == nil {
		return nil, ErrUnsupportedKey
	}

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
	}

	return der, nil
}

func (derCodec) ParsePrivateKey(der []byte) (models.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}

	key, ok := parsed.(models.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a private key", ErrMalformedKey, parsed)
	}

	return key, nil
}

func (derCodec) MarshalPublicKey(key models.PublicKey) ([]byte, error) {
	if key == nil {
		return nil, ErrUnsupportedKey
	}

	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
	}

	return der, nil
}

func (derCodec) ParsePublicKey(der []byte) (models.PublicKey, error) {
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}

	key, ok := parsed.(models.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a public key", ErrMalformedKey, parsed)
	}

	return key, nil
}
