// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

import "github.com/MKhiriev/go-key-vault/models"

// CipherEngine protects arbitrary bytes under a password.
//
// Scheme:
//
//	salt      = random(16)
//	key       = Argon2id(password, salt)
//	nonce     = random(aead.NonceSize())
//	envelope  = header(version, algorithm, kdf params, salt) ‖ nonce ‖ AEAD(key, nonce, plaintext, header ‖ ad)
//
// Neither the password nor the derived key is ever part of the output.
type CipherEngine interface {
	// Encrypt seals plaintext under password and returns the serialized
	// envelope. associatedData is authenticated but not stored; the same
	// value must be passed to Decrypt.
	Encrypt(password models.Password, plaintext, associatedData []byte) ([]byte, error)

	// Decrypt opens an envelope produced by Encrypt. It returns
	// ErrAuthenticationFailed when the password (or associated data) is
	// wrong or the envelope was tampered with, and ErrMalformedEnvelope when
	// the bytes are not an envelope at all.
	Decrypt(password models.Password, envelope, associatedData []byte) ([]byte, error)
}

// KeyCipher seals and opens private keys of a named key pair.
//
// OpenPrivateKey never returns a key that did not pass structural
// validation: decrypted bytes must parse back into a private key, otherwise
// ErrWrongPassword is returned.
type KeyCipher interface {
	SealPrivateKey(password models.Password, key models.PrivateKey, name string) ([]byte, error)
	OpenPrivateKey(password models.Password, envelope []byte, name string) (models.PrivateKey, error)
}
