// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/models"
)

const (
	saltSize = 16
	keySize  = 32 // 256 bits for both AES-256 and XChaCha20

	// Argon2id runs before the tag is checked, so parameters read from a
	// stored envelope are capped here.
	maxArgonTime   = config.MaxArgonTime
	maxArgonMemory = config.MaxArgonMemory
)

// cipherEngine is the private implementation of [CipherEngine].
type cipherEngine struct {
	algorithm Algorithm
	kdf       KDFParams

	// random is the entropy source for salts and nonces.
	random io.Reader
}

// NewCipherEngine constructs a [CipherEngine] that writes envelopes with the
// algorithm and Argon2id parameters from cfg. Zero parameters fall back to
// the values of [config.Default].
func NewCipherEngine(cfg config.Crypto) (CipherEngine, error) {
	defaults := config.Default().Crypto
	if cfg.Algorithm == "" {
		cfg.Algorithm = defaults.Algorithm
	}
	if cfg.ArgonTime == 0 {
		cfg.ArgonTime = defaults.ArgonTime
	}
	if cfg.ArgonMemory == 0 {
		cfg.ArgonMemory = defaults.ArgonMemory
	}
	if cfg.ArgonThreads == 0 {
		cfg.ArgonThreads = defaults.ArgonThreads
	}

	algorithm, err := ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	kdf := KDFParams{
		Time:    cfg.ArgonTime,
		Memory:  cfg.ArgonMemory,
		Threads: cfg.ArgonThreads,
	}
	if err := kdf.validate(); err != nil {
		return nil, err
	}

	return &cipherEngine{
		algorithm: algorithm,
		kdf:       kdf,
		random:    rand.Reader,
	}, nil
}

// Encrypt implements [CipherEngine].
func (c *cipherEngine) Encrypt(password models.Password, plaintext, associatedData []byte) ([]byte, error) {
	if password.IsEmpty() {
		return nil, ErrEmptyPassword
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := deriveKey(password, salt, c.kdf)
	defer clear(key)

	aead, err := newAEAD(c.algorithm, key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	envelope := Envelope{
		Algorithm: c.algorithm,
		KDF:       c.kdf,
		Salt:      salt,
		Nonce:     nonce,
	}
	envelope.Ciphertext = aead.Seal(nil, nonce, plaintext, envelope.additionalData(associatedData))

	return envelope.MarshalBinary()
}

// Decrypt implements [CipherEngine]. The key is derived with the parameters
// stored in the envelope, not with the engine's current configuration.
func (c *cipherEngine) Decrypt(password models.Password, data, associatedData []byte) ([]byte, error) {
	if password.IsEmpty() {
		return nil, ErrEmptyPassword
	}

	var envelope Envelope
	if err := envelope.UnmarshalBinary(data); err != nil {
		return nil, err
	}

	key := deriveKey(password, envelope.Salt, envelope.KDF)
	defer clear(key)

	aead, err := newAEAD(envelope.Algorithm, key)
	if err != nil {
		return nil, err
	}

	if len(envelope.Nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: nonce is %d bytes, %s needs %d",
			ErrMalformedEnvelope, len(envelope.Nonce), envelope.Algorithm, aead.NonceSize())
	}

	// An error here almost always means a wrong password.
	plaintext, err := aead.Open(nil, envelope.Nonce, envelope.Ciphertext, envelope.additionalData(associatedData))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return plaintext, nil
}

// deriveKey derives a 256-bit key from password and salt using Argon2id.
func deriveKey(password models.Password, salt []byte, kdf KDFParams) []byte {
	return argon2.IDKey(password.Bytes(), salt, kdf.Time, kdf.Memory, kdf.Threads, keySize)
}

func newAEAD(algorithm Algorithm, key []byte) (cipher.AEAD, error) {
	switch algorithm {
	case AlgorithmAES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("create cipher: %w", err)
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("create gcm: %w", err)
		}
		return gcm, nil
	case AlgorithmXChaCha20Poly1305:
		aead, err := chacha20poly1305.NewX(key)
		if err != nil {
			return nil, fmt.Errorf("create xchacha20-poly1305: %w", err)
		}
		return aead, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
	}
}

func (k KDFParams) validate() error {
	if k.Time < 1 || k.Time > maxArgonTime {
		return fmt.Errorf("argon2 time %d out of range", k.Time)
	}
	if k.Threads < 1 {
		return errors.New("argon2 threads must be at least 1")
	}
	if k.Memory < 8*uint32(k.Threads) || k.Memory > maxArgonMemory {
		return fmt.Errorf("argon2 memory %d KiB out of range", k.Memory)
	}
	return nil
}
