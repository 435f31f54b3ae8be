// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrAuthenticationFailed is returned by [CipherEngine.Decrypt] when the
	// AEAD tag does not verify: wrong password, wrong associated data or a
	// modified envelope.
	ErrAuthenticationFailed = errors.New("envelope authentication failed")

	// ErrMalformedEnvelope is returned when stored bytes cannot be decoded as
	// an envelope (unknown version or algorithm, truncated fields, invalid
	// KDF parameters).
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrWrongPassword is returned by [KeyCipher.OpenPrivateKey] when the
	// envelope does not open or its content is not a private key.
	ErrWrongPassword = errors.New("wrong password")

	// ErrEmptyPassword is returned when encryption or decryption is
	// attempted without a password.
	ErrEmptyPassword = errors.New("empty password")

	// ErrUnknownAlgorithm is returned for an unsupported algorithm name or id.
	ErrUnknownAlgorithm = errors.New("unknown cipher algorithm")
)
