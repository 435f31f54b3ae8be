// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "crypto"

// PrivateKey is the capability set the vault needs from a private key.
// All private key types of the standard library (ed25519, ecdsa, rsa, ecdh)
// satisfy it, so the vault stays agnostic to the key algorithm.
type PrivateKey interface {
	Public() crypto.PublicKey
	Equal(x crypto.PrivateKey) bool
}

// PublicKey is the capability set the vault needs from a public key.
type PublicKey interface {
	Equal(x crypto.PublicKey) bool
}
