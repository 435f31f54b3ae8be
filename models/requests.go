// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SaveKeyPairRequest describes a new key pair to be stored in the vault.
type SaveKeyPairRequest struct {
	Name       string
	Owner      int64
	PrivateKey PrivateKey
	PublicKey  PublicKey
	Password   Password
}

// PrivateKeyRequest identifies an owner's private key and the password
// protecting it.
type PrivateKeyRequest struct {
	Name     string
	Owner    int64
	Password Password
}

// ChangePasswordRequest re-protects an owner's private key under a new
// password.
type ChangePasswordRequest struct {
	Name        string
	Owner       int64
	OldPassword Password
	NewPassword Password
}

// CopyPrivateKeyRequest copies the private key of FromOwner to ToOwner.
// An existing private key of ToOwner under the same name is replaced.
type CopyPrivateKeyRequest struct {
	Name         string
	FromOwner    int64
	ToOwner      int64
	FromPassword Password
	ToPassword   Password
}
