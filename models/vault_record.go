// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MaxKeyNameLength is the upper bound (in characters) for [VaultRecord.Name].
// It matches the VARCHAR(64) column of the vault_keys table.
const MaxKeyNameLength = 64

// VaultRecord is a single row of the vault_keys table.
//
// A record is either the shared public half of a named key pair
// (IsPrivate == false, Owner == nil) or one owner's encrypted private half
// (IsPrivate == true, Owner != nil).
type VaultRecord struct {
	// ID is the surrogate identifier assigned by storage.
	ID int64

	// IsPrivate discriminates private records from the public record.
	IsPrivate bool

	// Name identifies the logical key pair. Case-sensitive.
	Name string

	// Owner is the principal the private record belongs to.
	// Always nil for public records.
	Owner *int64

	// Material is the PKIX-encoded public key for public records, or an
	// encrypted envelope wrapping the PKCS#8-encoded private key for
	// private records.
	Material []byte
}
