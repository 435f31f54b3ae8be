// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keys converts asymmetric key objects to and from their canonical
// byte form.
//
// Private keys are encoded as PKCS#8 and public keys as PKIX
// (SubjectPublicKeyInfo), both ASN.1 DER. The encodings carry the key
// algorithm identifier, so parsing either yields a key of the original type
// or fails. The vault relies on that property: a failed parse of decrypted
// bytes is treated as a wrong password.
package keys
