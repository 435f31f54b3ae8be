// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"golang.org/x/crypto/ssh"

	"github.com/MKhiriev/go-key-vault/models"
)

// Fingerprint returns the OpenSSH SHA256 fingerprint of key
// (e.g. "SHA256:jR1k..."), or an empty string when the key type has no SSH
// representation. It is meant for log fields; it never exposes key bytes.
func Fingerprint(key models.PublicKey) string {
	if key == nil {
		return ""
	}

	sshKey, err := ssh.NewPublicKey(key)
	if err != nil {
		return ""
	}

	return ssh.FingerprintSHA256(sshKey)
}
