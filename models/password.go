// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"io"
)

const redacted = "[REDACTED]"

// Password is a password supplied at access time. It is never persisted and
// redacts itself in fmt verbs, JSON and text encodings, so a request struct
// passed to a structured logger does not leak it.
type Password []byte

// NewPassword converts a string into a [Password].
func NewPassword(s string) Password {
	return Password(s)
}

// String implements [fmt.Stringer].
func (p Password) String() string { return redacted }

// Format implements [fmt.Formatter] so that %v, %+v, %#v and %s are redacted.
func (p Password) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

// MarshalJSON implements [json.Marshaler].
func (p Password) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

// MarshalText implements [encoding.TextMarshaler].
func (p Password) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Bytes returns the raw password bytes. The slice is shared with p.
func (p Password) Bytes() []byte { return []byte(p) }

// IsEmpty reports whether no password was supplied.
func (p Password) IsEmpty() bool { return len(p) == 0 }
