// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault requests before they reach storage:
// key pair names, owner ids, passwords and the consistency of the two
// halves of a key pair.
package validators

import "context"

// Validator checks a request value. When fields are given only those
// fields are checked; otherwise every field of the request is.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
