// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inputs against business rules before they reach
// the generator or the repositories.
//
// Two implementations are provided:
//   - EntryValidator for vault entries and entry inputs;
//   - PolicyValidator for password generation policies.
//
// Callers may pass field names to Validate to check only part of a value,
// e.g. a client validating a plaintext input before the password is sealed.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
