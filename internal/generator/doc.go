// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator produces random passwords from a character pool derived
// from a [models.GenerationPolicy].
//
// Every character is an independent uniform draw from a cryptographically
// secure source. Draws are 32-bit wide and reduced with rejection sampling, so
// no pool index is more likely than another regardless of the pool size.
//
// The package is stateless: [Generate] may be called from any number of
// goroutines at once. The only shared resource is the random source, which
// defaults to [crypto/rand.Reader].
package generator
