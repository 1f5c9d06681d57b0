// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryptionFailed is the single error returned by [Open] and
	// [KeyChainService.UnwrapKey]. Malformed input, truncation, tampering and a
	// wrong key all end here so callers cannot tell them apart.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrMalformedEnvelope is returned by [ParseEnvelope] when a string is not
	// structurally an envelope.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrInvalidKey is returned when a key is unset or has the wrong length.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidKeyMaterial is returned when a passphrase or salt cannot be
	// used for key derivation.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrRandomSource is returned when the OS random source fails.
	ErrRandomSource = errors.New("random source failure")
)
