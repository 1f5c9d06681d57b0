// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"strings"
)

// Envelope layout:
//
//	gpv1:<base64url(nonce ‖ ciphertext ‖ tag)>
//
// The prefix names the scheme (AES-256-GCM, 96-bit random nonce) and is
// authenticated as additional data, so it cannot be swapped either.
const (
	envelopePrefix = "gpv1:"
	nonceSize      = 12
	tagSize        = 16
	minPayloadSize = nonceSize + tagSize
)

// Strict decoding rejects non-zero padding bits, so every changed character
// either fails to decode or changes the decoded bytes.
var envelopeEncoding = base64.RawURLEncoding.Strict()

// Envelope is the sealed, self-contained form of a secret. Given the key it
// was sealed under, it holds everything needed to recover the plaintext.
type Envelope string

// ParseEnvelope checks that s is structurally an envelope: known prefix,
// strict base64 and room for at least a nonce and a tag. It does not need a
// key and proves nothing about authenticity.
func ParseEnvelope(s string) (Envelope, error) {
	if _, err := Envelope(s).payload(); err != nil {
		return "", err
	}
	return Envelope(s), nil
}

// String returns the envelope as stored.
func (e Envelope) String() string {
	return string(e)
}

func (e Envelope) payload() ([]byte, error) {
	encoded, ok := strings.CutPrefix(string(e), envelopePrefix)
	if !ok {
		return nil, ErrMalformedEnvelope
	}

	raw, err := envelopeEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrMalformedEnvelope
	}
	if len(raw) < minPayloadSize {
		return nil, ErrMalformedEnvelope
	}

	return raw, nil
}

func newEnvelope(nonce, sealed []byte) Envelope {
	blob := make([]byte, 0, len(nonce)+len(sealed))
	blob = append(blob, nonce...)
	blob = append(blob, sealed...)
	return Envelope(envelopePrefix + envelopeEncoding.EncodeToString(blob))
}
