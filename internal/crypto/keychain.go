// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the length of salts produced by [KeyChainService.GenerateSalt].
	SaltSize = 16

	minSaltSize = 8

	// authLabel separates the auth hash from the KEK it is computed from.
	authLabel = "go-pass-vault/auth/v1"
)

// Argon2id defaults (OWASP 2024): 1 pass, 64 MiB, 4 lanes.
const (
	DefaultArgonTime    uint32 = 1
	DefaultArgonMemory  uint32 = 64 * 1024
	DefaultArgonThreads uint8  = 4
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// Option tunes a [KeyChainService].
type Option func(*keyChainService)

// WithArgon2Params overrides the Argon2id cost parameters. Zero values keep
// the defaults.
func WithArgon2Params(time, memory uint32, threads uint8) Option {
	return func(k *keyChainService) {
		if time > 0 {
			k.argonTime = time
		}
		if memory > 0 {
			k.argonMemory = memory
		}
		if threads > 0 {
			k.argonThreads = threads
		}
	}
}

// NewKeyChainService returns a [KeyChainService] with the default Argon2id
// parameters unless overridden by opts.
func NewKeyChainService(opts ...Option) KeyChainService {
	k := &keyChainService{
		argonTime:    DefaultArgonTime,
		argonMemory:  DefaultArgonMemory,
		argonThreads: DefaultArgonThreads,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// DeriveKey derives a key from passphrase and salt with the default Argon2id
// parameters.
func DeriveKey(passphrase string, salt []byte) (Key, error) {
	return deriveKey(passphrase, salt, DefaultArgonTime, DefaultArgonMemory, DefaultArgonThreads)
}

func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return salt, nil
}

func (k *keyChainService) GenerateDataKey() (Key, error) {
	return GenerateKey()
}

func (k *keyChainService) DeriveKEK(passphrase string, salt []byte) (Key, error) {
	return deriveKey(passphrase, salt, k.argonTime, k.argonMemory, k.argonThreads)
}

func (k *keyChainService) WrapKey(dataKey, kek Key) (Envelope, error) {
	if dataKey.IsZero() || kek.IsZero() {
		return "", ErrInvalidKey
	}
	return sealBytes(dataKey.bytes(), kek)
}

func (k *keyChainService) UnwrapKey(wrapped Envelope, kek Key) (Key, error) {
	raw, err := openBytes(wrapped, kek)
	if err != nil {
		return Key{}, err
	}

	dataKey, err := NewKey(raw)
	if err != nil {
		// authentic but not a key: treat like any other unusable envelope
		return Key{}, ErrDecryptionFailed
	}
	return dataKey, nil
}

func (k *keyChainService) AuthHash(kek Key) string {
	h := sha256.New()
	h.Write(kek.bytes())
	h.Write([]byte(authLabel))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func deriveKey(passphrase string, salt []byte, time, memory uint32, threads uint8) (Key, error) {
	if passphrase == "" || len(salt) < minSaltSize {
		return Key{}, ErrInvalidKeyMaterial
	}

	raw := argon2.IDKey([]byte(passphrase), salt, time, memory, threads, KeySize)
	return NewKey(raw)
}
