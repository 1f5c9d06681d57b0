package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the nonce and key source. Replaced only in tests.
var randReader io.Reader = rand.Reader

// Seal encrypts plaintext under key with AES-256-GCM and a fresh random
// nonce. Sealing the same plaintext twice yields different envelopes.
func Seal(plaintext string, key Key) (Envelope, error) {
	return sealBytes([]byte(plaintext), key)
}

// Open authenticates and decrypts env with key. Every failure, whether the
// envelope is malformed, truncated, tampered with or sealed under another
// key, returns [ErrDecryptionFailed] and nothing else.
func Open(env Envelope, key Key) (string, error) {
	plaintext, err := openBytes(env, key)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func sealBytes(plaintext []byte, key Key) (Envelope, error) {
	if key.IsZero() {
		return "", ErrInvalidKey
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, []byte(envelopePrefix))
	return newEnvelope(nonce, sealed), nil
}

func openBytes(env Envelope, key Key) ([]byte, error) {
	if key.IsZero() {
		return nil, ErrDecryptionFailed
	}

	raw, err := env.payload()
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, []byte(envelopePrefix))
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func newGCM(key Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.bytes())
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
