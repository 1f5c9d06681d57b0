package crypto

import (
	"crypto/subtle"
	"fmt"
	"io"
)

// KeySize is the length of every vault key in bytes (AES-256).
const KeySize = 32

const redacted = "[REDACTED]"

// Key is a 256-bit symmetric key.
//
// There is no way to build a Key from a literal: it comes from [NewKey]
// (deployment or user supplied bytes), [DeriveKey] (a passphrase) or
// [GenerateKey] (randomness). The zero value is not a usable key.
//
// Key never prints its bytes: String, GoString and MarshalJSON all return a
// redacted placeholder so it cannot end up in logs by accident.
type Key struct {
	raw [KeySize]byte
	set bool
}

// NewKey copies raw into a Key. raw must be exactly [KeySize] bytes.
func NewKey(raw []byte) (Key, error) {
	if len(raw) != KeySize {
		return Key{}, ErrInvalidKey
	}

	var k Key
	copy(k.raw[:], raw)
	k.set = true
	return k, nil
}

// GenerateKey returns a key read from the OS CSPRNG.
func GenerateKey() (Key, error) {
	var raw [KeySize]byte
	if _, err := io.ReadFull(randReader, raw[:]); err != nil {
		return Key{}, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return Key{raw: raw, set: true}, nil
}

// IsZero reports whether k was never initialized.
func (k Key) IsZero() bool {
	return !k.set
}

// Equal compares two keys in constant time.
func (k Key) Equal(other Key) bool {
	if k.set != other.set {
		return false
	}
	return subtle.ConstantTimeCompare(k.raw[:], other.raw[:]) == 1
}

func (k Key) bytes() []byte {
	return k.raw[:]
}

// String implements [fmt.Stringer] without revealing the key.
func (k Key) String() string {
	return redacted
}

// GoString implements [fmt.GoStringer] without revealing the key.
func (k Key) GoString() string {
	return "crypto.Key(" + redacted + ")"
}

// MarshalJSON keeps keys out of JSON logs and payloads.
func (k Key) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}
