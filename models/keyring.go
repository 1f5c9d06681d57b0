package models

import "time"

// Keyring holds the key material of a local vault: the Argon2id salt and the
// data key wrapped under the passphrase-derived key. Neither value is secret
// on its own.
type Keyring struct {
	OwnerID    int64     `cbor:"1,keyasint"`
	Salt       string    `cbor:"2,keyasint"`
	WrappedKey string    `cbor:"3,keyasint"`
	CreatedAt  time.Time `cbor:"4,keyasint"`
}
