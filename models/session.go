package models

import "github.com/MKhiriev/go-pass-vault/internal/crypto"

// Session is an unlocked vault on the client side.
//
// Key is the data key recovered from the user's passphrase. It lives only in
// memory for the duration of one command.
type Session struct {
	UserID int64
	Token  string
	Key    crypto.Key
}
