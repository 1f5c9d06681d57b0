package models

import "time"

// User represents an account entity used for authentication and for
// recovering the user's vault key on a new device.
//
// None of the stored fields allows the server to decrypt entries: the salt
// and the wrapped key are useless without the passphrase, and AuthHash is a
// one-way value derived from the passphrase key.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// AuthHash is the client-computed proof of the passphrase. The server
	// keeps only a bcrypt digest of it and never returns it.
	AuthHash string `json:"auth_hash,omitempty"`

	// EncryptionSalt is the base64 Argon2id salt used to derive the
	// passphrase key on the client.
	EncryptionSalt string `json:"encryption_salt,omitempty"`

	// EncryptedMasterKey is the data key sealed under the passphrase key.
	EncryptedMasterKey string `json:"encrypted_master_key,omitempty"`

	// Passphrase is the plaintext master passphrase. It exists only on the
	// client while key material is being derived and is never serialized.
	Passphrase string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u *User) TableName() string {
	return "users"
}
