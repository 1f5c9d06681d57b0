package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService holds the client side of the zero-knowledge scheme. It
// knows nothing about the network, databases or users.
//
//	salt, dataKey = GenerateSalt(), GenerateDataKey()   (registration)
//	kek           = DeriveKEK(passphrase, salt)
//	wrapped       = WrapKey(dataKey, kek)                (stored on the server)
//	authHash      = AuthHash(kek)                        (sent to the server)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret.
	GenerateSalt() ([]byte, error)

	// GenerateDataKey returns a random key that seals every entry of a user.
	GenerateDataKey() (Key, error)

	// DeriveKEK derives the key-encryption key from a passphrase with Argon2id.
	DeriveKEK(passphrase string, salt []byte) (Key, error)

	// WrapKey seals dataKey under kek.
	WrapKey(dataKey, kek Key) (Envelope, error)

	// UnwrapKey opens a wrapped data key. A wrong passphrase surfaces as
	// [ErrDecryptionFailed].
	UnwrapKey(wrapped Envelope, kek Key) (Key, error)

	// AuthHash returns the proof of knowledge sent to the server at login.
	// It is one-way, so the server cannot recover kek from it.
	AuthHash(kek Key) string
}
