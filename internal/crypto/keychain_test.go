package crypto

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastKeyChain keeps Argon2id cheap in tests.
func fastKeyChain() KeyChainService {
	return NewKeyChainService(WithArgon2Params(1, 8*1024, 1))
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := fastKeyChain()

	s1, err := svc.GenerateSalt()
	require.NoError(t, err)
	s2, err := svc.GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.Len(t, s2, SaltSize)
	assert.False(t, bytes.Equal(s1, s2))
}

func TestGenerateDataKey_Randomness(t *testing.T) {
	svc := fastKeyChain()

	k1, err := svc.GenerateDataKey()
	require.NoError(t, err)
	k2, err := svc.GenerateDataKey()
	require.NoError(t, err)

	assert.False(t, k1.IsZero())
	assert.False(t, k1.Equal(k2))
}

func TestDeriveKEK(t *testing.T) {
	svc := fastKeyChain()
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, err := svc.DeriveKEK("correct horse battery staple", salt)
	require.NoError(t, err)
	k2, err := svc.DeriveKEK("correct horse battery staple", salt)
	require.NoError(t, err)
	assert.True(t, k1.Equal(k2), "same passphrase and salt must give the same key")

	k3, err := svc.DeriveKEK("correct horse battery staple", bytes.Repeat([]byte{0x01}, SaltSize))
	require.NoError(t, err)
	assert.False(t, k1.Equal(k3), "salt must change the key")

	k4, err := svc.DeriveKEK("Correct horse battery staple", salt)
	require.NoError(t, err)
	assert.False(t, k1.Equal(k4), "passphrase must change the key")
}

func TestDeriveKEK_InvalidMaterial(t *testing.T) {
	svc := fastKeyChain()

	_, err := svc.DeriveKEK("", bytes.Repeat([]byte{1}, SaltSize))
	assert.ErrorIs(t, err, ErrInvalidKeyMaterial)

	_, err = svc.DeriveKEK("passphrase", []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
}

func TestWrapUnwrap(t *testing.T) {
	svc := fastKeyChain()
	salt, err := svc.GenerateSalt()
	require.NoError(t, err)

	dataKey, err := svc.GenerateDataKey()
	require.NoError(t, err)
	kek, err := svc.DeriveKEK("passphrase", salt)
	require.NoError(t, err)

	wrapped, err := svc.WrapKey(dataKey, kek)
	require.NoError(t, err)
	_, err = ParseEnvelope(wrapped.String())
	require.NoError(t, err)

	got, err := svc.UnwrapKey(wrapped, kek)
	require.NoError(t, err)
	assert.True(t, dataKey.Equal(got))

	wrongKEK, err := svc.DeriveKEK("wrong passphrase", salt)
	require.NoError(t, err)
	_, err = svc.UnwrapKey(wrapped, wrongKEK)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestWrapKey_ZeroKeys(t *testing.T) {
	svc := fastKeyChain()
	k := testKey(t)

	_, err := svc.WrapKey(Key{}, k)
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = svc.WrapKey(k, Key{})
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestUnwrapKey_NotAKey(t *testing.T) {
	svc := fastKeyChain()
	kek := testKey(t)

	env, err := Seal("too short to be a key", kek)
	require.NoError(t, err)

	_, err = svc.UnwrapKey(env, kek)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestAuthHash(t *testing.T) {
	svc := fastKeyChain()
	kek := testKey(t)

	h1 := svc.AuthHash(kek)
	h2 := svc.AuthHash(kek)
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, svc.AuthHash(testKey(t)))

	raw, err := base64.StdEncoding.DecodeString(h1)
	require.NoError(t, err)
	assert.Len(t, raw, sha256.Size)

	// the hash is not the key itself
	assert.NotEqual(t, base64.StdEncoding.EncodeToString(kek.bytes()), h1)
}
