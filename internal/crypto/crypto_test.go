package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(bytes.Repeat([]byte{0x11}, 32), bytes.Repeat([]byte{0x22}, 32))
	require.NoError(t, err)
	return svc
}

func TestNewServiceRejectsBadKeyLengths(t *testing.T) {
	_, err := NewService(make([]byte, 16), make([]byte, 32))
	assert.Error(t, err)
	_, err = NewService(make([]byte, 32), make([]byte, 31))
	assert.Error(t, err)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	svc := newTestService(t)
	for _, plaintext := range []string{"a", "user@example.com", "a longer journal entry with\nnewlines"} {
		encrypted, err := svc.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, encrypted)

		decrypted, err := svc.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	svc := newTestService(t)
	a, err := svc.Encrypt("same input")
	require.NoError(t, err)
	b, err := svc.Encrypt("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestEmptyStringsPassThrough(t *testing.T) {
	svc := newTestService(t)
	encrypted, err := svc.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, encrypted)

	decrypted, err := svc.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, decrypted)

	assert.Empty(t, svc.BlindIndex(""))
}

func TestDecryptRejectsGarbage(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Decrypt("not base64!!")
	assert.Error(t, err)
	_, err = svc.Decrypt("c2hvcnQ=")
	assert.Error(t, err)
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	svc := newTestService(t)
	encrypted, err := svc.Encrypt("secret")
	require.NoError(t, err)

	other, err := NewService(bytes.Repeat([]byte{0x33}, 32), bytes.Repeat([]byte{0x22}, 32))
	require.NoError(t, err)
	_, err = other.Decrypt(encrypted)
	assert.Error(t, err)
}

func TestBlindIndexIsDeterministic(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, svc.BlindIndex("user@example.com"), svc.BlindIndex("user@example.com"))
	assert.NotEqual(t, svc.BlindIndex("user@example.com"), svc.BlindIndex("other@example.com"))
}

func TestEncryptWithBlindIndex(t *testing.T) {
	svc := newTestService(t)
	encrypted, idx, err := svc.EncryptWithBlindIndex("user@example.com")
	require.NoError(t, err)
	assert.Equal(t, svc.BlindIndex("user@example.com"), idx)

	decrypted, err := svc.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", decrypted)
}
