package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
)

// Service encrypts record fields at rest with AES-256-GCM and derives
// deterministic HMAC blind indexes so encrypted columns stay searchable.
type Service struct {
	encryptionKey []byte // 32 bytes
	blindIndexKey []byte // 32 bytes, independent of the encryption key
}

func NewService(encryptionKey, blindIndexKey []byte) (*Service, error) {
	if len(encryptionKey) != 32 {
		return nil, errors.New("encryption key must be 32 bytes")
	}
	if len(blindIndexKey) != 32 {
		return nil, errors.New("blind index key must be 32 bytes")
	}
	return &Service{encryptionKey: encryptionKey, blindIndexKey: blindIndexKey}, nil
}

// Encrypt returns base64(nonce || ciphertext). Empty input stays empty so
// optional columns round-trip without a ciphertext.
func (s *Service) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *Service) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	if len(data) < gcm.NonceSize() {
		return "", errors.New("ciphertext too short")
	}
	nonce, sealed := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// BlindIndex derives a deterministic HMAC-SHA256 digest used for equality
// lookups on encrypted columns.
func (s *Service) BlindIndex(plaintext string) string {
	if plaintext == "" {
		return ""
	}
	h := hmac.New(sha256.New, s.blindIndexKey)
	h.Write([]byte(plaintext))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// EncryptWithBlindIndex encrypts the value and returns its blind index in one
// step, for columns that need both.
func (s *Service) EncryptWithBlindIndex(plaintext string) (encrypted, blindIndex string, err error) {
	encrypted, err = s.Encrypt(plaintext)
	if err != nil {
		return "", "", err
	}
	return encrypted, s.BlindIndex(plaintext), nil
}
