package lock

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPasscode   = errors.New("passcode must be 4 to 6 digits")
	ErrIncorrectPasscode = errors.New("incorrect passcode")
)

// ValidatePasscode enforces the 4-6 digit format.
func ValidatePasscode(passcode string) error {
	if len(passcode) < 4 || len(passcode) > 6 {
		return ErrInvalidPasscode
	}
	for _, c := range passcode {
		if c < '0' || c > '9' {
			return ErrInvalidPasscode
		}
	}
	return nil
}

// HashPasscode validates and bcrypt-hashes a passcode for storage. Passcodes
// are never stored in plain text.
func HashPasscode(passcode string) (string, error) {
	if err := ValidatePasscode(passcode); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPasscode compares the submitted passcode against the stored hash.
func VerifyPasscode(hash, passcode string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) != nil {
		return ErrIncorrectPasscode
	}
	return nil
}

// GeneratePasscode returns a random 6-digit passcode, used when enabling
// biometric unlock before any passcode exists.
func GeneratePasscode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
