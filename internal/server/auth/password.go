package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"grocerylist/internal/common"
)

// HashPassword derives a salted one-way hash of password with the given
// bcrypt cost. The salt is embedded in the returned hash.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hash against a password candidate.
// It returns common.ErrInvalidCredentials on mismatch; the comparison is
// constant-time inside bcrypt.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return common.ErrInvalidCredentials
		}
		return err
	}
	return nil
}
