package inkwell

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the cost HashPassword uses. Login latency is dominated
// by this value.
const DefaultBcryptCost = 12

// HashPassword will generate a password hash
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultBcryptCost)
}

// HashPasswordWithCost will generate a password hash with an explicit cost
func HashPasswordWithCost(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext password matches the
// hashed password. Comparison is constant time; a malformed hash reports the
// same mismatch error as a wrong password so the hash format never leaks.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		// malformed hashes collapse into the same mismatch error
		return ErrMismatchedHashAndPassword
	}
	return nil
}

// RandomPasswordHash returns the hash of a throwaway random password, used to
// provision accounts that cannot be logged into until a real password is set.
func RandomPasswordHash() string {
	pwd := uuid.New()

	h, err := HashPassword(pwd.String())
	if err != nil {
		return RandomPasswordHash()
	}

	return h
}
