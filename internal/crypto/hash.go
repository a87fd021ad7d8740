package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor. Deliberately above the library
// default to keep brute-forcing expensive.
const HashCost = 12

// HashPassword hashes a password with bcrypt. The salt is random per
// call, so hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the given bcrypt
// hash. A mismatch or a malformed hash both return false; this never
// fails in a way the caller should distinguish from a wrong password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
