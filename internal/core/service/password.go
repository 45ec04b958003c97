package service

import "golang.org/x/crypto/bcrypt"

// MinPasswordLength is the default password policy applied when the caller
// does not inject one.
const MinPasswordLength = 8

// HashPassword derives a one-way hash of plaintext. bcrypt embeds a fresh
// random salt, so hashing the same plaintext twice yields different outputs.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext reproduces the stored hash. The
// comparison is constant-time. A malformed stored hash (corrupt data) simply
// reports false.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
