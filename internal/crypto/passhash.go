// Package crypto implements server-side password hashing and verification.
package crypto

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used unless configured otherwise.
const DefaultCost = 10

// HashPassword returns the bcrypt digest of password. The salt is generated
// internally and embedded in the digest.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword verifies password against a stored bcrypt digest.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
