package security

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt silently truncates input beyond 72 bytes; longer passwords are
// pre-hashed so no entropy is lost.
const bcryptMaxBytes = 72

// PasswordHasher hashes and verifies passwords using bcrypt
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a new password hasher.
// A cost of 0 (or any value below bcrypt's minimum) uses the library default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// normalize reduces over-long passwords to a fixed-length hex digest so they
// fit within bcrypt's hard input limit. Shorter passwords pass through as-is.
func normalize(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxBytes {
		sum := sha256.Sum256(b)
		return []byte(hex.EncodeToString(sum[:]))
	}
	return b
}

// Hash converts a plain password to a salted bcrypt hash.
// Each call produces a different hash for the same input (random salt),
// so two hashes must never be compared for equality directly.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(normalize(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify checks a plain password against a stored hash.
// Returns false for any mismatch, including malformed stored hashes from a
// different scheme; wrong passwords are a boolean outcome, not an error.
func (h *PasswordHasher) Verify(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), normalize(password)) == nil
}
