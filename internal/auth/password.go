package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// HashPassword returns the hex SHA-256 digest of a password. The digest is
// unsalted; the stored value in ADMIN_PASSWORD_HASH is produced by the
// hash-password command using this same function.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword compares a candidate password against a stored hex digest
// using a constant-time comparison.
func VerifyPassword(candidate, storedDigestHex string) bool {
	if storedDigestHex == "" {
		return false
	}
	digest := HashPassword(candidate)
	stored := strings.ToLower(strings.TrimSpace(storedDigestHex))
	return subtle.ConstantTimeCompare([]byte(digest), []byte(stored)) == 1
}
