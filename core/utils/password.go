package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex-encoded sha256 digest of the password. Stored
// admin hashes use the same encoding, so login is a byte-for-byte compare.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// ComparePassword checks a plaintext password against a stored hash in
// constant time.
func ComparePassword(storedHash, password string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(computed)) == 1
}
