package hashing

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256Prehash returns the lowercase hex SHA-256 digest of password.
//
// bcrypt ignores everything past 72 bytes of input.  Feeding it the 64
// character prehash instead of the raw password makes every byte of a long
// password count.
func Sha256Prehash(password string) string {
	sum := sha256.Sum256([]byte(password))
	defer clear(sum[:])
	return hex.EncodeToString(sum[:])
}
