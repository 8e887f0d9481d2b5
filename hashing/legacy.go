package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"hash"
)

// Sha1 returns the lowercase hex SHA-1 digest of salt followed by password.
//
// Only for verifying credentials migrated from legacy stores.
func Sha1(password, salt string) string {
	return saltedHex(sha1.New(), password, salt)
}

// Md5 returns the lowercase hex MD5 digest of salt followed by password.
//
// Only for verifying credentials migrated from legacy stores.
func Md5(password, salt string) string {
	return saltedHex(md5.New(), password, salt)
}

// saltedHex hashes salt‖password.  The order matches the stored credentials
// and must not change.
func saltedHex(h hash.Hash, password, salt string) string {
	h.Write([]byte(salt))
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}
