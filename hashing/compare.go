package hashing

import "crypto/subtle"

// ConstantTimeCompare reports whether a and b have the same length and
// contents.
//
// For inputs of equal length the running time does not depend on where the
// first differing byte is.  A length mismatch returns immediately; digest
// length is not secret.
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// SafeEqual is [ConstantTimeCompare] for encoded digest strings.
//
// An empty computed digest never equals a non-empty stored one, so a failed
// computation cannot verify.
func SafeEqual(a, b string) bool {
	return ConstantTimeCompare([]byte(a), []byte(b))
}
