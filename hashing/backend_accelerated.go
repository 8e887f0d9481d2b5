//go:build fastpbkdf2

package hashing

// DefaultPbkdf2Backend is the backend used by [Pbkdf2Sha256] and
// [Pbkdf2Sha1].
const DefaultPbkdf2Backend = BackendAccelerated
