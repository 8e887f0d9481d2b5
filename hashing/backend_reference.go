//go:build !fastpbkdf2

package hashing

// DefaultPbkdf2Backend is the backend used by [Pbkdf2Sha256] and
// [Pbkdf2Sha1].  Build with -tags fastpbkdf2 to default to
// [BackendAccelerated].
const DefaultPbkdf2Backend = BackendReference
