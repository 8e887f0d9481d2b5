package hashing

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Pbkdf2Sha256KeyLen is the derived key length of [Pbkdf2Sha256] in bytes.
	Pbkdf2Sha256KeyLen = sha256.Size

	// Pbkdf2Sha1KeyLen is the derived key length of [Pbkdf2Sha1] in bytes.
	Pbkdf2Sha1KeyLen = sha1.Size
)

// Pbkdf2Backend selects the PBKDF2 implementation.
//
// Both backends produce bit-identical output for identical inputs; they differ
// only in speed.
type Pbkdf2Backend int

const (
	// BackendReference uses golang.org/x/crypto/pbkdf2.
	BackendReference Pbkdf2Backend = iota
	// BackendAccelerated uses the in-package implementation that keys HMAC
	// once and replays the saved pad states on every round.
	BackendAccelerated
)

// String returns the backend name used in configuration files.
func (b Pbkdf2Backend) String() string {
	switch b {
	case BackendReference:
		return "reference"
	case BackendAccelerated:
		return "accelerated"
	default:
		return fmt.Sprintf("Pbkdf2Backend(%d)", int(b))
	}
}

// ParsePbkdf2Backend converts "reference" or "accelerated" to a backend.
// An empty string selects [DefaultPbkdf2Backend].
func ParsePbkdf2Backend(s string) (Pbkdf2Backend, error) {
	switch s {
	case "":
		return DefaultPbkdf2Backend, nil
	case "reference":
		return BackendReference, nil
	case "accelerated":
		return BackendAccelerated, nil
	default:
		return 0, fmt.Errorf("%w: unknown pbkdf2 backend %q", ErrInvalidParameter, s)
	}
}

// Pbkdf2Sha256 derives a 32-byte PBKDF2-HMAC-SHA256 key from password and
// salt and returns it as padded standard base64.
//
// The iteration count is not range checked: zero runs a single round and
// very large values simply take proportionally longer.  It uses
// [DefaultPbkdf2Backend].
func Pbkdf2Sha256(password, salt string, iterations uint32) string {
	return Pbkdf2Sha256With(DefaultPbkdf2Backend, password, salt, iterations)
}

// Pbkdf2Sha1 derives a 20-byte PBKDF2-HMAC-SHA1 key from password and salt
// and returns it as padded standard base64.  See [Pbkdf2Sha256].
func Pbkdf2Sha1(password, salt string, iterations uint32) string {
	return Pbkdf2Sha1With(DefaultPbkdf2Backend, password, salt, iterations)
}

// Pbkdf2Sha256With is [Pbkdf2Sha256] with an explicit backend.
func Pbkdf2Sha256With(b Pbkdf2Backend, password, salt string, iterations uint32) string {
	return pbkdf2Encode(b, sha256.New, password, salt, iterations, Pbkdf2Sha256KeyLen)
}

// Pbkdf2Sha1With is [Pbkdf2Sha1] with an explicit backend.
func Pbkdf2Sha1With(b Pbkdf2Backend, password, salt string, iterations uint32) string {
	return pbkdf2Encode(b, sha1.New, password, salt, iterations, Pbkdf2Sha1KeyLen)
}

func pbkdf2Encode(b Pbkdf2Backend, h func() hash.Hash, password, salt string, iterations uint32, keyLen int) string {
	pw := newSecretBuffer([]byte(password))
	defer pw.Wipe()

	var key []byte
	if b == BackendAccelerated {
		key = acceleratedPbkdf2(pw.Bytes(), []byte(salt), iterations, keyLen, h)
	} else {
		key = pbkdf2.Key(pw.Bytes(), []byte(salt), int(iterations), keyLen, h)
	}
	dk := newSecretBuffer(key)
	defer dk.Wipe()
	return base64.StdEncoding.EncodeToString(dk.Bytes())
}
