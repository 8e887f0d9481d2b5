package hashing

import (
	"encoding/base64"
	"math"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Version is the only Argon2 version the engine derives with (0x13).
const Argon2Version uint32 = argon2.Version

// Argon2Params are the Argon2 cost knobs.
//
// None of them is bounded from above: a caller that forwards untrusted values
// can make a single derivation use arbitrary CPU time and memory.  Limits
// belong to whoever chooses the parameters.
type Argon2Params struct {
	// TimeCost is the number of passes over memory.  Must be ≥ 1.
	TimeCost uint32

	// MemoryCost is the memory size in KiB.  Values below 8×Parallelism are
	// raised to that minimum by the engine.
	MemoryCost uint32

	// Parallelism is the number of lanes and worker threads.  Must be in
	// [1, 255].
	Parallelism uint32

	// Version must be [Argon2Version].
	Version uint32

	// HashLength is the derived key length in bytes.  Must be ≥ 1.
	HashLength uint32
}

// DefaultArgon2Params returns parameters matching common Argon2i settings:
// t=4, m=4 MiB, p=1, 32-byte output.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		TimeCost:    4,
		MemoryCost:  4 * 1024,
		Parallelism: 1,
		Version:     Argon2Version,
		HashLength:  32,
	}
}

// Argon2i derives an Argon2i key from password and a base64-encoded salt and
// returns it as unpadded URL-safe base64.
//
// The salt uses the standard base64 alphabet, padded or unpadded, so the salt
// field of a stored Argon2 hash can be passed as is.  A salt that does not
// decode is rejected with [ErrInvalidSalt] before any derivation work
// starts.  Parameter values the engine cannot run with return
// [ErrInvalidParameter] or [ErrUnsupportedVersion].  The secret and
// associated-data inputs of Argon2 are empty.
//
// The password copy, the decoded salt and the raw key are zeroed before
// Argon2i returns, on success and on failure.
func Argon2i(password, salt string, p Argon2Params) (string, error) {
	rawSalt, err := decodeArgon2Salt(salt)
	if err != nil {
		return "", newHashError(AlgArgon2i, ErrInvalidSalt, "salt is not valid base64: %v", err)
	}
	saltBuf := newSecretBuffer(rawSalt)
	defer saltBuf.Wipe()

	if err := validateArgon2Params(p); err != nil {
		return "", err
	}

	pw := newSecretBuffer([]byte(password))
	defer pw.Wipe()

	key := newSecretBuffer(argon2.Key(
		pw.Bytes(), saltBuf.Bytes(),
		p.TimeCost, p.MemoryCost, uint8(p.Parallelism), p.HashLength,
	))
	defer key.Wipe()

	return base64.RawURLEncoding.EncodeToString(key.Bytes()), nil
}

// decodeArgon2Salt accepts standard base64 with or without trailing padding.
// Unpadded input is only recognised when its length is not a multiple of 4,
// so misplaced padding is still an error.
func decodeArgon2Salt(salt string) ([]byte, error) {
	if len(salt)%4 != 0 && !strings.Contains(salt, "=") {
		return base64.RawStdEncoding.DecodeString(salt)
	}
	return base64.StdEncoding.DecodeString(salt)
}

// validateArgon2Params rejects only what golang.org/x/crypto/argon2 would
// panic on or silently truncate.
func validateArgon2Params(p Argon2Params) error {
	if p.Version != Argon2Version {
		return newHashError(AlgArgon2i, ErrUnsupportedVersion,
			"version %#x, only %#x is supported", p.Version, Argon2Version)
	}
	if p.TimeCost < 1 {
		return newHashError(AlgArgon2i, ErrInvalidParameter, "time cost must be ≥ 1, got %d", p.TimeCost)
	}
	if p.Parallelism < 1 || p.Parallelism > math.MaxUint8 {
		return newHashError(AlgArgon2i, ErrInvalidParameter,
			"parallelism must be in [1, %d], got %d", math.MaxUint8, p.Parallelism)
	}
	if p.HashLength < 1 {
		return newHashError(AlgArgon2i, ErrInvalidParameter, "hash length must be ≥ 1, got %d", p.HashLength)
	}
	return nil
}
