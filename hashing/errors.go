package hashing

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by hashing operations.
//
// Operation failures are wrapped in a [*HashError]; use [errors.Is] to match
// the sentinel and [errors.As] to recover the algorithm that failed:
//
//	_, err := hashing.Argon2i(password, salt, params)
//	if errors.Is(err, hashing.ErrInvalidSalt) {
//	    // salt was not valid base64
//	}
var (
	// ErrInvalidSalt is returned when a salt does not follow the encoding
	// contract of the algorithm (Argon2 expects standard padded base64).
	// This is a caller-contract violation, not a runtime data error.
	ErrInvalidSalt = errors.New("hashing: invalid salt encoding")

	// ErrInvalidParameter is returned when a cost parameter has a value the
	// underlying engine cannot run with at all (e.g. zero Argon2 passes).
	// Merely expensive values are never rejected.
	ErrInvalidParameter = errors.New("hashing: invalid parameter value")

	// ErrUnsupportedVersion is returned when an Argon2 version other than
	// 0x13 is requested.
	ErrUnsupportedVersion = errors.New("hashing: unsupported algorithm version")

	// ErrNativeFailure is returned when the system crypt(3) library fails to
	// produce a digest, or is not available in this build.
	ErrNativeFailure = errors.New("hashing: native library failure")

	// ErrAlgorithmNotFound is returned by [Registry.Algorithm] and the
	// dispatching methods when no algorithm is registered under a name.
	ErrAlgorithmNotFound = errors.New("hashing: algorithm not found")

	// ErrEmptyAlgorithmName is returned by [Registry.Register] when the
	// algorithm reports an empty name.
	ErrEmptyAlgorithmName = errors.New("hashing: algorithm name must not be empty")

	// ErrNilAlgorithm is returned by [Registry.Register] when a nil
	// [Algorithm] is supplied.
	ErrNilAlgorithm = errors.New("hashing: algorithm must not be nil")

	// ErrFeatureDisabled is returned when an algorithm belongs to a family
	// that is not enabled in the registry's [Config].
	ErrFeatureDisabled = errors.New("hashing: algorithm family is not enabled")

	// ErrUnknownFeature is returned by [ParseFeature] for unrecognised names.
	ErrUnknownFeature = errors.New("hashing: unknown feature")
)

// HashError describes a failed digest computation.
type HashError struct {
	// Algorithm is the algorithm that failed.
	Algorithm AlgorithmName
	// Err is the underlying cause; it always wraps one of the package
	// sentinel errors.
	Err error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("%s: %v", e.Algorithm, e.Err)
}

func (e *HashError) Unwrap() error { return e.Err }

func newHashError(alg AlgorithmName, sentinel error, format string, args ...any) *HashError {
	if format == "" {
		return &HashError{Algorithm: alg, Err: sentinel}
	}
	return &HashError{
		Algorithm: alg,
		Err:       fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)),
	}
}
