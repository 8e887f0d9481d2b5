//go:build !linux || !cgo

package hashing

// UnixCrypt needs the system crypt(3) library through cgo.  In this build it
// always returns an empty string and an error wrapping [ErrNativeFailure].
func UnixCrypt(password, salt string) (string, error) {
	return "", newHashError(AlgUnixCrypt, ErrNativeFailure, "crypt(3) is not available in this build")
}
