// Package hashing provides the password-digest primitives behind a
// credential hasher: stateless functions that turn a password, a salt and
// cost parameters into an encoded digest, and a constant-time comparison for
// verification.
//
// Salt generation, credential-string formatting and algorithm-selection
// policy are the caller's job.  This package only computes digests.
//
// # Algorithms
//
//   - [Pbkdf2Sha256], [Pbkdf2Sha1]: PBKDF2-HMAC, padded standard base64.
//   - [Argon2i]: Argon2i, base64 salt in, unpadded URL-safe base64 out.
//   - [Sha1], [Md5]: hex(H(salt‖password)), for legacy credential stores.
//   - [UnixCrypt]: the system crypt(3), for legacy credential stores.
//   - [Sha256Prehash]: hex(SHA256(password)), fed to bcrypt in place of
//     the raw password.
//
// Each function is also available as an [Algorithm] implementation so a
// caller can pick one at runtime:
//
//	r, err := hashing.NewRegistry(hashing.DefaultConfig())
//	if err != nil { log.Fatal(err) }
//
//	digest, _ := r.Hash(hashing.AlgPbkdf2Sha256, password, salt, hashing.Params{Iterations: 150000})
//	ok, _     := r.Verify(hashing.AlgPbkdf2Sha256, password, salt, hashing.Params{Iterations: 150000}, stored)
//
// # Feature families
//
// [Config].Features selects which families are registered: pbkdf2, argon2,
// legacy and bcrypt-prehash.  The PBKDF2 backend (reference or accelerated)
// is chosen per registry; [DefaultPbkdf2Backend] is fixed at build time by the
// fastpbkdf2 build tag.  Both backends produce identical output.
//
// # Errors
//
// PBKDF2, SHA-1, MD5 and the prehash cannot fail.  [Argon2i] rejects a salt
// that is not base64 ([ErrInvalidSalt]) and parameters its engine cannot run
// with.  [UnixCrypt] reports library failures as [ErrNativeFailure] together
// with an empty digest, which never verifies.  Failures are [*HashError]
// values wrapping a sentinel.
//
// # Cost parameters
//
// Iteration counts and Argon2 costs are used as given.  Nothing here bounds
// them, so a caller exposing these functions to untrusted input must enforce
// its own limits.
package hashing
