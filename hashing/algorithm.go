package hashing

// AlgorithmName identifies a digest algorithm.
// Using a named string type prevents accidental confusion with plain strings.
type AlgorithmName string

const (
	// AlgPbkdf2Sha256 selects PBKDF2-HMAC-SHA256.
	AlgPbkdf2Sha256 AlgorithmName = "pbkdf2_sha256"
	// AlgPbkdf2Sha1 selects PBKDF2-HMAC-SHA1.
	AlgPbkdf2Sha1 AlgorithmName = "pbkdf2_sha1"
	// AlgArgon2i selects Argon2i.
	AlgArgon2i AlgorithmName = "argon2i"
	// AlgSha1 selects the legacy salted SHA-1 digest.
	AlgSha1 AlgorithmName = "sha1"
	// AlgMd5 selects the legacy salted MD5 digest.
	AlgMd5 AlgorithmName = "md5"
	// AlgUnixCrypt selects crypt(3).
	AlgUnixCrypt AlgorithmName = "unix_crypt"
	// AlgSha256Prehash selects the SHA-256 prehash used in front of bcrypt.
	AlgSha256Prehash AlgorithmName = "sha256_prehash"
)

// Params carries the cost parameters of every algorithm.  Each algorithm
// reads only the fields that apply to it and ignores the rest.
type Params struct {
	// Iterations is the PBKDF2 round count.
	Iterations uint32

	// TimeCost, MemoryCost, Parallelism, Version and HashLength are the
	// Argon2 parameters; see [Argon2Params].
	TimeCost    uint32
	MemoryCost  uint32
	Parallelism uint32
	Version     uint32
	HashLength  uint32
}

// Argon2 returns the Argon2 subset of p.
func (p Params) Argon2() Argon2Params {
	return Argon2Params{
		TimeCost:    p.TimeCost,
		MemoryCost:  p.MemoryCost,
		Parallelism: p.Parallelism,
		Version:     p.Version,
		HashLength:  p.HashLength,
	}
}

// Algorithm is the interface satisfied by every digest algorithm.
//
// Implementations are stateless apart from immutable configuration and are
// safe for concurrent use.
type Algorithm interface {
	// Name returns the registry name of the algorithm.
	Name() AlgorithmName

	// Family returns the feature that must be enabled for the algorithm to
	// be registered.  Custom algorithms may return an empty Feature.
	Family() Feature

	// Hash derives the encoded digest of password.  Identical arguments
	// always give identical output.
	Hash(password, salt string, p Params) (string, error)
}

// Verify recomputes the digest of password and compares it with stored in
// constant time.  A computation error yields false together with the error.
func Verify(alg Algorithm, password, salt string, p Params, stored string) (bool, error) {
	digest, err := alg.Hash(password, salt, p)
	if err != nil {
		return false, err
	}
	return SafeEqual(digest, stored), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// PBKDF2
// ──────────────────────────────────────────────────────────────────────────────

// Pbkdf2Sha256Algorithm is the [Algorithm] form of [Pbkdf2Sha256With].
type Pbkdf2Sha256Algorithm struct {
	Backend Pbkdf2Backend
}

func (Pbkdf2Sha256Algorithm) Name() AlgorithmName { return AlgPbkdf2Sha256 }
func (Pbkdf2Sha256Algorithm) Family() Feature     { return FeaturePbkdf2 }

// Hash uses p.Iterations.
func (a Pbkdf2Sha256Algorithm) Hash(password, salt string, p Params) (string, error) {
	return Pbkdf2Sha256With(a.Backend, password, salt, p.Iterations), nil
}

// Pbkdf2Sha1Algorithm is the [Algorithm] form of [Pbkdf2Sha1With].
type Pbkdf2Sha1Algorithm struct {
	Backend Pbkdf2Backend
}

func (Pbkdf2Sha1Algorithm) Name() AlgorithmName { return AlgPbkdf2Sha1 }
func (Pbkdf2Sha1Algorithm) Family() Feature     { return FeaturePbkdf2 }

// Hash uses p.Iterations.
func (a Pbkdf2Sha1Algorithm) Hash(password, salt string, p Params) (string, error) {
	return Pbkdf2Sha1With(a.Backend, password, salt, p.Iterations), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Argon2
// ──────────────────────────────────────────────────────────────────────────────

// Argon2iAlgorithm is the [Algorithm] form of [Argon2i].
type Argon2iAlgorithm struct{}

func (Argon2iAlgorithm) Name() AlgorithmName { return AlgArgon2i }
func (Argon2iAlgorithm) Family() Feature     { return FeatureArgon2 }

// Hash expects a base64 salt and uses the Argon2 fields of p.
func (Argon2iAlgorithm) Hash(password, salt string, p Params) (string, error) {
	return Argon2i(password, salt, p.Argon2())
}

// ──────────────────────────────────────────────────────────────────────────────
// Legacy
// ──────────────────────────────────────────────────────────────────────────────

// Sha1Algorithm is the [Algorithm] form of [Sha1].
type Sha1Algorithm struct{}

func (Sha1Algorithm) Name() AlgorithmName { return AlgSha1 }
func (Sha1Algorithm) Family() Feature     { return FeatureLegacy }

func (Sha1Algorithm) Hash(password, salt string, _ Params) (string, error) {
	return Sha1(password, salt), nil
}

// Md5Algorithm is the [Algorithm] form of [Md5].
type Md5Algorithm struct{}

func (Md5Algorithm) Name() AlgorithmName { return AlgMd5 }
func (Md5Algorithm) Family() Feature     { return FeatureLegacy }

func (Md5Algorithm) Hash(password, salt string, _ Params) (string, error) {
	return Md5(password, salt), nil
}

// UnixCryptAlgorithm is the [Algorithm] form of [UnixCrypt].
type UnixCryptAlgorithm struct{}

func (UnixCryptAlgorithm) Name() AlgorithmName { return AlgUnixCrypt }
func (UnixCryptAlgorithm) Family() Feature     { return FeatureLegacy }

func (UnixCryptAlgorithm) Hash(password, salt string, _ Params) (string, error) {
	return UnixCrypt(password, salt)
}

// ──────────────────────────────────────────────────────────────────────────────
// bcrypt prehash
// ──────────────────────────────────────────────────────────────────────────────

// Sha256PrehashAlgorithm is the [Algorithm] form of [Sha256Prehash].
// The salt and parameters are ignored.
type Sha256PrehashAlgorithm struct{}

func (Sha256PrehashAlgorithm) Name() AlgorithmName { return AlgSha256Prehash }
func (Sha256PrehashAlgorithm) Family() Feature     { return FeatureBcryptPrehash }

func (Sha256PrehashAlgorithm) Hash(password, _ string, _ Params) (string, error) {
	return Sha256Prehash(password), nil
}

// BuiltinAlgorithms returns one instance of every built-in algorithm, with
// the PBKDF2 variants bound to backend.
func BuiltinAlgorithms(backend Pbkdf2Backend) []Algorithm {
	return []Algorithm{
		Pbkdf2Sha256Algorithm{Backend: backend},
		Pbkdf2Sha1Algorithm{Backend: backend},
		Argon2iAlgorithm{},
		Sha1Algorithm{},
		Md5Algorithm{},
		UnixCryptAlgorithm{},
		Sha256PrehashAlgorithm{},
	}
}
