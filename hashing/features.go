package hashing

import (
	"fmt"
	"strings"
)

// Feature names a family of algorithms that can be enabled independently.
type Feature string

const (
	// FeaturePbkdf2 enables [AlgPbkdf2Sha256] and [AlgPbkdf2Sha1].
	FeaturePbkdf2 Feature = "pbkdf2"
	// FeatureArgon2 enables [AlgArgon2i].
	FeatureArgon2 Feature = "argon2"
	// FeatureLegacy enables [AlgSha1], [AlgMd5] and [AlgUnixCrypt].
	FeatureLegacy Feature = "legacy"
	// FeatureBcryptPrehash enables [AlgSha256Prehash].
	FeatureBcryptPrehash Feature = "bcrypt-prehash"
)

// AllFeatures returns every feature in a stable order.
func AllFeatures() []Feature {
	return []Feature{FeaturePbkdf2, FeatureArgon2, FeatureLegacy, FeatureBcryptPrehash}
}

// ParseFeature converts a feature name, case-insensitively.
func ParseFeature(s string) (Feature, error) {
	f := Feature(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllFeatures() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFeature, s)
}

// ParseFeatures parses a list of feature names.
func ParseFeatures(names []string) ([]Feature, error) {
	out := make([]Feature, 0, len(names))
	for _, n := range names {
		f, err := ParseFeature(n)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
