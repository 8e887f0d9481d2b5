// Package config loads the pwdigest command configuration from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-pwdigest/hashing"
)

// File is the on-disk configuration.
type File struct {
	Algorithm     string   `yaml:"algorithm" validate:"required,oneof=pbkdf2_sha256 pbkdf2_sha1 argon2i sha1 md5 unix_crypt sha256_prehash"`
	Features      []string `yaml:"features" validate:"omitempty,dive,oneof=pbkdf2 argon2 legacy bcrypt-prehash"`
	Pbkdf2Backend string   `yaml:"pbkdf2_backend" validate:"omitempty,oneof=reference accelerated"`
	Iterations    uint32   `yaml:"iterations"`
	Argon2        Argon2   `yaml:"argon2"`
}

// Argon2 holds the Argon2 section of [File].
type Argon2 struct {
	TimeCost    uint32 `yaml:"time_cost"`
	MemoryCost  uint32 `yaml:"memory_cost"`
	Parallelism uint32 `yaml:"parallelism" validate:"max=255"`
	Version     uint32 `yaml:"version"`
	HashLength  uint32 `yaml:"hash_length"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() *File {
	a := hashing.DefaultArgon2Params()
	return &File{
		Algorithm:  string(hashing.AlgPbkdf2Sha256),
		Iterations: 150000,
		Argon2: Argon2{
			TimeCost:    a.TimeCost,
			MemoryCost:  a.MemoryCost,
			Parallelism: a.Parallelism,
			Version:     a.Version,
			HashLength:  a.HashLength,
		},
	}
}

// Load reads and validates the file at path.  Keys missing from the file
// keep their [Default] values.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the struct tags.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// HashingConfig converts f into a [hashing.Config].
func (f *File) HashingConfig() (hashing.Config, error) {
	backend, err := hashing.ParsePbkdf2Backend(f.Pbkdf2Backend)
	if err != nil {
		return hashing.Config{}, err
	}
	var features []hashing.Feature
	if len(f.Features) > 0 {
		if features, err = hashing.ParseFeatures(f.Features); err != nil {
			return hashing.Config{}, err
		}
	}
	return hashing.Config{
		Features:      features,
		Pbkdf2Backend: backend,
		Default:       hashing.AlgorithmName(f.Algorithm),
	}, nil
}

// Params returns the cost parameters in f.
func (f *File) Params() hashing.Params {
	return hashing.Params{
		Iterations:  f.Iterations,
		TimeCost:    f.Argon2.TimeCost,
		MemoryCost:  f.Argon2.MemoryCost,
		Parallelism: f.Argon2.Parallelism,
		Version:     f.Argon2.Version,
		HashLength:  f.Argon2.HashLength,
	}
}
