package hashing_test

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/argon2"

	"github.com/hasbyte1/go-pwdigest/hashing"
)

// testSalt is base64("saltsalt").
const testSalt = "c2FsdHNhbHQ="

// fastArgon2Params returns minimal Argon2 parameters for unit tests.
// These are intentionally weak; do NOT use in production.
func fastArgon2Params() hashing.Argon2Params {
	return hashing.Argon2Params{
		TimeCost:    1,
		MemoryCost:  8 * 2, // 8 × Parallelism minimum
		Parallelism: 2,
		Version:     hashing.Argon2Version,
		HashLength:  16,
	}
}

func mustArgon2i(t *testing.T, password, salt string, p hashing.Argon2Params) string {
	t.Helper()
	digest, err := hashing.Argon2i(password, salt, p)
	if err != nil {
		t.Fatalf("Argon2i: %v", err)
	}
	return digest
}

// ──────────────────────────────────────────────────────────────────────────────
// Output
// ──────────────────────────────────────────────────────────────────────────────

func TestArgon2i_Deterministic(t *testing.T) {
	d1 := mustArgon2i(t, "password", testSalt, fastArgon2Params())
	d2 := mustArgon2i(t, "password", testSalt, fastArgon2Params())
	if d1 != d2 {
		t.Errorf("same inputs gave %q and %q", d1, d2)
	}
}

func TestArgon2i_MatchesDirectDerivation(t *testing.T) {
	p := fastArgon2Params()
	want := base64.RawURLEncoding.EncodeToString(
		argon2.Key([]byte("password"), []byte("saltsalt"), p.TimeCost, p.MemoryCost, uint8(p.Parallelism), p.HashLength),
	)
	if got := mustArgon2i(t, "password", testSalt, p); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Argon2i v0x13 vectors from the reference implementation's test suite,
// password "password", salt "somesalt".
func TestArgon2i_ReferenceVectors(t *testing.T) {
	if testing.Short() {
		t.Skip("64 MiB derivations skipped in -short mode")
	}
	tests := []struct {
		name string
		p    hashing.Argon2Params
		want string
	}{
		{
			"t=2 m=64MiB p=1",
			hashing.Argon2Params{TimeCost: 2, MemoryCost: 1 << 16, Parallelism: 1, Version: 0x13, HashLength: 32},
			"c1628832147d9720c5bd1cfd61367078729f6dfb6f8fea9ff98158e0d7816ed0",
		},
		{
			"t=2 m=64MiB p=4 len=24",
			hashing.Argon2Params{TimeCost: 2, MemoryCost: 1 << 16, Parallelism: 4, Version: 0x13, HashLength: 24},
			"45d7ac72e76f242b20b77b9bf9bf9d5915894e669a24e6c6",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest := mustArgon2i(t, "password", "c29tZXNhbHQ=", tt.p)
			raw, err := base64.RawURLEncoding.DecodeString(digest)
			if err != nil {
				t.Fatalf("decode %q: %v", digest, err)
			}
			if got := hex.EncodeToString(raw); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestArgon2i_UnpaddedSalt(t *testing.T) {
	p := fastArgon2Params()
	tests := []struct {
		name     string
		unpadded string
		padded   string
	}{
		{"two pad chars", "c2FsdA", "c2FsdA=="},
		{"one pad char", "c29tZXNhbHQ", "c29tZXNhbHQ="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustArgon2i(t, "password", tt.unpadded, p)
			if want := mustArgon2i(t, "password", tt.padded, p); got != want {
				t.Errorf("unpadded salt gave %q, padded gave %q", got, want)
			}
		})
	}
}

func TestArgon2i_UnpaddedSaltVector(t *testing.T) {
	if testing.Short() {
		t.Skip("64 MiB derivation skipped in -short mode")
	}
	p := hashing.Argon2Params{TimeCost: 2, MemoryCost: 1 << 16, Parallelism: 4, Version: 0x13, HashLength: 32}
	if got := mustArgon2i(t, "password", "c29tZXNhbHQ", p); got != "IMit9qkFULCMA_ViizL57cnTLOa5DiVM9eMwpAvPwr4" {
		t.Errorf("got %q", got)
	}
}

func TestArgon2i_URLSafeUnpadded(t *testing.T) {
	p := fastArgon2Params()
	for _, n := range []uint32{1, 16, 31, 32, 64} {
		p.HashLength = n
		digest := mustArgon2i(t, "password", testSalt, p)
		if strings.ContainsAny(digest, "+/=") {
			t.Errorf("hash_length=%d: %q is not unpadded URL-safe base64", n, digest)
		}
		raw, err := base64.RawURLEncoding.DecodeString(digest)
		if err != nil {
			t.Fatalf("hash_length=%d: decode: %v", n, err)
		}
		if uint32(len(raw)) != n {
			t.Errorf("decoded length = %d, want %d", len(raw), n)
		}
	}
}

func TestArgon2i_InputsChangeOutput(t *testing.T) {
	base := mustArgon2i(t, "password", testSalt, fastArgon2Params())

	if d := mustArgon2i(t, "password!", testSalt, fastArgon2Params()); d == base {
		t.Error("digest should differ when password differs")
	}
	if d := mustArgon2i(t, "password", "YW5vdGhlcnNhbHQ=", fastArgon2Params()); d == base {
		t.Error("digest should differ when salt differs")
	}
	p := fastArgon2Params()
	p.TimeCost = 2
	if d := mustArgon2i(t, "password", testSalt, p); d == base {
		t.Error("digest should differ when time cost differs")
	}
}

func TestArgon2i_EmptyPassword(t *testing.T) {
	if d := mustArgon2i(t, "", testSalt, fastArgon2Params()); d == "" {
		t.Error("empty password produced empty digest")
	}
}

func TestArgon2i_MemoryBelowMinimumIsAccepted(t *testing.T) {
	p := fastArgon2Params()
	p.MemoryCost = 0
	if _, err := hashing.Argon2i("password", testSalt, p); err != nil {
		t.Errorf("memory cost is not validated, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Errors
// ──────────────────────────────────────────────────────────────────────────────

func TestArgon2i_InvalidSalt(t *testing.T) {
	tests := []struct {
		name string
		salt string
	}{
		{"not base64", "not base64!"},
		{"dangling character", "c2Fsd"},
		{"partial padding", "c2FsdA="},
		{"url alphabet", "-_-_"},
		{"stray padding", "YWJj=A=="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := hashing.Argon2i("password", tt.salt, fastArgon2Params())
			if !errors.Is(err, hashing.ErrInvalidSalt) {
				t.Fatalf("expected ErrInvalidSalt, got %v", err)
			}
			if digest != "" {
				t.Errorf("digest = %q, want empty", digest)
			}
			var he *hashing.HashError
			if !errors.As(err, &he) || he.Algorithm != hashing.AlgArgon2i {
				t.Errorf("expected *HashError for argon2i, got %#v", err)
			}
		})
	}
}

func TestArgon2i_SaltCheckedBeforeParameters(t *testing.T) {
	_, err := hashing.Argon2i("password", "%%%", hashing.Argon2Params{})
	if !errors.Is(err, hashing.ErrInvalidSalt) {
		t.Errorf("expected ErrInvalidSalt, got %v", err)
	}
}

func TestArgon2i_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*hashing.Argon2Params)
		want   error
	}{
		{"time=0", func(p *hashing.Argon2Params) { p.TimeCost = 0 }, hashing.ErrInvalidParameter},
		{"parallelism=0", func(p *hashing.Argon2Params) { p.Parallelism = 0 }, hashing.ErrInvalidParameter},
		{"parallelism=256", func(p *hashing.Argon2Params) { p.Parallelism = 256 }, hashing.ErrInvalidParameter},
		{"hash_length=0", func(p *hashing.Argon2Params) { p.HashLength = 0 }, hashing.ErrInvalidParameter},
		{"version=0x10", func(p *hashing.Argon2Params) { p.Version = 0x10 }, hashing.ErrUnsupportedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fastArgon2Params()
			tt.modify(&p)
			_, err := hashing.Argon2i("password", testSalt, p)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDefaultArgon2Params(t *testing.T) {
	p := hashing.DefaultArgon2Params()
	if p.Version != hashing.Argon2Version {
		t.Errorf("Version = %#x, want %#x", p.Version, hashing.Argon2Version)
	}
	if _, err := hashing.Argon2i("pw", testSalt, p); err != nil {
		t.Errorf("default params rejected: %v", err)
	}
}
