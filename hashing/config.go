package hashing

import (
	"time"

	"go.uber.org/zap"
)

// Observer receives one callback per digest computed through a [Registry].
// Implementations must be safe for concurrent use.  See package metrics for
// a Prometheus implementation.
type Observer interface {
	ObserveHash(alg AlgorithmName, elapsed time.Duration, err error)
}

// Config configures a [Registry].
type Config struct {
	// Features lists the algorithm families to register.  Nil enables all
	// of them; an empty non-nil slice enables none.
	Features []Feature

	// Pbkdf2Backend is bound to the built-in PBKDF2 algorithms.  The zero
	// value is [BackendReference] whatever the build tags; [DefaultConfig]
	// sets [DefaultPbkdf2Backend].
	Pbkdf2Backend Pbkdf2Backend

	// Default is the algorithm used by [Registry.HashDefault].  Empty picks
	// the first registered algorithm in [BuiltinAlgorithms] order.
	Default AlgorithmName

	// Logger receives a debug entry per computation.  Nil disables logging.
	// Passwords, salts and digests are never logged.
	Logger *zap.Logger

	// Observer, when set, is notified of every computation.
	Observer Observer
}

// DefaultConfig enables every family with the default PBKDF2 backend and
// PBKDF2-HMAC-SHA256 as the default algorithm.
func DefaultConfig() Config {
	return Config{
		Features:      AllFeatures(),
		Pbkdf2Backend: DefaultPbkdf2Backend,
		Default:       AlgPbkdf2Sha256,
	}
}

func (c Config) enabled() map[Feature]bool {
	features := c.Features
	if features == nil {
		features = AllFeatures()
	}
	out := make(map[Feature]bool, len(features))
	for _, f := range features {
		out[f] = true
	}
	return out
}
