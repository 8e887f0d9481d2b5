// Package metrics exports digest computations performed through a
// hashing.Registry as Prometheus metrics.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hasbyte1/go-pwdigest/hashing"
)

// Outcome label values.
const (
	OutcomeOK                 = "ok"
	OutcomeInvalidSalt        = "invalid_salt"
	OutcomeInvalidParameter   = "invalid_parameter"
	OutcomeUnsupportedVersion = "unsupported_version"
	OutcomeNativeFailure      = "native_failure"
	OutcomeError              = "error"
)

// Prometheus is a hashing.Observer backed by Prometheus collectors.
type Prometheus struct {
	HashCount    *prometheus.CounterVec
	HashDuration *prometheus.HistogramVec
}

var _ hashing.Observer = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		HashCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pwdigest_hash_total",
				Help: "Number of digest computations",
			},
			[]string{"algorithm", "outcome"},
		),
		HashDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pwdigest_hash_duration_seconds",
				Help:    "Duration of digest computations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"algorithm"},
		),
	}
	if reg == nil {
		return p, nil
	}
	for _, c := range []prometheus.Collector{p.HashCount, p.HashDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ObserveHash implements hashing.Observer.
func (p *Prometheus) ObserveHash(alg hashing.AlgorithmName, elapsed time.Duration, err error) {
	p.HashCount.WithLabelValues(string(alg), Outcome(err)).Inc()
	p.HashDuration.WithLabelValues(string(alg)).Observe(elapsed.Seconds())
}

// Outcome maps a computation error to its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, hashing.ErrInvalidSalt):
		return OutcomeInvalidSalt
	case errors.Is(err, hashing.ErrInvalidParameter):
		return OutcomeInvalidParameter
	case errors.Is(err, hashing.ErrUnsupportedVersion):
		return OutcomeUnsupportedVersion
	case errors.Is(err, hashing.ErrNativeFailure):
		return OutcomeNativeFailure
	default:
		return OutcomeError
	}
}
