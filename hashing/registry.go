package hashing

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Registry is a thread-safe named algorithm registry and dispatcher.
//
// [NewRegistry] registers the built-in algorithms of every family enabled in
// the [Config]; [Registry.Register] adds custom ones.  Dispatching methods
// look the algorithm up by name, compute the digest, log the call at debug
// level and notify the configured [Observer].
//
// # Thread safety
//
// All Registry methods are safe for concurrent use.  A [sync.RWMutex]
// serialises Register and SetDefault while lookups run concurrently.
// Digest computation happens outside the lock.
type Registry struct {
	mu       sync.RWMutex
	algs     map[AlgorithmName]Algorithm
	def      AlgorithmName
	features map[Feature]bool
	log      *zap.Logger
	obs      Observer
}

// NewRegistry builds a Registry from cfg.
//
// It returns [ErrFeatureDisabled] when cfg.Default names a built-in
// algorithm whose family is not enabled, and [ErrAlgorithmNotFound] when it
// names no built-in algorithm at all.
func NewRegistry(cfg Config) (*Registry, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		algs:     make(map[AlgorithmName]Algorithm),
		features: cfg.enabled(),
		log:      log.Named("hashing"),
		obs:      cfg.Observer,
	}

	var first AlgorithmName
	for _, alg := range BuiltinAlgorithms(cfg.Pbkdf2Backend) {
		if !r.features[alg.Family()] {
			if alg.Name() == cfg.Default {
				return nil, fmt.Errorf("%w: default %q needs feature %q",
					ErrFeatureDisabled, cfg.Default, alg.Family())
			}
			continue
		}
		r.algs[alg.Name()] = alg
		if first == "" {
			first = alg.Name()
		}
	}

	r.def = cfg.Default
	if r.def == "" {
		r.def = first
	} else if _, ok := r.algs[r.def]; !ok {
		return nil, fmt.Errorf("%w: default %q", ErrAlgorithmNotFound, r.def)
	}

	r.log.Debug("registry ready",
		zap.Strings("algorithms", algorithmNames(r.algs)),
		zap.String("default", string(r.def)),
		zap.Stringer("pbkdf2_backend", cfg.Pbkdf2Backend),
	)
	return r, nil
}

// Register adds or replaces an algorithm.  Algorithms whose family is not
// enabled are rejected with [ErrFeatureDisabled]; an empty family is always
// accepted.
func (r *Registry) Register(alg Algorithm) error {
	if alg == nil {
		return ErrNilAlgorithm
	}
	name := alg.Name()
	if name == "" {
		return ErrEmptyAlgorithmName
	}
	if fam := alg.Family(); fam != "" && !r.features[fam] {
		return fmt.Errorf("%w: %q needs feature %q", ErrFeatureDisabled, name, fam)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.algs[name] = alg
	return nil
}

// Algorithm returns the algorithm registered under name, or
// [ErrAlgorithmNotFound].
func (r *Registry) Algorithm(name AlgorithmName) (Algorithm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	alg, ok := r.algs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAlgorithmNotFound, name)
	}
	return alg, nil
}

// Has reports whether an algorithm is registered under name.
func (r *Registry) Has(name AlgorithmName) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.algs[name]
	return ok
}

// Names returns the registered algorithm names in sorted order.
func (r *Registry) Names() []AlgorithmName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]AlgorithmName, 0, len(r.algs))
	for name := range r.algs {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Enabled reports whether a feature is enabled.
func (r *Registry) Enabled(f Feature) bool {
	return r.features[f]
}

// SetDefault changes the algorithm used by [Registry.HashDefault].  The
// named algorithm must already be registered.
func (r *Registry) SetDefault(name AlgorithmName) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.algs[name]; !ok {
		return fmt.Errorf("%w: %q is not registered", ErrAlgorithmNotFound, name)
	}
	r.def = name
	return nil
}

// Default returns the name of the default algorithm.  It is empty when no
// algorithm is registered.
func (r *Registry) Default() AlgorithmName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def
}

// Hash computes the digest of password with the named algorithm.
func (r *Registry) Hash(name AlgorithmName, password, salt string, p Params) (string, error) {
	alg, err := r.Algorithm(name)
	if err != nil {
		return "", err
	}
	return r.run(alg, password, salt, p)
}

// HashDefault computes the digest of password with the default algorithm.
func (r *Registry) HashDefault(password, salt string, p Params) (string, error) {
	return r.Hash(r.Default(), password, salt, p)
}

// Verify recomputes the digest with the named algorithm and compares it with
// stored in constant time.
func (r *Registry) Verify(name AlgorithmName, password, salt string, p Params, stored string) (bool, error) {
	digest, err := r.Hash(name, password, salt, p)
	if err != nil {
		return false, err
	}
	return SafeEqual(digest, stored), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

func (r *Registry) run(alg Algorithm, password, salt string, p Params) (string, error) {
	start := time.Now()
	digest, err := alg.Hash(password, salt, p)
	elapsed := time.Since(start)

	if r.obs != nil {
		r.obs.ObserveHash(alg.Name(), elapsed, err)
	}
	if err != nil {
		r.log.Debug("hash failed",
			zap.String("algorithm", string(alg.Name())),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return "", err
	}
	r.log.Debug("hash computed",
		zap.String("algorithm", string(alg.Name())),
		zap.Duration("elapsed", elapsed),
	)
	return digest, nil
}

func algorithmNames(m map[AlgorithmName]Algorithm) []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, string(name))
	}
	sort.Strings(out)
	return out
}
