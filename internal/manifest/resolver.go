package manifest

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/taskdeck/taskdeck/pkg/fileutil"
)

// Source identifies which tier of the cache ladder produced a resolution.
type Source int

const (
	// SourceFresh means the cached manifest was within its TTL.
	SourceFresh Source = iota

	// SourceStale means an expired cached manifest was returned while the
	// cache was regenerated as a side effect.
	SourceStale

	// SourceGenerated means the manifest was generated directly because the
	// cache was missing, corrupt, or empty.
	SourceGenerated
)

// String returns a human-readable tier name.
func (s Source) String() string {
	switch s {
	case SourceFresh:
		return "fresh"
	case SourceStale:
		return "stale"
	case SourceGenerated:
		return "generated"
	default:
		return "unknown"
	}
}

// Result is a resolved manifest together with the tier that produced it.
type Result struct {
	Manifest *Manifest
	Source   Source
}

// Generator recomputes the manifest from its scan sources. It must not touch
// the cache; persistence is the resolver's job.
type Generator interface {
	Generate(ctx context.Context) (*Manifest, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context) (*Manifest, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context) (*Manifest, error) {
	return f(ctx)
}

// Resolver answers "give me the current manifest" from a disk cache with
// bounded staleness, falling back to generation when the cache is unusable.
//
// Cache read, parse, and write failures are never surfaced as resolution
// failures; they only move the resolution down the ladder. Only the
// generator's own failure can make a resolution fail.
type Resolver struct {
	cachePath string
	gen       Generator
	now       func() time.Time
	ttl       time.Duration
	logger    *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithClock sets the time source. Used by tests for deterministic freshness.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) {
		r.now = now
	}
}

// WithTTL sets the freshness window stamped on newly persisted manifests.
func WithTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithResolverLogger sets the logger used for cache diagnostics.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver that caches at cachePath and regenerates
// via gen. The cache path is explicit by design; the resolver never consults
// the environment.
func NewResolver(cachePath string, gen Generator, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		cachePath: cachePath,
		gen:       gen,
		now:       time.Now,
		ttl:       DefaultTTL,
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CachePath returns the location of the cache file.
func (r *Resolver) CachePath() string {
	return r.cachePath
}

// IsFresh reports whether the cached manifest is within its freshness window.
// It fails closed: any read or parse error, or a missing generatedAt, yields
// false.
func (r *Resolver) IsFresh() bool {
	cached, err := r.readCache()
	if err != nil {
		return false
	}
	return cached.Fresh(r.now())
}

// Resolve returns the current manifest using a three-tier ladder, evaluated
// in strict order:
//
//  1. Fresh cache: the cache parses and is within its TTL — return it as-is.
//  2. Stale-but-valid: the cache parses and has at least one entry but has
//     expired — regenerate the cache as a side effect, then return the stale
//     value.
//  3. Missing/corrupt/empty: generate directly, persist, and return.
//
// Every generation persists back to the cache file; persist failures are
// logged and swallowed so a resolution never fails just because the cache
// could not be written.
func (r *Resolver) Resolve(ctx context.Context) (*Result, error) {
	cached, err := r.readCache()
	if err == nil {
		if cached.Fresh(r.now()) {
			return &Result{Manifest: cached, Source: SourceFresh}, nil
		}
		if !cached.Empty() {
			// Refresh for the next caller, but serve the stale value now.
			if _, regenErr := r.Regenerate(ctx); regenErr != nil {
				r.logger.Warn("stale cache refresh failed",
					"path", r.cachePath,
					"error", regenErr)
			}
			return &Result{Manifest: cached, Source: SourceStale}, nil
		}
	} else {
		r.logger.Debug("manifest cache unusable, regenerating",
			"path", r.cachePath,
			"error", err)
	}

	generated, err := r.Regenerate(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{Manifest: generated, Source: SourceGenerated}, nil
}

// Regenerate unconditionally invokes the generator, persists the result to
// the cache file, and returns it. Persist failures are logged and swallowed.
func (r *Resolver) Regenerate(ctx context.Context) (*Manifest, error) {
	m, err := r.gen.Generate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "generating manifest")
	}

	m.Meta.GeneratedAt = r.now().UTC()
	if m.Meta.TTLSeconds <= 0 {
		m.Meta.TTLSeconds = int(r.ttl / time.Second)
	}

	if err := r.persist(m); err != nil {
		r.logger.Warn("persisting manifest cache failed",
			"path", r.cachePath,
			"error", err)
	}

	return m, nil
}

// Invalidate clears the cache file's contents, forcing the next resolution
// down the generation path. Errors are suppressed; invalidation never fails
// the caller.
func (r *Resolver) Invalidate() {
	if err := os.Truncate(r.cachePath, 0); err != nil && !os.IsNotExist(err) {
		r.logger.Warn("invalidating manifest cache failed",
			"path", r.cachePath,
			"error", err)
	}
}

// readCache loads and parses the cache file.
func (r *Resolver) readCache() (*Manifest, error) {
	data, err := fileutil.ReadFileWithLimit(r.cachePath)
	if err != nil {
		return nil, errors.Wrap(err, "reading manifest cache")
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing manifest cache")
	}

	return &m, nil
}

// persist writes the manifest to the cache file, creating the cache
// directory on demand.
func (r *Resolver) persist(m *Manifest) error {
	if err := os.MkdirAll(filepath.Dir(r.cachePath), 0o755); err != nil {
		return errors.Wrap(err, "creating cache directory")
	}
	return fileutil.AtomicWriteJSON(r.cachePath, m)
}
