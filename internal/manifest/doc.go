// Package manifest resolves the skills manifest from a volatile disk cache
// with staleness tolerance and multi-tier fallback.
//
// The manifest is a derived JSON artifact assembled by scanning skill
// directories, which is expensive relative to a single cache read. The
// [Resolver] keeps a cached copy at an explicit path and answers every
// resolution through a three-tier ladder:
//
//	fresh cache      age < ttl          return cached value
//	stale-but-valid  expired, ≥1 entry  return stale value, regenerate cache
//	missing/corrupt  anything else      generate directly, persist, return
//
// The cache file carries its own freshness metadata:
//
//	{
//	  "_meta": {"generatedAt": "2026-03-01T09:30:00Z", "ttlSeconds": 300},
//	  "skills": [{"name": "git-helper", "description": "..."}]
//	}
//
// # Fail Soft
//
// Cache read, parse, and write failures never fail a resolution; they only
// move it down the ladder. Only the [Generator] itself can make
// [Resolver.Resolve] return an error. The [Result] type reports which tier
// served each resolution so callers keep observability into the fallback
// behavior without changing the fail-soft contract.
//
// # Concurrency
//
// The resolver is designed for short-lived single-process CLI invocations.
// Two processes racing on the same cache file can lose an update; callers
// needing strict coordination must serialize externally.
package manifest
