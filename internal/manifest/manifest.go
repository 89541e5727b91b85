package manifest

import "time"

// DefaultTTL is the freshness window applied when a cached manifest does not
// carry its own ttlSeconds.
const DefaultTTL = 300 * time.Second

// Meta is the metadata envelope stored alongside the skill entries.
type Meta struct {
	// GeneratedAt is when the manifest was generated.
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt" toml:"generatedAt"`

	// TTLSeconds is the freshness window in seconds. Zero means DefaultTTL.
	TTLSeconds int `json:"ttlSeconds" yaml:"ttlSeconds" toml:"ttlSeconds"`
}

// Skill is a single discovered skill entry.
type Skill struct {
	// Name is the unique skill name from frontmatter, or the directory name.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Description is a short summary from frontmatter.
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`

	// Path is the absolute path of the skill directory.
	Path string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`

	// Source is the scan root the skill was discovered under.
	Source string `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
}

// Manifest is the derived artifact summarizing all discovered skills.
// It is expensive to recompute, so resolved copies are cached on disk.
type Manifest struct {
	Meta   Meta    `json:"_meta" yaml:"_meta" toml:"_meta"`
	Skills []Skill `json:"skills" yaml:"skills" toml:"skills"`
}

// TTL returns the manifest's freshness window, falling back to DefaultTTL
// when the envelope omits or zeroes ttlSeconds.
func (m *Manifest) TTL() time.Duration {
	if m.Meta.TTLSeconds > 0 {
		return time.Duration(m.Meta.TTLSeconds) * time.Second
	}
	return DefaultTTL
}

// Age returns how long ago the manifest was generated.
func (m *Manifest) Age(now time.Time) time.Duration {
	return now.Sub(m.Meta.GeneratedAt)
}

// Fresh reports whether the manifest is within its freshness window.
// A manifest without a generatedAt timestamp is never fresh.
func (m *Manifest) Fresh(now time.Time) bool {
	if m.Meta.GeneratedAt.IsZero() {
		return false
	}
	return m.Age(now) < m.TTL()
}

// Empty reports whether the manifest has no skill entries.
func (m *Manifest) Empty() bool {
	return len(m.Skills) == 0
}
