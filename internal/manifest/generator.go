package manifest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/taskdeck/taskdeck/pkg/frontmatter"
)

// skillFileName is the per-skill definition file inside each skill directory.
const skillFileName = "SKILL.md"

// skillMeta holds the frontmatter fields extracted from SKILL.md files.
type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ScanGenerator discovers skills by scanning a set of root directories for
// <root>/<skill-name>/SKILL.md entries and merging the results into a single
// manifest. It never touches the resolver's cache.
type ScanGenerator struct {
	dirs   []string
	logger *slog.Logger
}

// NewScanGenerator creates a generator scanning the given root directories.
// Missing roots are skipped silently; a root that exists but cannot be read
// is reported.
func NewScanGenerator(dirs []string, logger *slog.Logger) *ScanGenerator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}
	return &ScanGenerator{dirs: dirs, logger: logger}
}

// Generate scans all roots and assembles the manifest. Entries are sorted by
// name, then source, so repeated scans of unchanged directories produce
// identical manifests.
func (g *ScanGenerator) Generate(ctx context.Context) (*Manifest, error) {
	var skills []Skill

	for _, dir := range g.dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found, err := g.scanRoot(dir)
		if err != nil {
			return nil, errors.Wrapf(err, "scanning %s", dir)
		}
		skills = append(skills, found...)
	}

	slices.SortFunc(skills, func(a, b Skill) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Source, b.Source)
	})

	return &Manifest{Skills: skills}, nil
}

// scanRoot scans a single root directory for skill subdirectories.
func (g *ScanGenerator) scanRoot(dir string) ([]Skill, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		if os.IsPermission(err) {
			g.logger.Warn("permission denied reading skills directory",
				"path", dir,
				"error", err)
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading skills directory")
	}

	skills := make([]Skill, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		skillDir := filepath.Join(dir, entry.Name())
		skillPath := filepath.Join(skillDir, skillFileName)

		file, err := os.Open(skillPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			g.logger.Warn("failed to open skill file",
				"path", skillPath,
				"error", err)
			continue
		}

		var meta skillMeta
		if err := frontmatter.ParseHeader(file, &meta); err != nil {
			file.Close()
			g.logger.Warn("failed to parse skill frontmatter",
				"path", skillPath,
				"error", err)
			continue
		}
		file.Close()

		// Use directory name if name not in frontmatter
		name := meta.Name
		if name == "" {
			name = entry.Name()
		}

		skills = append(skills, Skill{
			Name:        name,
			Description: meta.Description,
			Path:        skillDir,
			Source:      dir,
		})
	}

	return skills, nil
}
