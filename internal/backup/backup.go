package backup

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/cockroachdb/errors"
)

// Manager maintains a bounded, ordered history of a source file's past
// contents in a backup directory. Copies are named <base>.<N> where .1 is
// always the most recent; higher N means older.
type Manager struct {
	dir        string
	maxBackups int
	fs         FS
	logger     *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithDir sets the backup directory.
func WithDir(dir string) Option {
	return func(m *Manager) {
		m.dir = dir
	}
}

// WithMaxBackups sets the retention limit. Zero means unlimited.
func WithMaxBackups(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxBackups = n
		}
	}
}

// WithFS sets the file system implementation. Used by tests to exercise
// rotation without disk I/O.
func WithFS(fsys FS) Option {
	return func(m *Manager) {
		m.fs = fsys
	}
}

// WithLogger sets the logger used for rotation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a backup Manager for the given directory.
// Without options it retains an unlimited number of backups and uses the
// OS file system.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		fs: osFS{},
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create makes a new point-in-time copy of sourcePath. Existing numbered
// backups shift up by one (highest first, so no copy is overwritten before
// it has moved), copies beyond the retention limit are discarded, and the
// source contents land in a fresh <base>.1.
//
// Returns the absolute path of the new .1 file. Fails with ErrSourceNotFound
// when the source does not exist. The backup directory is created on demand.
//
// A failure partway through shifting can leave the set in an intermediate
// state; this is a documented limitation, not a transactional guarantee.
func (m *Manager) Create(sourcePath string) (string, error) {
	if _, err := m.fs.Stat(sourcePath); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrSourceNotFound, "%s", sourcePath)
		}
		return "", errors.Wrapf(err, "stat %s", sourcePath)
	}

	if err := m.fs.MkdirAll(m.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating backup directory")
	}

	baseName := filepath.Base(sourcePath)
	existing, err := m.backupNumbers(baseName)
	if err != nil {
		return "", err
	}

	for _, step := range rotationPlan(m.dir, baseName, existing, m.maxBackups) {
		if step.discard() {
			if err := m.fs.Remove(step.From); err != nil {
				return "", errors.Wrapf(err, "discarding %s", step.From)
			}
			m.logger.Debug("discarded backup beyond retention limit",
				"path", step.From,
				"max_backups", m.maxBackups)
			continue
		}
		if err := m.fs.Rename(step.From, step.To); err != nil {
			return "", errors.Wrapf(err, "shifting %s", step.From)
		}
	}

	newPath := filepath.Join(m.dir, backupName(baseName, 1))
	if err := m.fs.Copy(sourcePath, newPath); err != nil {
		return "", errors.Wrapf(err, "copying %s", sourcePath)
	}

	abs, err := filepath.Abs(newPath)
	if err != nil {
		return "", errors.Wrap(err, "resolving backup path")
	}

	m.logger.Debug("created backup",
		"source", sourcePath,
		"backup", abs,
		"previous", len(existing))

	return abs, nil
}

// List returns the absolute paths of all numbered backups for baseName,
// sorted ascending by N (most recent first). Files in the backup directory
// that do not match the <base>.<N> pattern are ignored. A missing backup
// directory yields an empty slice, not an error.
func (m *Manager) List(baseName string) ([]string, error) {
	numbers, err := m.backupNumbers(baseName)
	if err != nil {
		return nil, err
	}
	slices.Sort(numbers)

	paths := make([]string, 0, len(numbers))
	for _, n := range numbers {
		abs, err := filepath.Abs(filepath.Join(m.dir, backupName(baseName, n)))
		if err != nil {
			return nil, errors.Wrap(err, "resolving backup path")
		}
		paths = append(paths, abs)
	}
	return paths, nil
}

// Restore copies the most recent backup (lowest N) for baseName to
// targetPath, overwriting any existing content there. Returns the path of
// the backup used so callers can report it. Fails with ErrNoBackups when
// no numbered backups exist.
func (m *Manager) Restore(baseName, targetPath string) (string, error) {
	backups, err := m.List(baseName)
	if err != nil {
		return "", err
	}
	if len(backups) == 0 {
		return "", errors.Wrapf(ErrNoBackups, "%s in %s", baseName, m.dir)
	}

	newest := backups[0]
	if err := m.fs.Copy(newest, targetPath); err != nil {
		return "", errors.Wrapf(err, "restoring %s", targetPath)
	}

	m.logger.Info("restored from backup",
		"backup", newest,
		"target", targetPath)

	return newest, nil
}

// backupNumbers returns the N values of existing backups for baseName,
// in directory order. A missing directory yields an empty slice.
func (m *Manager) backupNumbers(baseName string) ([]int, error) {
	entries, err := m.fs.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	var numbers []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if n, ok := parseBackupNumber(entry.Name(), baseName); ok {
			numbers = append(numbers, n)
		}
	}
	return numbers, nil
}
