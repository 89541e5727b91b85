package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/taskdeck/taskdeck/internal/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "taskdeck"

// TasksFileName is the file name of the durable task store.
const TasksFileName = "todo.json"

// ManifestFileName is the file name of the cached skills manifest.
const ManifestFileName = "skills-manifest.json"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// This is a thin wrapper around os.UserHomeDir for consistency.
// Note: It returns an empty string on error for backward compatibility.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// CacheHome returns the XDG cache home directory.
// On Linux: ~/.cache
// On macOS: ~/Library/Caches
// On Windows: %LOCALAPPDATA%\cache
func CacheHome() string {
	return xdg.CacheHome
}

// ConfigDir returns the taskdeck configuration directory.
// Returns: <ConfigHome>/taskdeck/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// DataDir returns the taskdeck data directory holding the task store.
// Returns: <DataHome>/taskdeck/
func DataDir() string {
	return filepath.Join(DataHome(), AppName)
}

// CacheDir returns the taskdeck cache directory.
// Returns: <CacheHome>/taskdeck/
func CacheDir() string {
	return filepath.Join(CacheHome(), AppName)
}

// TasksFile returns the default path to the durable task store.
// Returns: <DataHome>/taskdeck/todo.json
func TasksFile() string {
	return filepath.Join(DataDir(), TasksFileName)
}

// BackupDir returns the default directory for rotated backups.
// Returns: <DataHome>/taskdeck/backups/
func BackupDir() string {
	return filepath.Join(DataDir(), "backups")
}

// ManifestCachePath returns the default path of the cached skills manifest.
// Returns: <CacheHome>/taskdeck/skills-manifest.json
func ManifestCachePath() string {
	return filepath.Join(CacheDir(), ManifestFileName)
}

// SkillDirs returns the default directories scanned for skills.
// Each directory is expected to contain <skill-name>/SKILL.md entries.
func SkillDirs() []string {
	home := Home()
	if home == "" {
		return nil
	}
	return []string{
		filepath.Join(home, ".claude", "skills"),
		filepath.Join(DataDir(), "skills"),
	}
}
