package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrNegativeMaxBackups indicates a negative backup retention limit.
	ErrNegativeMaxBackups = errors.New("backup.max_backups must be >= 0")

	// ErrNegativeTTL indicates a negative cache TTL.
	ErrNegativeTTL = errors.New("cache.ttl_seconds must be >= 0")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.Backup.MaxBackups < 0 {
		errs = append(errs, ErrNegativeMaxBackups)
	}

	if cfg.Cache.TTLSeconds < 0 {
		errs = append(errs, ErrNegativeTTL)
	}

	pathFields := []struct {
		field string
		path  string
	}{
		{"tasks.file", cfg.Tasks.File},
		{"backup.dir", cfg.Backup.Dir},
		{"cache.file", cfg.Cache.File},
	}
	for _, pf := range pathFields {
		if pf.path == "" {
			continue
		}
		if err := validatePath(pf.path); err != nil {
			errs = append(errs, &PathError{Field: pf.field, Path: pf.path, Err: err})
		}
	}

	for _, dir := range cfg.Skills.Dirs {
		if err := validatePath(dir); err != nil {
			errs = append(errs, &PathError{Field: "skills.dirs", Path: dir, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Null bytes are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
