package backup

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for backup operations.
var (
	// ErrSourceNotFound indicates the source file to back up does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrNoBackups indicates no numbered backups exist for the requested base name.
	ErrNoBackups = errors.New("no backups available")
)

// FS abstracts the file system operations the rotation manager performs.
// The production implementation is the OS file system; tests may inject a
// fake to exercise rotation plans without disk I/O.
type FS interface {
	// Stat returns file info for the named file.
	Stat(name string) (fs.FileInfo, error)

	// MkdirAll creates a directory and any necessary parents.
	MkdirAll(path string, perm os.FileMode) error

	// ReadDir reads the named directory and returns its entries.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Rename moves a file from oldpath to newpath.
	Rename(oldpath, newpath string) error

	// Remove deletes the named file.
	Remove(name string) error

	// Copy copies the contents of src to dst, truncating dst if it exists.
	Copy(src, dst string) error
}

// osFS implements FS against the real file system.
type osFS struct{}

func (osFS) Stat(name string) (fs.FileInfo, error)           { return os.Stat(name) }
func (osFS) MkdirAll(path string, perm os.FileMode) error    { return os.MkdirAll(path, perm) }
func (osFS) ReadDir(name string) ([]fs.DirEntry, error)      { return os.ReadDir(name) }
func (osFS) Rename(oldpath, newpath string) error            { return os.Rename(oldpath, newpath) }
func (osFS) Remove(name string) error                        { return os.Remove(name) }

func (osFS) Copy(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "opening source file")
	}
	defer srcFile.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrap(err, "creating destination directory")
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "creating destination file")
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Wrap(err, "copying file")
	}

	if err := dstFile.Close(); err != nil {
		return errors.Wrap(err, "closing destination file")
	}

	return nil
}
