// Package store persists the durable task list as a JSON file on disk.
//
// The store is the mutable state the backup manager versions: every mutating
// operation triggers a once-per-session backup of the previous contents
// before the first write, and all writes are atomic (temp file + rename).
// Unlike the manifest cache, the store fails loud: a corrupt task file is an
// error the user must resolve (typically via `taskdeck backup restore`), not
// a condition to silently paper over.
package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/taskdeck/taskdeck/internal/backup"
	"github.com/taskdeck/taskdeck/pkg/fileutil"
)

// Sentinel errors for store operations.
var (
	// ErrTaskNotFound indicates no task exists with the requested ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrCorruptStore indicates the task file exists but cannot be parsed.
	ErrCorruptStore = errors.New("task store corrupted")
)

// Store reads and writes the task list at a fixed path.
type Store struct {
	path    string
	backups *backup.Manager
	logger  *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithBackups enables pre-mutation backups through the given manager.
func WithBackups(m *backup.Manager) StoreOption {
	return func(s *Store) {
		s.backups = m
	}
}

// WithStoreLogger sets the logger used for store diagnostics.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store for the task file at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path: path,
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the location of the task file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task list. A missing file yields an empty list, not an
// error. A file that exists but cannot be parsed fails with ErrCorruptStore.
func (s *Store) Load() (*List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewList(), nil
		}
		return nil, errors.Wrap(err, "reading task store")
	}

	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrapf(ErrCorruptStore, "%s: %v", s.path, err)
	}
	if list.Version == 0 {
		list.Version = 1
	}
	if list.Tasks == nil {
		list.Tasks = []Task{}
	}

	return &list, nil
}

// Save writes the task list atomically, backing up the previous contents
// first (once per session) when a backup manager is configured.
func (s *Store) Save(list *List) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "creating store directory")
	}

	if s.backups != nil {
		if _, err := os.Stat(s.path); err == nil {
			if err := backup.EnsureBackedUp(s.backups, s.path); err != nil {
				return err
			}
		}
	}

	if err := fileutil.AtomicWriteJSON(s.path, list); err != nil {
		return errors.Wrap(err, "writing task store")
	}

	return nil
}

// Add appends a new open task and persists the list.
func (s *Store) Add(title, priority string) (Task, error) {
	list, err := s.Load()
	if err != nil {
		return Task{}, err
	}

	task := NewTask(title, priority)
	list.Tasks = append(list.Tasks, task)

	if err := s.Save(list); err != nil {
		return Task{}, err
	}

	s.logger.Debug("added task", "id", task.ID, "title", task.Title)
	return task, nil
}

// Complete marks the task with the given ID as done and persists the list.
func (s *Store) Complete(id string) (Task, error) {
	return s.update(id, func(t *Task) {
		t.Status = StatusDone
	})
}

// Delete removes the task with the given ID and persists the list.
func (s *Store) Delete(id string) error {
	list, err := s.Load()
	if err != nil {
		return err
	}

	if !list.Remove(id) {
		return errors.Wrapf(ErrTaskNotFound, "%s", id)
	}

	return s.Save(list)
}

// update applies fn to the task with the given ID, stamps UpdatedAt, and
// persists the list.
func (s *Store) update(id string, fn func(*Task)) (Task, error) {
	list, err := s.Load()
	if err != nil {
		return Task{}, err
	}

	task := list.Find(id)
	if task == nil {
		return Task{}, errors.Wrapf(ErrTaskNotFound, "%s", id)
	}

	fn(task)
	task.UpdatedAt = nowUTC()

	if err := s.Save(list); err != nil {
		return Task{}, err
	}

	return *task, nil
}
