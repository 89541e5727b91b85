package backup

import (
	"sync"

	"github.com/taskdeck/taskdeck/internal/errors"
)

// backupOnce tracks per-source backup state within a session.
// This prevents redundant backups when multiple mutations occur.
var (
	backupOnce  = make(map[string]*sync.Once)
	backupMutex sync.Mutex
)

// EnsureBackedUp creates a backup of sourcePath at most once per process,
// regardless of how many mutations follow. It is safe for concurrent calls.
//
// Returns nil if a backup was just created or one was already created in
// this session. On failure the per-source state is reset so the caller can
// retry.
func EnsureBackedUp(m *Manager, sourcePath string) error {
	backupMutex.Lock()
	once, exists := backupOnce[sourcePath]
	if !exists {
		once = &sync.Once{}
		backupOnce[sourcePath] = once
	}
	backupMutex.Unlock()

	var backupErr error
	once.Do(func() {
		_, backupErr = m.Create(sourcePath)
		if backupErr != nil {
			backupMutex.Lock()
			delete(backupOnce, sourcePath)
			backupMutex.Unlock()
		}
	})

	if backupErr != nil {
		return errors.Wrapf(backupErr, "creating backup for %s", sourcePath)
	}

	return nil
}

// ResetBackupState clears the session backup state for all sources.
// This is primarily useful for testing to reset state between tests.
func ResetBackupState() {
	backupMutex.Lock()
	defer backupMutex.Unlock()
	backupOnce = make(map[string]*sync.Once)
}
