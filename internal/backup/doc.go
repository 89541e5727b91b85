// Package backup maintains numbered point-in-time copies of the task store.
//
// Each source file gets its own backup set inside a backup directory:
//
//	backups/
//	├── todo.json.1    most recent
//	├── todo.json.2
//	└── todo.json.3    oldest
//
// The N values form a contiguous run starting at 1. On every [Manager.Create]
// the existing copies shift up by one (highest N first), copies beyond the
// retention limit are discarded, and the source contents become the new .1.
//
// # Creating Backups
//
//	mgr := backup.NewManager(
//		backup.WithDir(paths.BackupDir()),
//		backup.WithMaxBackups(10),
//	)
//	path, err := mgr.Create(paths.TasksFile())
//
// # Restoring
//
// [Manager.Restore] copies the most recent backup over a target path and
// returns the backup it used:
//
//	used, err := mgr.Restore("todo.json", paths.TasksFile())
//
// # Rotation Plans
//
// The shift is computed up front as an in-memory rename/discard plan and
// then applied through an injectable [FS], keeping the numbering logic
// testable in isolation from disk I/O.
//
// # Error Handling
//
// This package fails loud: [ErrSourceNotFound] and [ErrNoBackups] are
// surfaced to the caller rather than swallowed. A failure partway through
// a shift can leave the set in an intermediate state; rotation is
// best-effort, not transactional, and concurrent processes are not
// coordinated.
package backup
