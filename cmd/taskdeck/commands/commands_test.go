package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/backup"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logging"
)

// setupTestConfig points the package config at a throwaway directory tree
// and resets the session backup state. Returns the temp root.
func setupTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	origCfg := cfg
	cfg = &config.Config{
		Version: 1,
		Tasks:   config.TasksConfig{File: filepath.Join(dir, "todo.json")},
		Backup: config.BackupConfig{
			Dir:        filepath.Join(dir, "backups"),
			MaxBackups: 3,
		},
		Cache:  config.CacheConfig{File: filepath.Join(dir, "skills-manifest.json")},
		Skills: config.SkillsConfig{Dirs: []string{filepath.Join(dir, "skills")}},
	}

	backup.ResetBackupState()
	t.Cleanup(func() {
		cfg = origCfg
		backup.ResetBackupState()
	})

	return dir
}

// newTestCommand returns a command wired to a buffer and a test logger.
func newTestCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetContext(logging.NewContext(context.Background(), logging.ForTest(t)))
	return cmd, &buf
}
