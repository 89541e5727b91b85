package commands

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/store"
)

func TestBackupCreate_NoTaskFile(t *testing.T) {
	setupTestConfig(t)

	cmd, buf := newTestCommand(t)
	require.NoError(t, runBackupCreate(cmd, nil))
	assert.Contains(t, buf.String(), "Nothing to back up")
}

func TestBackupCreateListRestore(t *testing.T) {
	setupTestConfig(t)

	// Seed a task file.
	cmd, _ := newTestCommand(t)
	taskAddPriority = store.PriorityNormal
	require.NoError(t, runTaskAdd(cmd, []string{"keep me"}))

	cmd, buf := newTestCommand(t)
	require.NoError(t, runBackupCreate(cmd, nil))
	assert.Contains(t, buf.String(), "Created backup")
	assert.Contains(t, buf.String(), "todo.json.1")

	cmd, buf = newTestCommand(t)
	backupListJSON = false
	require.NoError(t, runBackupList(cmd, nil))
	assert.Contains(t, buf.String(), "todo.json.1")

	// Clobber the task file, then roll back.
	require.NoError(t, os.WriteFile(Config().Tasks.File, []byte("{broken"), 0o644))

	cmd, buf = newTestCommand(t)
	require.NoError(t, runBackupRestore(cmd, nil))
	assert.Contains(t, buf.String(), "Restored")

	list, err := newTaskStore(cmd).Load()
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, "keep me", list.Tasks[0].Title)
}

func TestBackupList_JSON(t *testing.T) {
	setupTestConfig(t)

	cmd, _ := newTestCommand(t)
	taskAddPriority = store.PriorityNormal
	require.NoError(t, runTaskAdd(cmd, []string{"x"}))
	require.NoError(t, runBackupCreate(cmd, nil))

	cmd, buf := newTestCommand(t)
	backupListJSON = true
	defer func() { backupListJSON = false }()
	require.NoError(t, runBackupList(cmd, nil))

	var out []backupInfoOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Positive(t, out[0].SizeBytes)
}

func TestBackupList_Empty(t *testing.T) {
	setupTestConfig(t)

	cmd, buf := newTestCommand(t)
	backupListJSON = false
	require.NoError(t, runBackupList(cmd, nil))
	assert.Contains(t, buf.String(), "No backups available")
}

func TestBackupRestore_NoBackups(t *testing.T) {
	setupTestConfig(t)

	cmd, _ := newTestCommand(t)
	err := runBackupRestore(cmd, nil)
	require.Error(t, err)
}
