package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/store"
)

func TestStatus_EmptyState(t *testing.T) {
	setupTestConfig(t)

	cmd, buf := newTestCommand(t)
	statusJSON = false
	require.NoError(t, runStatus(cmd, nil))

	out := buf.String()
	assert.Contains(t, out, "0 open, 0 done (0 total)")
	assert.Contains(t, out, "stale")
}

func TestStatus_JSON(t *testing.T) {
	setupTestConfig(t)

	cmd, _ := newTestCommand(t)
	taskAddPriority = store.PriorityNormal
	require.NoError(t, runTaskAdd(cmd, []string{"one"}))
	require.NoError(t, runTaskAdd(cmd, []string{"two"}))
	require.NoError(t, runBackupCreate(cmd, nil))
	require.NoError(t, runSkillsRefresh(cmd, nil))

	cmd, buf := newTestCommand(t)
	statusJSON = true
	defer func() { statusJSON = false }()
	require.NoError(t, runStatus(cmd, nil))

	var out statusOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 2, out.TasksTotal)
	assert.Equal(t, 2, out.TasksOpen)
	assert.Equal(t, 0, out.TasksDone)
	assert.Positive(t, out.Backups)
	assert.True(t, out.CacheFresh)
}
