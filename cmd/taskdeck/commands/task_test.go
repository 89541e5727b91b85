package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/store"
)

func TestTaskAddAndList(t *testing.T) {
	setupTestConfig(t)

	cmd, buf := newTestCommand(t)
	taskAddPriority = store.PriorityNormal
	require.NoError(t, runTaskAdd(cmd, []string{"Write", "release", "notes"}))
	assert.Contains(t, buf.String(), "Added Write release notes")

	cmd, buf = newTestCommand(t)
	taskListAll, taskListFormat = false, ""
	require.NoError(t, runTaskList(cmd, nil))
	assert.Contains(t, buf.String(), "Write release notes")
}

func TestTaskAdd_InvalidPriority(t *testing.T) {
	setupTestConfig(t)

	cmd, _ := newTestCommand(t)
	taskAddPriority = "urgent"
	defer func() { taskAddPriority = store.PriorityNormal }()

	err := runTaskAdd(cmd, []string{"x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid priority")
}

func TestTaskAdd_BlankTitle(t *testing.T) {
	setupTestConfig(t)

	cmd, _ := newTestCommand(t)
	taskAddPriority = store.PriorityNormal

	err := runTaskAdd(cmd, []string{"   "})
	require.Error(t, err)
}

func TestTaskList_JSONFormat(t *testing.T) {
	setupTestConfig(t)

	cmd, _ := newTestCommand(t)
	taskAddPriority = store.PriorityHigh
	require.NoError(t, runTaskAdd(cmd, []string{"task one"}))

	cmd, buf := newTestCommand(t)
	taskListAll, taskListFormat = true, "json"
	defer func() { taskListAll, taskListFormat = false, "" }()
	require.NoError(t, runTaskList(cmd, nil))

	var tasks []store.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "task one", tasks[0].Title)
	assert.Equal(t, store.PriorityHigh, tasks[0].Priority)
}

func TestTaskList_Empty(t *testing.T) {
	setupTestConfig(t)

	cmd, buf := newTestCommand(t)
	taskListAll, taskListFormat = false, ""
	require.NoError(t, runTaskList(cmd, nil))
	assert.Contains(t, buf.String(), "No tasks")
}

func TestTaskDoneAndRm_ByIDPrefix(t *testing.T) {
	setupTestConfig(t)

	cmd, _ := newTestCommand(t)
	taskAddPriority = store.PriorityNormal
	require.NoError(t, runTaskAdd(cmd, []string{"finish the report"}))

	s := newTaskStore(cmd)
	list, err := s.Load()
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	id := list.Tasks[0].ID

	cmd, buf := newTestCommand(t)
	require.NoError(t, runTaskDone(cmd, []string{id[:8]}))
	assert.Contains(t, buf.String(), "Done: finish the report")

	cmd, buf = newTestCommand(t)
	require.NoError(t, runTaskRm(cmd, []string{id}))
	assert.Contains(t, buf.String(), "Removed: finish the report")

	list, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, list.Tasks)
}

func TestTaskDone_UnknownID(t *testing.T) {
	setupTestConfig(t)

	cmd, _ := newTestCommand(t)
	err := runTaskDone(cmd, []string{"deadbeef"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "3f2a91cc", shortID("3f2a91cc-0000-1111-2222-333344445555"))
	assert.Equal(t, "plain", shortID("plain"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("x", 20)
	assert.Equal(t, strings.Repeat("x", 7)+"...", truncate(long, 10))
}
