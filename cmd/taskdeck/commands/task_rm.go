package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/errors"
)

func init() {
	taskCmd.AddCommand(taskRmCmd)
}

var taskRmCmd = &cobra.Command{
	Use:   "rm [task-id]",
	Short: "Remove a task",
	Long: `Remove a task from the list entirely.

With no argument, opens an interactive picker over all tasks. The previous
list contents are backed up first, so removal is recoverable with
"taskdeck backup restore".`,
	Example: `  # Interactive picker
  taskdeck task rm

  # By ID prefix
  taskdeck task rm 3f2a`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTaskRm,
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	s := newTaskStore(cmd)
	list, err := s.Load()
	if err != nil {
		return errors.Wrap(err, "loading tasks")
	}

	var idArg string
	if len(args) > 0 {
		idArg = args[0]
	}

	task, err := resolveTask(list, list.Tasks, idArg)
	if err != nil {
		if errors.Is(err, ErrPickerAborted) {
			return nil
		}
		return err
	}

	if err := s.Delete(task.ID); err != nil {
		return errors.Wrap(err, "removing task")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s✓ Removed: %s%s\n",
		colorYellow, task.Title, colorReset)

	return nil
}
