package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/store"
)

func init() {
	taskCmd.AddCommand(taskDoneCmd)
}

var taskDoneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Complete a task",
	Long: `Mark a task as done.

With no argument, opens an interactive picker over the open tasks.
A unique ID prefix (4 characters or more) also works.`,
	Example: `  # Interactive picker
  taskdeck task done

  # By ID prefix
  taskdeck task done 3f2a`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTaskDone,
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	s := newTaskStore(cmd)
	list, err := s.Load()
	if err != nil {
		return errors.Wrap(err, "loading tasks")
	}

	var idArg string
	if len(args) > 0 {
		idArg = args[0]
	}

	task, err := resolveTask(list, list.ByStatus(store.StatusOpen), idArg)
	if err != nil {
		if errors.Is(err, ErrPickerAborted) {
			return nil
		}
		return err
	}

	done, err := s.Complete(task.ID)
	if err != nil {
		return errors.Wrap(err, "completing task")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s✓ Done: %s%s\n",
		colorGreen, done.Title, colorReset)

	return nil
}
