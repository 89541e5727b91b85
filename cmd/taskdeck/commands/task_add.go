package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/store"
)

var taskAddPriority string

func init() {
	taskAddCmd.Flags().StringVarP(&taskAddPriority, "priority", "p", store.PriorityNormal,
		"task priority: low, normal, high")
	taskCmd.AddCommand(taskAddCmd)
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Add a task",
	Long: `Add a new open task to the list.

Multiple arguments are joined into a single title, so quoting is optional.`,
	Example: `  # Quoted title
  taskdeck task add "Write release notes"

  # Unquoted, same result
  taskdeck task add Write release notes

  # High priority
  taskdeck task add -p high "Fix the build"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskAdd,
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return errors.NewUserError(errors.New("task title is empty"), "")
	}
	if !store.ValidPriority(taskAddPriority) {
		err := errors.Newf("invalid priority %q (valid: low, normal, high)", taskAddPriority)
		return errors.NewUserError(err, "")
	}

	task, err := newTaskStore(cmd).Add(title, taskAddPriority)
	if err != nil {
		return errors.Wrap(err, "adding task")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s✓ Added %s%s\n",
		colorGreen, task.Title, colorReset)
	fmt.Fprintf(cmd.OutOrStdout(), "  %s%s%s\n", colorGray, task.ID, colorReset)

	return nil
}
