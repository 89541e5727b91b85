package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(taskCmd)
}

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long: `Manage the local task list.

Tasks are stored in a plain JSON file. The file is backed up automatically
before the first mutation in a session, so a bad edit is always one
"taskdeck backup restore" away from recovery.`,
	Example: `  # Add a task
  taskdeck task add "Write release notes"

  # List open tasks
  taskdeck task list

  # Complete a task (interactive picker)
  taskdeck task done

  See Also: taskdeck backup, taskdeck status`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
