package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage task list backups",
	Long: `Manage numbered backups of the task list.

Backups are created automatically before the first mutation in a session.
Copies are named <file>.1, <file>.2, and so on, where .1 is always the
most recent. Older copies shift up on each backup, and copies beyond the
retention limit are discarded.`,
	Example: `  # Create a backup right now
  taskdeck backup create

  # Show the history
  taskdeck backup list

  # Roll back to the most recent backup
  taskdeck backup restore`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// tasksBaseName returns the base file name backups are keyed on.
func tasksBaseName() string {
	return filepath.Base(Config().Tasks.File)
}
