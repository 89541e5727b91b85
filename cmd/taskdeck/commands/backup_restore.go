package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/backup"
	"github.com/taskdeck/taskdeck/internal/errors"
)

func init() {
	backupCmd.AddCommand(backupRestoreCmd)
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the task list from backup",
	Long: `Restore the task list from the most recent backup.

The current task file is overwritten with the contents of <file>.1.
If you need an older copy, the backups are plain files listed by
"taskdeck backup list"; copy one into place manually.`,
	Example: `  # Roll back to the most recent backup
  taskdeck backup restore

  # Inspect the history first
  taskdeck backup list

  See Also:
    taskdeck backup list   - List available backups
    taskdeck backup create - Create a new backup`,
	RunE: runBackupRestore,
}

func runBackupRestore(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	target := Config().Tasks.File

	used, err := newBackupManager(cmd).Restore(tasksBaseName(), target)
	if err != nil {
		if errors.Is(err, backup.ErrNoBackups) {
			return errors.NewUserError(err,
				"No backups exist yet. Create one with: taskdeck backup create")
		}
		return errors.Wrap(err, "restoring backup")
	}

	fmt.Fprintf(w, "%s✓ Restored %s from %s%s\n",
		colorGreen, target, used, colorReset)

	return nil
}
