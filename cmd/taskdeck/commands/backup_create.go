package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/backup"
	"github.com/taskdeck/taskdeck/internal/errors"
)

func init() {
	backupCmd.AddCommand(backupCreateCmd)
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a manual backup",
	Long: `Create a backup of the task list.

Backups are created automatically before taskdeck modifies the list.
This command allows you to create additional backups manually, for
example before editing the file by hand.`,
	Example: `  # Create a backup
  taskdeck backup create

  See Also:
    taskdeck backup list    - List available backups
    taskdeck backup restore - Restore from a backup`,
	RunE: runBackupCreate,
}

func runBackupCreate(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	path, err := newBackupManager(cmd).Create(Config().Tasks.File)
	if err != nil {
		if errors.Is(err, backup.ErrSourceNotFound) {
			fmt.Fprintf(w, "%sNothing to back up: no task list yet%s\n",
				colorYellow, colorReset)
			fmt.Fprintln(w, "Create one with: taskdeck task add <title>")
			return nil
		}
		return errors.Wrap(err, "creating backup")
	}

	fmt.Fprintf(w, "%s✓ Created backup %s%s\n", colorGreen, path, colorReset)
	return nil
}
