package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/errors"
)

var backupListJSON bool

func init() {
	backupListCmd.Flags().BoolVar(&backupListJSON, "json", false, "Output in JSON format")
	backupCmd.AddCommand(backupListCmd)
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backups",
	Long: `List the numbered backups of the task list.

Backups are shown most recent first: <file>.1 is always the newest copy,
higher numbers are older.`,
	Example: `  # List all backups
  taskdeck backup list

  # Output as JSON
  taskdeck backup list --json

  See Also:
    taskdeck backup restore - Restore from a backup
    taskdeck backup create  - Create a new backup`,
	RunE: runBackupList,
}

// backupInfoOutput represents a single backup in JSON output.
type backupInfoOutput struct {
	Path       string    `json:"path"`
	ModifiedAt time.Time `json:"modified_at"`
	SizeBytes  int64     `json:"size_bytes"`
}

func runBackupList(cmd *cobra.Command, _ []string) error {
	backups, err := newBackupManager(cmd).List(tasksBaseName())
	if err != nil {
		return errors.Wrap(err, "listing backups")
	}

	if backupListJSON {
		return outputBackupListJSON(cmd.OutOrStdout(), backups)
	}
	return outputBackupListTabular(cmd.OutOrStdout(), backups)
}

func outputBackupListJSON(w io.Writer, backups []string) error {
	output := make([]backupInfoOutput, 0, len(backups))
	for _, path := range backups {
		info := backupInfoOutput{Path: path}
		if fi, err := os.Stat(path); err == nil {
			info.ModifiedAt = fi.ModTime().UTC()
			info.SizeBytes = fi.Size()
		}
		output = append(output, info)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputBackupListTabular(w io.Writer, backups []string) error {
	if len(backups) == 0 {
		fmt.Fprintln(w, "No backups available")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Backups are created automatically before taskdeck modifies the task list.")
		fmt.Fprintln(w, "You can also create one manually with: taskdeck backup create")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sPATH%s\t%sMODIFIED%s\t%sSIZE%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, path := range backups {
		modified := colorGray + "?" + colorReset
		size := "?"
		if fi, err := os.Stat(path); err == nil {
			modified = fi.ModTime().Local().Format("2006-01-02 15:04:05")
			size = fmt.Sprintf("%d B", fi.Size())
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\n",
			colorGreen, path, colorReset, modified, size)
	}
	return tw.Flush()
}
