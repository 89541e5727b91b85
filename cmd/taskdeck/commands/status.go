package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/errors"
)

var statusJSON bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show task and cache overview",
	Long: `Show an overview of the local state.

Displays task counts, how many backups exist, and whether the skills
manifest cache is still fresh.`,
	Example: `  # Human-readable overview
  taskdeck status

  # JSON output for scripting
  taskdeck status --json`,
	RunE: runStatus,
}

// statusOutput is the JSON shape of the status command.
type statusOutput struct {
	TasksFile  string `json:"tasks_file"`
	TasksTotal int    `json:"tasks_total"`
	TasksOpen  int    `json:"tasks_open"`
	TasksDone  int    `json:"tasks_done"`
	Backups    int    `json:"backups"`
	CachePath  string `json:"cache_path"`
	CacheFresh bool   `json:"cache_fresh"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	s := newTaskStore(cmd)
	list, err := s.Load()
	if err != nil {
		return errors.Wrap(err, "loading tasks")
	}
	total, open, done := list.Stats()

	backups, err := newBackupManager(cmd).List(tasksBaseName())
	if err != nil {
		return errors.Wrap(err, "listing backups")
	}

	r := newResolver(cmd)
	out := statusOutput{
		TasksFile:  s.Path(),
		TasksTotal: total,
		TasksOpen:  open,
		TasksDone:  done,
		Backups:    len(backups),
		CachePath:  r.CachePath(),
		CacheFresh: r.IsFresh(),
	}

	if statusJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printStatus(cmd.OutOrStdout(), out)
	return nil
}

func printStatus(w io.Writer, out statusOutput) {
	fmt.Fprintf(w, "%sTasks%s  %d open, %d done (%d total)\n",
		colorCyan+colorBold, colorReset, out.TasksOpen, out.TasksDone, out.TasksTotal)
	fmt.Fprintf(w, "       %s%s%s\n", colorGray, out.TasksFile, colorReset)

	if _, err := os.Stat(out.TasksFile); os.IsNotExist(err) {
		fmt.Fprintf(w, "       %s(file not created yet)%s\n", colorGray, colorReset)
	}

	fmt.Fprintf(w, "%sBackups%s %d\n", colorCyan+colorBold, colorReset, out.Backups)

	freshness := colorYellow + "stale" + colorReset
	if out.CacheFresh {
		freshness = colorGreen + "fresh" + colorReset
	}
	fmt.Fprintf(w, "%sSkills%s cache %s\n", colorCyan+colorBold, colorReset, freshness)
	fmt.Fprintf(w, "       %s%s%s\n", colorGray, out.CachePath, colorReset)
}
