package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/export"
	"github.com/taskdeck/taskdeck/internal/store"
)

var (
	taskListAll    bool
	taskListFormat string
)

func init() {
	taskListCmd.Flags().BoolVarP(&taskListAll, "all", "a", false,
		"include completed tasks")
	taskListCmd.Flags().StringVar(&taskListFormat, "format", "",
		"machine-readable output: json, yaml, toml")
	taskCmd.AddCommand(taskListCmd)
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks in the local task list.

By default only open tasks are shown. Use --all to include completed
tasks, or --format for machine-readable output.`,
	Example: `  # Open tasks
  taskdeck task list

  # Everything, including completed tasks
  taskdeck task list --all

  # JSON for scripting
  taskdeck task list --all --format json`,
	RunE: runTaskList,
}

func runTaskList(cmd *cobra.Command, _ []string) error {
	list, err := newTaskStore(cmd).Load()
	if err != nil {
		return errors.Wrap(err, "loading tasks")
	}

	status := store.StatusOpen
	if taskListAll {
		status = ""
	}
	tasks := list.ByStatus(status)

	if taskListFormat != "" {
		format, err := export.ParseFormat(taskListFormat)
		if err != nil {
			return errors.NewUserError(err, "")
		}
		out, err := export.Marshal(tasks, format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	printTaskTable(cmd.OutOrStdout(), tasks)
	return nil
}

func printTaskTable(w io.Writer, tasks []store.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks. Add one with: taskdeck task add <title>")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sID%s\t%sSTATUS%s\t%sPRI%s\t%sTITLE%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, t := range tasks {
		status := t.Status
		if t.Status == store.StatusDone {
			status = colorGreen + t.Status + colorReset
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\n",
			colorGray, shortID(t.ID), colorReset,
			status,
			t.Priority,
			truncate(t.Title, 60))
	}
	tw.Flush()
}

// shortID returns the first ID segment, enough to disambiguate locally.
func shortID(id string) string {
	for i, r := range id {
		if r == '-' {
			return id[:i]
		}
	}
	return id
}
