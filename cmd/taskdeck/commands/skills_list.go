package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/export"
	"github.com/taskdeck/taskdeck/internal/manifest"
)

var skillsListFormat string

func init() {
	skillsListCmd.Flags().StringVar(&skillsListFormat, "format", "",
		"machine-readable output: json, yaml, toml")
	skillsCmd.AddCommand(skillsListCmd)
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills",
	Long: `List the skills discovered in the configured skill directories.

Results come from the manifest cache when it is fresh. A stale cache is
served immediately while a refresh runs for the next call.`,
	Example: `  # Human-readable table
  taskdeck skills list

  # Full manifest as JSON
  taskdeck skills list --format json`,
	RunE: runSkillsList,
}

func runSkillsList(cmd *cobra.Command, _ []string) error {
	res, err := newResolver(cmd).Resolve(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "resolving skills manifest")
	}

	if skillsListFormat != "" {
		format, err := export.ParseFormat(skillsListFormat)
		if err != nil {
			return errors.NewUserError(err, "")
		}
		out, err := export.Marshal(res.Manifest, format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	printSkillsTable(cmd.OutOrStdout(), res)
	return nil
}

func printSkillsTable(w io.Writer, res *manifest.Result) {
	m := res.Manifest
	if m.Empty() {
		fmt.Fprintln(w, "No skills found.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Skills are directories containing a SKILL.md file.")
		fmt.Fprintln(w, "Check the configured directories with: taskdeck config list")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sDESCRIPTION%s\n",
		colorBold, colorReset,
		colorBold, colorReset)
	for _, s := range m.Skills {
		fmt.Fprintf(tw, "%s%s%s\t%s\n",
			colorCyan, s.Name, colorReset,
			truncate(s.Description, 70))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%s%d skills (%s, generated %s)%s\n",
		colorGray,
		len(m.Skills),
		res.Source,
		m.Meta.GeneratedAt.Local().Format("2006-01-02 15:04:05"),
		colorReset)
}
