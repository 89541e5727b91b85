package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	skillsCmd.AddCommand(skillsClearCmd)
}

var skillsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Invalidate the skills manifest cache",
	Long: `Invalidate the cached skills manifest.

The next "taskdeck skills list" will rescan the skill directories.
Clearing a cache that does not exist is not an error.`,
	Example: `  taskdeck skills clear`,
	RunE:    runSkillsClear,
}

func runSkillsClear(cmd *cobra.Command, _ []string) error {
	r := newResolver(cmd)
	r.Invalidate()

	fmt.Fprintf(cmd.OutOrStdout(), "%s✓ Cleared manifest cache%s\n",
		colorYellow, colorReset)
	fmt.Fprintf(cmd.OutOrStdout(), "  %s%s%s\n", colorGray, r.CachePath(), colorReset)

	return nil
}
