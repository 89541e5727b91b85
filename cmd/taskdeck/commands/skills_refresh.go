package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/errors"
)

func init() {
	skillsCmd.AddCommand(skillsRefreshCmd)
}

var skillsRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the skills manifest",
	Long: `Rescan the skill directories and rewrite the manifest cache,
regardless of whether the cached copy is still fresh.`,
	Example: `  taskdeck skills refresh`,
	RunE:    runSkillsRefresh,
}

func runSkillsRefresh(cmd *cobra.Command, _ []string) error {
	r := newResolver(cmd)

	m, err := r.Regenerate(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "regenerating skills manifest")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s✓ Refreshed manifest: %d skills%s\n",
		colorGreen, len(m.Skills), colorReset)
	fmt.Fprintf(cmd.OutOrStdout(), "  %s%s%s\n", colorGray, r.CachePath(), colorReset)

	return nil
}
