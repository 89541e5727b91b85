package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(skillsCmd)
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Browse the installed skills manifest",
	Long: `Browse the manifest of agent skills installed on this machine.

Skills are directories containing a SKILL.md file with YAML frontmatter.
Scanning every skill directory is slow, so the manifest is cached and
reused while fresh. A stale cache is served once while a refresh runs,
and a missing or unreadable cache is rebuilt on the spot.`,
	Example: `  # List skills (cached when fresh)
  taskdeck skills list

  # Force a rebuild
  taskdeck skills refresh

  # Drop the cache
  taskdeck skills clear`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
