package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/errors"
)

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage taskdeck configuration",
	Long: `Manage taskdeck configuration stored in ~/.config/taskdeck/config.yaml.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  taskdeck config

  # Get a specific value
  taskdeck config get backup.max_backups

  # Check the config file for problems
  taskdeck config validate`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Supports dot notation for nested keys. Array values are printed one per line.`,
	Example: `  # Get the backup retention limit
  taskdeck config get backup.max_backups

  # Get the skill directories
  taskdeck config get skills.dirs`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Validate the active configuration, including values from the config
file and TASKDECK_* environment variables. Reports every problem found.`,
	RunE: runConfigValidate,
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	out, err := yaml.Marshal(Config())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s# from %s%s\n", colorGray, used, colorReset)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !viper.IsSet(key) {
		return errors.NewUserError(
			errors.Newf("unknown config key %q", key),
			"Run 'taskdeck config list' to see available keys")
	}

	value := viper.Get(key)
	switch v := value.(type) {
	case []string:
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(v, "\n"))
	case []any:
		for _, item := range v {
			fmt.Fprintln(cmd.OutOrStdout(), item)
		}
	default:
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	errs := config.Validate(Config())
	if len(errs) == 0 {
		fmt.Fprintf(w, "%s✓ Configuration is valid%s\n", colorGreen, colorReset)
		return nil
	}

	for _, e := range errs {
		fmt.Fprintf(w, "%s✗ %v%s\n", colorYellow, e, colorReset)
	}
	return errors.NewExitError(
		errors.Wrapf(errors.ErrInvalidConfig, "%d problems", len(errs)),
		errors.ExitUser)
}
