package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uv-create/uvcreate/internal/config"
	"github.com/uv-create/uvcreate/internal/errdefs"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.uv_templates/config.yaml.

Keys: ` + strings.Join(config.Keys, ", ") + `
Each key can also be set with an environment variable, e.g. UV_CREATE_AUTHOR_NAME.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !config.IsKnownKey(key) {
			return errdefs.InvalidArgument("unknown key %q (known keys: %s)", key, strings.Join(config.Keys, ", "))
		}
		if err := config.Set(key, value); err != nil {
			return errdefs.IO(err, config.FilePath(), fmt.Sprintf("setting config key %q", key))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !config.IsKnownKey(key) {
			return errdefs.InvalidArgument("unknown key %q (known keys: %s)", key, strings.Join(config.Keys, ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(key))
		return nil
	},
}
