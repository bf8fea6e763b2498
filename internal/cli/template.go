package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uv-create/uvcreate/internal/app"
)

func init() {
	rootCmd.AddCommand(templateCmd)
}

var templateCmd = &cobra.Command{
	Use:   "template <template-name> <template-file>",
	Short: "Save a template file under a name",
	Long: `Validate a template document and store it in the registry under the given name.

The file may be YAML or, with a .toml extension, TOML. Saving under a built-in
name (basic, cli, web) overrides it until "restore" is run.

Example template:
  description: Minimal project
  files:
    - path: README.md
      content: |
        # {{project_name}}
    - path: src/{{package_name}}/__init__.py
      content: ""`,
	Args: exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := dispatch(app.SaveTemplate{Name: args[0], File: args[1]})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	},
}
