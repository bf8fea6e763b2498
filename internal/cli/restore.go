package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uv-create/uvcreate/internal/app"
)

func init() {
	rootCmd.AddCommand(restoreCmd)
}

var restoreCmd = &cobra.Command{
	Use:   "restore [template-name|all]",
	Short: "Restore templates to their shipped defaults",
	Long: `Restore a built-in template to its shipped content, or delete a custom one.
With no argument or "all", every override is removed and every built-in restored.`,
	Args: maxArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}

		res, err := dispatch(app.Restore{Name: name})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, res.Message)
		if len(res.Restored) > 1 {
			fmt.Fprintf(out, "  %s\n", strings.Join(res.Restored, ", "))
		}
		return nil
	},
}
