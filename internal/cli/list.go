package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/uv-create/uvcreate/internal/app"
	"github.com/uv-create/uvcreate/internal/registry"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long:  `List the built-in templates followed by your own, with where each one comes from.`,
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := dispatch(app.List{})
		if err != nil {
			return err
		}
		if listJSON {
			return printListJSON(cmd, res.Entries)
		}
		return printListTable(cmd, res.Entries)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func printListTable(cmd *cobra.Command, entries []registry.Entry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOURCE\tVERSION\tFILES\tDESCRIPTION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		desc := e.Description
		if e.Problem != "" {
			desc = "invalid: " + e.Problem
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", e.Name, e.Provenance, version, e.Files, desc)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []registry.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
