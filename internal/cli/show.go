package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uv-create/uvcreate/internal/app"
)

var showRaw bool

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the stored template document")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <template-name>",
	Short: "Show a template's details and file contents",
	Long: `Show a template's header, the placeholders it uses, and every file it
writes followed by that file's unrendered content. Use --raw to print the
stored template document instead.`,
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := dispatch(app.Show{Name: args[0]})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showRaw {
			_, err := out.Write(res.Raw)
			return err
		}

		r := res.Template
		t := r.Template
		fmt.Fprintf(out, "Template: %s (%s)\n", t.Name, r.Provenance)
		if t.Version != "" {
			fmt.Fprintf(out, "Version:  %s\n", t.Version)
		}
		if t.Description != "" {
			fmt.Fprintf(out, "About:    %s\n", t.Description)
		}
		fmt.Fprintf(out, "Stored:   %s\n", r.Path)
		if len(res.Placeholders) > 0 {
			fmt.Fprintf(out, "Uses:     %s\n", strings.Join(res.Placeholders, ", "))
		}

		fmt.Fprintf(out, "\nFiles (%d):\n", len(t.Files))
		for _, f := range t.Files {
			if f.Executable {
				fmt.Fprintf(out, "  %s (executable)\n", f.Path)
				continue
			}
			fmt.Fprintf(out, "  %s\n", f.Path)
		}

		for _, f := range t.Files {
			fmt.Fprintf(out, "\n==> %s <==\n", f.Path)
			fmt.Fprint(out, f.Content)
			if f.Content != "" && !strings.HasSuffix(f.Content, "\n") {
				fmt.Fprintln(out)
			}
		}
		return nil
	},
}
