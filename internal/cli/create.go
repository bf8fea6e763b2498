package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/uv-create/uvcreate/internal/app"
	"github.com/uv-create/uvcreate/internal/registry"
	"github.com/uv-create/uvcreate/internal/scaffold"
)

var (
	createTemplate    string
	createTargetDir   string
	createAuthorName  string
	createAuthorEmail string
	createForce       bool
)

func init() {
	createCmd.Flags().StringVarP(&createTemplate, "template", "t", registry.DefaultTemplate, "Template to use")
	createCmd.Flags().StringVar(&createTargetDir, "target-dir", "", "Output directory (default: ./<project-name>)")
	createCmd.Flags().StringVar(&createAuthorName, "author-name", "", "Author name (default: config author_name, then $USER)")
	createCmd.Flags().StringVar(&createAuthorEmail, "author-email", "", "Author email (default: config author_email, then derived from the name)")
	createCmd.Flags().BoolVar(&createForce, "force", false, "Write into a non-empty directory, overwriting files with the same name")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <project-name>",
	Short: "Create a new project from a template",
	Long: `Create a new uv project by rendering a template into a new directory.

Placeholders such as {{project_name}}, {{package_name}}, {{author_name}},
{{author_email}}, and {{year}} are substituted in file paths and contents.
Placeholders without a value are left as written and reported as warnings.

Examples:
  uv-create create my-project
  uv-create create my-api -t web --author-name "Alice Smith"
  uv-create create my-tool -t cli --target-dir ./tools/my-tool`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := dispatch(app.Create{
			ProjectName: args[0],
			Template:    createTemplate,
			TargetDir:   createTargetDir,
			AuthorName:  createAuthorName,
			AuthorEmail: createAuthorEmail,
			Force:       createForce,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, res.Message)
		printCreated(out, res.Created)

		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintf(out, "  cd %s\n", res.Created.OutputDir)
		fmt.Fprintln(out, "  uv sync")
		return nil
	},
}

func printCreated(out io.Writer, result *scaffold.Result) {
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
}
