package cli

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/uv-create/uvcreate/internal/errdefs"
	"github.com/uv-create/uvcreate/internal/manifest"
	"github.com/uv-create/uvcreate/internal/registry"
)

var doctorCheckTemplate string

// lookPath is swapped in tests.
var lookPath = exec.LookPath

func init() {
	doctorCmd.Flags().StringVar(&doctorCheckTemplate, "check-template", "", "Validate a template file without saving it")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the template registry and tooling",
	Long: `Run diagnostic checks: tools a generated project needs (uv, python3, git),
and whether every stored template still parses.`,
	Args: exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if doctorCheckTemplate != "" {
			return runTemplateCheck(out, doctorCheckTemplate)
		}

		runToolCheck(out)

		a, err := openApp()
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] registry at %s: %v\n", templateDir(), err)
			return err
		}
		entries, err := a.Store.List()
		if err != nil {
			return err
		}
		return runRegistryCheck(out, a.Store.Root(), entries)
	},
}

func runToolCheck(out io.Writer) {
	fmt.Fprintln(out, "Tool check:")
	for _, name := range []string{"uv", "python3", "git"} {
		p, err := lookPath(name)
		if err != nil {
			fmt.Fprintf(out, "  [MISS] %s not found\n", name)
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, p)
	}
}

func runRegistryCheck(out io.Writer, root string, entries []registry.Entry) error {
	fmt.Fprintf(out, "Registry check: %s\n", root)
	broken := 0
	for _, e := range entries {
		if e.Problem != "" {
			broken++
			fmt.Fprintf(out, "  [FAIL] %s (%s): %s\n", e.Name, e.Provenance, e.Problem)
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s (%s, %d files)\n", e.Name, e.Provenance, e.Files)
	}
	if broken > 0 {
		return errdefs.InvalidTemplate("%d stored template(s) cannot be parsed; fix them or run restore", broken)
	}
	return nil
}

func runTemplateCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Template validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return errdefs.Wrap(errdefs.KindInvalidTemplate, err, path, "template validation failed")
	}

	if !result.Valid {
		fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
		return errdefs.InvalidTemplate("template %s has %d validation issue(s)", path, len(result.Issues))
	}

	// The schema passed; the semantic checks still apply.
	t, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	fmt.Fprintf(out, "  [ OK ] Valid template with %d file(s)\n", len(t.Files))
	return nil
}
