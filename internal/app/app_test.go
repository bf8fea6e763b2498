package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uv-create/uvcreate/internal/errdefs"
	"github.com/uv-create/uvcreate/internal/registry"
	"github.com/uv-create/uvcreate/internal/render"
)

const demoTemplate = `name: demo
description: Two-file demo
files:
  - path: README.md
    content: "# {{project_name}}"
  - path: src/main.py
    content: "# by {{author_name}}"
`

func newApp(t *testing.T) *App {
	t.Helper()
	store, err := registry.Open(t.TempDir())
	require.NoError(t, err)
	return &App{
		Store: store,
		Now:   func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) },
	}
}

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func dispatch(t *testing.T, a *App, cmd Command) *Result {
	t.Helper()
	res, err := a.Dispatch(cmd)
	require.NoError(t, err)
	return res
}

func TestCreateMaterializesTemplate(t *testing.T) {
	a := newApp(t)
	dispatch(t, a, SaveTemplate{Name: "demo", File: writeTemplate(t, demoTemplate)})

	dest := filepath.Join(t.TempDir(), "demo")
	res := dispatch(t, a, Create{ProjectName: "demo", Template: "demo", TargetDir: dest, AuthorName: "Alice"})

	readme, err := os.ReadFile(filepath.Join(dest, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# demo", string(readme))

	main, err := os.ReadFile(filepath.Join(dest, "src", "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "# by Alice", string(main))

	assert.Equal(t, []string{"README.md", "src/main.py"}, res.Created.Files)
	assert.Contains(t, res.Message, "demo")
}

func TestCreateDefaultTemplate(t *testing.T) {
	a := newApp(t)
	dest := filepath.Join(t.TempDir(), "My-App")

	res := dispatch(t, a, Create{ProjectName: "My-App", TargetDir: dest, AuthorName: "Alice Smith"})
	assert.Empty(t, res.Created.Warnings)

	pyproject, err := os.ReadFile(filepath.Join(dest, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(pyproject), `name = "My-App"`)
	assert.Contains(t, string(pyproject), `{ name = "Alice Smith", email = "alice.smith@example.com" }`)

	assert.FileExists(t, filepath.Join(dest, "src", "my_app", "__init__.py"))
	assert.FileExists(t, filepath.Join(dest, "tests", "test_my_app.py"))
}

func TestCreateCollisionGuard(t *testing.T) {
	a := newApp(t)
	dispatch(t, a, SaveTemplate{Name: "demo", File: writeTemplate(t, demoTemplate)})
	dest := filepath.Join(t.TempDir(), "demo")

	dispatch(t, a, Create{ProjectName: "demo", Template: "demo", TargetDir: dest, AuthorName: "Alice"})

	_, err := a.Dispatch(Create{ProjectName: "demo", Template: "demo", TargetDir: dest, AuthorName: "Bob"})
	require.Error(t, err)
	assert.True(t, errdefs.IsAlreadyExists(err))

	main, err := os.ReadFile(filepath.Join(dest, "src", "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "# by Alice", string(main))

	// --force is the retry path.
	dispatch(t, a, Create{ProjectName: "demo", Template: "demo", TargetDir: dest, AuthorName: "Bob", Force: true})
	main, err = os.ReadFile(filepath.Join(dest, "src", "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "# by Bob", string(main))
}

func TestCreateUnknownTemplateLeavesNoDirectory(t *testing.T) {
	a := newApp(t)
	dest := filepath.Join(t.TempDir(), "demo")

	_, err := a.Dispatch(Create{ProjectName: "demo", Template: "nope", TargetDir: dest})
	require.Error(t, err)
	assert.True(t, errdefs.IsNotFound(err))
	assert.NoDirExists(t, dest)
}

func TestCreateInvalidProjectName(t *testing.T) {
	a := newApp(t)

	for _, name := range []string{"", "  ", "a/b", `a\b`, ".", ".."} {
		_, err := a.Dispatch(Create{ProjectName: name, TargetDir: t.TempDir()})
		require.Error(t, err, name)
		assert.True(t, errdefs.IsInvalidArgument(err), name)
	}
}

func TestListAfterSave(t *testing.T) {
	a := newApp(t)
	dispatch(t, a, SaveTemplate{Name: "zeta", File: writeTemplate(t, demoTemplate)})
	dispatch(t, a, SaveTemplate{Name: "alpha", File: writeTemplate(t, demoTemplate)})
	dispatch(t, a, SaveTemplate{Name: "cli", File: writeTemplate(t, demoTemplate)})

	res := dispatch(t, a, List{})
	var names []string
	seen := map[string]bool{}
	for _, e := range res.Entries {
		assert.False(t, seen[e.Name], "duplicate %s", e.Name)
		seen[e.Name] = true
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"basic", "cli", "web", "alpha", "zeta"}, names)
	assert.Equal(t, registry.ProvenanceOverridden, res.Entries[1].Provenance)
}

func TestSaveThenShowRoundTrip(t *testing.T) {
	a := newApp(t)
	src := writeTemplate(t, demoTemplate)

	saved := dispatch(t, a, SaveTemplate{Name: "t1", File: src})
	assert.Contains(t, saved.Message, `"t1"`)

	shown := dispatch(t, a, Show{Name: "t1"})
	assert.Equal(t, "t1", shown.Template.Template.Name)
	assert.Equal(t, "Two-file demo", shown.Template.Template.Description)
	require.Len(t, shown.Template.Template.Files, 2)
	assert.Equal(t, "README.md", shown.Template.Template.Files[0].Path)
	assert.Equal(t, "# {{project_name}}", shown.Template.Template.Files[0].Content)
	assert.Equal(t, "src/main.py", shown.Template.Template.Files[1].Path)
	assert.Equal(t, "# by {{author_name}}", shown.Template.Template.Files[1].Content)
	assert.Equal(t, []string{"project_name", "author_name"}, shown.Placeholders)
	assert.NotEmpty(t, shown.Raw)
}

func TestSaveOverrideMessage(t *testing.T) {
	a := newApp(t)
	res := dispatch(t, a, SaveTemplate{Name: "basic", File: writeTemplate(t, demoTemplate)})
	assert.Contains(t, res.Message, "overrides the built-in default")
}

func TestSaveRequiresFile(t *testing.T) {
	a := newApp(t)
	_, err := a.Dispatch(SaveTemplate{Name: "x"})
	require.Error(t, err)
	assert.True(t, errdefs.IsInvalidArgument(err))
}

func TestRestoreDefaultAfterOverride(t *testing.T) {
	a := newApp(t)
	shipped := dispatch(t, a, Show{Name: "basic"}).Raw

	dispatch(t, a, SaveTemplate{Name: "basic", File: writeTemplate(t, demoTemplate)})
	assert.NotEqual(t, shipped, dispatch(t, a, Show{Name: "basic"}).Raw)

	res := dispatch(t, a, Restore{Name: "basic"})
	assert.Equal(t, []string{"basic"}, res.Restored)

	shown := dispatch(t, a, Show{Name: "basic"})
	assert.Equal(t, shipped, shown.Raw)
	assert.Equal(t, registry.ProvenanceDefault, shown.Template.Provenance)
}

func TestRestoreCustomThenShowNotFound(t *testing.T) {
	a := newApp(t)
	dispatch(t, a, SaveTemplate{Name: "mytemplate", File: writeTemplate(t, demoTemplate)})

	res := dispatch(t, a, Restore{Name: "mytemplate"})
	assert.Contains(t, res.Message, "Removed custom template")

	_, err := a.Dispatch(Show{Name: "mytemplate"})
	require.Error(t, err)
	assert.True(t, errdefs.IsNotFound(err))
}

func TestRestoreAllByDefault(t *testing.T) {
	a := newApp(t)
	dispatch(t, a, SaveTemplate{Name: "web", File: writeTemplate(t, demoTemplate)})
	dispatch(t, a, SaveTemplate{Name: "extra", File: writeTemplate(t, demoTemplate)})

	res := dispatch(t, a, Restore{})
	assert.Equal(t, []string{"basic", "cli", "extra", "web"}, res.Restored)

	entries := dispatch(t, a, List{}).Entries
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, registry.ProvenanceDefault, e.Provenance)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	a := newApp(t)
	_, err := a.Dispatch(nil)
	require.Error(t, err)
	assert.True(t, errdefs.IsInvalidArgument(err))
}

func TestCreateRendersUnknownKeyVerbatim(t *testing.T) {
	a := newApp(t)
	src := writeTemplate(t, "files:\n  - path: a.txt\n    content: \"{{unknown_key}}\"\n")
	dispatch(t, a, SaveTemplate{Name: "odd", File: src})

	dest := filepath.Join(t.TempDir(), "odd")
	res := dispatch(t, a, Create{ProjectName: "odd", Template: "odd", TargetDir: dest})

	data, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "{{unknown_key}}", string(data))
	require.Len(t, res.Created.Warnings, 1)
	assert.Contains(t, res.Created.Warnings[0], "unknown_key")
	assert.NotContains(t, res.Variables, "unknown_key")
	assert.Equal(t, "2026", res.Variables[render.KeyYear])
}
