package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/uv-create/uvcreate/internal/errdefs"
	"github.com/uv-create/uvcreate/internal/logging"
	"github.com/uv-create/uvcreate/internal/manifest"
	"github.com/uv-create/uvcreate/internal/registry"
	"github.com/uv-create/uvcreate/internal/render"
	"github.com/uv-create/uvcreate/internal/scaffold"
)

// App runs commands against a template store.
type App struct {
	Store    *registry.Store
	Logger   *slog.Logger
	Defaults Defaults
	// Now is the clock for the {{year}} variable; nil means time.Now.
	Now func() time.Time
}

// Result is the outcome of a command. Only the fields relevant to the
// dispatched command are set.
type Result struct {
	Message      string
	Entries      []registry.Entry   // List
	Template     *registry.Resolved // Show, SaveTemplate
	Raw          []byte             // Show
	Placeholders []string           // Show
	Created      *scaffold.Result   // Create
	Variables    render.Variables   // Create
	Restored     []string           // Restore
}

// Dispatch runs cmd.
func (a *App) Dispatch(cmd Command) (*Result, error) {
	switch c := cmd.(type) {
	case Create:
		return a.create(c)
	case List:
		return a.list()
	case Show:
		return a.show(c)
	case SaveTemplate:
		return a.save(c)
	case Restore:
		return a.restore(c)
	default:
		return nil, errdefs.InvalidArgument("unsupported command %T", cmd)
	}
}

func (a *App) log() *slog.Logger {
	return logging.OrDiscard(a.Logger)
}

func (a *App) create(c Create) (*Result, error) {
	if err := validateProjectName(c.ProjectName); err != nil {
		return nil, err
	}
	name := c.Template
	if name == "" {
		name = registry.DefaultTemplate
	}

	// Resolve before touching the destination so a bad name leaves no directory.
	resolved, err := a.Store.Get(name)
	if err != nil {
		return nil, err
	}

	dest := c.TargetDir
	if dest == "" {
		dest = filepath.Join(".", c.ProjectName)
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	vars := Variables(c, a.Defaults, now())

	a.log().Debug("creating project", "project", c.ProjectName, "template", name,
		"provenance", resolved.Provenance, "dest", dest, "force", c.Force)

	created, err := scaffold.Materialize(resolved.Template, vars, dest, scaffold.Options{
		Overwrite: c.Force,
		Logger:    a.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Message:   fmt.Sprintf("Created project %q at %s from template %q", c.ProjectName, dest, name),
		Created:   created,
		Variables: vars,
	}, nil
}

func (a *App) list() (*Result, error) {
	entries, err := a.Store.List()
	if err != nil {
		return nil, err
	}
	return &Result{Entries: entries}, nil
}

func (a *App) show(c Show) (*Result, error) {
	resolved, err := a.Store.Get(c.Name)
	if err != nil {
		return nil, err
	}
	raw, err := a.Store.Raw(c.Name)
	if err != nil {
		return nil, err
	}
	return &Result{
		Template:     resolved,
		Raw:          raw,
		Placeholders: templatePlaceholders(resolved.Template),
	}, nil
}

func (a *App) save(c SaveTemplate) (*Result, error) {
	if strings.TrimSpace(c.File) == "" {
		return nil, errdefs.InvalidArgument("template file is required")
	}
	resolved, err := a.Store.Put(c.Name, c.File)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Saved template %q (%d files)", c.Name, len(resolved.Template.Files))
	if resolved.Provenance == registry.ProvenanceOverridden {
		msg += "; it overrides the built-in default until restored"
	}
	return &Result{Message: msg, Template: resolved}, nil
}

func (a *App) restore(c Restore) (*Result, error) {
	name := c.Name
	if name == "" {
		name = manifest.ReservedName
	}
	names, err := a.Store.Restore(name)
	if err != nil {
		return nil, err
	}

	var msg string
	switch {
	case name == manifest.ReservedName:
		msg = "Restored all templates to their shipped defaults"
	case a.Store.IsDefault(name):
		msg = fmt.Sprintf("Restored template %q to its shipped default", name)
	default:
		msg = fmt.Sprintf("Removed custom template %q", name)
	}
	return &Result{Message: msg, Restored: names}, nil
}

func validateProjectName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errdefs.InvalidArgument("project name is required")
	case strings.ContainsAny(name, `/\`):
		return errdefs.InvalidArgument("project name %q must not contain path separators", name)
	case name == "." || name == "..":
		return errdefs.InvalidArgument("project name %q is not allowed", name)
	}
	return nil
}

// templatePlaceholders collects placeholder keys from every path and body.
func templatePlaceholders(t *manifest.Template) []string {
	var b strings.Builder
	for _, f := range t.Files {
		b.WriteString(f.Path)
		b.WriteByte('\n')
		b.WriteString(f.Content)
		b.WriteByte('\n')
	}
	return render.Placeholders(b.String())
}
