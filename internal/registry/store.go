package registry

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/uv-create/uvcreate/internal/errdefs"
	"github.com/uv-create/uvcreate/internal/logging"
	"github.com/uv-create/uvcreate/internal/manifest"
	"github.com/uv-create/uvcreate/internal/platform"
)

// Directory names under the registry root.
const (
	DefaultsDir  = "defaults"
	OverridesDir = "overrides"
	fileExt      = ".yaml"
)

// Store is the on-disk template registry rooted at a single directory.
// It holds no state beyond its configuration; every call reads the disk.
type Store struct {
	root     string
	defaults []Builtin
	byName   map[string]Builtin
	log      *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for registry events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = logging.OrDiscard(l) }
}

// WithDefaults replaces the shipped default set.
func WithDefaults(builtins ...Builtin) Option {
	return func(s *Store) { s.defaults = builtins }
}

// Open prepares the registry at root: it creates the defaults and overrides
// directories and seeds any default whose file is missing.
func Open(root string, opts ...Option) (*Store, error) {
	s := &Store{
		root:     root,
		defaults: Shipped(),
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.byName = make(map[string]Builtin, len(s.defaults))
	for _, b := range s.defaults {
		s.byName[b.Name] = b
	}

	for _, dir := range []string{s.defaultsDir(), s.overridesDir()} {
		if err := os.MkdirAll(dir, platform.DirPerm); err != nil {
			return nil, errdefs.IO(err, dir, "creating registry directory")
		}
	}

	for _, b := range s.defaults {
		p := s.defaultPath(b.Name)
		if _, err := os.Stat(p); err == nil {
			continue
		}
		if err := platform.WriteFileAtomic(p, b.Data, platform.FilePerm); err != nil {
			return nil, errdefs.IO(err, p, "seeding default template")
		}
		s.log.Debug("seeded default template", "template", b.Name, "path", p)
	}

	return s, nil
}

// Root returns the registry root directory.
func (s *Store) Root() string { return s.root }

// IsDefault reports whether name is a shipped default.
func (s *Store) IsDefault(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Get resolves name to its active template: the override if one exists,
// otherwise the default.
func (s *Store) Get(name string) (*Resolved, error) {
	data, prov, p, err := s.read(name)
	if err != nil {
		return nil, err
	}

	t, err := manifest.Parse(data, manifest.FormatYAML)
	if err != nil {
		var e *errdefs.Error
		if errors.As(err, &e) && e.Path == "" {
			e.Path = p
		}
		return nil, err
	}
	t.Name = name

	return &Resolved{Template: t, Provenance: prov, Path: p}, nil
}

// Raw returns the stored bytes of the active entry for name.
func (s *Store) Raw(name string) ([]byte, error) {
	data, _, _, err := s.read(name)
	return data, err
}

// List returns the defaults in canonical order followed by custom templates
// sorted by name.
func (s *Store) List() ([]Entry, error) {
	overrides, err := s.overrideNames()
	if err != nil {
		return nil, err
	}
	overridden := make(map[string]bool, len(overrides))
	for _, name := range overrides {
		overridden[name] = true
	}

	entries := make([]Entry, 0, len(s.defaults)+len(overrides))
	for _, b := range s.defaults {
		prov := ProvenanceDefault
		if overridden[b.Name] {
			prov = ProvenanceOverridden
		}
		entries = append(entries, s.describe(b.Name, prov))
	}
	for _, name := range overrides {
		if s.IsDefault(name) {
			continue
		}
		entries = append(entries, s.describe(name, ProvenanceCustom))
	}
	return entries, nil
}

// Names returns every registered name in listing order.
func (s *Store) Names() ([]string, error) {
	overrides, err := s.overrideNames()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(s.defaults)+len(overrides))
	for _, b := range s.defaults {
		names = append(names, b.Name)
	}
	for _, name := range overrides {
		if !s.IsDefault(name) {
			names = append(names, name)
		}
	}
	return names, nil
}

// Put validates the template document at source and installs it under name,
// replacing any earlier override. The document's own name field is ignored.
func (s *Store) Put(name, source string) (*Resolved, error) {
	if err := manifest.ValidateName(name); err != nil {
		return nil, errdefs.Wrap(errdefs.KindInvalidArgument, err, "", "invalid template name")
	}

	t, err := manifest.Load(source)
	if err != nil {
		return nil, err
	}
	t.Name = name

	data, err := manifest.Marshal(t)
	if err != nil {
		return nil, errdefs.Wrap(errdefs.KindInvalidTemplate, err, source, "serializing template")
	}
	stored, err := manifest.Parse(data, manifest.FormatYAML)
	if err != nil {
		return nil, errdefs.Wrap(errdefs.KindInvalidTemplate, err, source, "serialized template does not parse")
	}
	if !stored.Equal(t) {
		return nil, errdefs.InvalidTemplate("template %s cannot be stored without changing its content", source)
	}

	p := s.overridePath(name)
	if err := platform.WriteFileAtomic(p, data, platform.FilePerm); err != nil {
		return nil, errdefs.IO(err, p, "saving template")
	}

	prov := ProvenanceCustom
	if s.IsDefault(name) {
		prov = ProvenanceOverridden
	}
	s.log.Info("saved template", "template", name, "provenance", prov, "files", len(t.Files))

	return &Resolved{Template: t, Provenance: prov, Path: p}, nil
}

// read returns the active bytes for name with their provenance and path.
func (s *Store) read(name string) ([]byte, Provenance, string, error) {
	if err := manifest.ValidateName(name); err != nil {
		return nil, "", "", errdefs.Wrap(errdefs.KindInvalidArgument, err, "", "invalid template name")
	}

	op := s.overridePath(name)
	data, err := os.ReadFile(op)
	switch {
	case err == nil:
		prov := ProvenanceCustom
		if s.IsDefault(name) {
			prov = ProvenanceOverridden
		}
		return data, prov, op, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, "", "", errdefs.IO(err, op, "reading template")
	}

	b, ok := s.byName[name]
	if !ok {
		return nil, "", "", s.notFound(name)
	}

	dp := s.defaultPath(name)
	data, err = os.ReadFile(dp)
	if errors.Is(err, fs.ErrNotExist) {
		// Seeded file removed behind our back; the shipped copy is authoritative.
		s.log.Warn("default template file missing, using shipped content", "template", name, "path", dp)
		return b.Data, ProvenanceDefault, dp, nil
	}
	if err != nil {
		return nil, "", "", errdefs.IO(err, dp, "reading template")
	}
	return data, ProvenanceDefault, dp, nil
}

func (s *Store) describe(name string, prov Provenance) Entry {
	e := Entry{Name: name, Provenance: prov}
	r, err := s.Get(name)
	if err != nil {
		e.Problem = err.Error()
		return e
	}
	e.Version = r.Template.Version
	e.Description = r.Template.Description
	e.Files = len(r.Template.Files)
	return e
}

// overrideNames returns the sorted names of all stored overrides.
func (s *Store) overrideNames() ([]string, error) {
	dir := s.overridesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errdefs.IO(err, dir, "reading overrides")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), fileExt)
		if manifest.ValidateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) notFound(name string) error {
	names, _ := s.Names()
	if len(names) == 0 {
		return errdefs.NotFound("template %q not found", name)
	}
	return errdefs.NotFound("template %q not found (available: %s)", name, strings.Join(names, ", "))
}

func (s *Store) defaultsDir() string  { return filepath.Join(s.root, DefaultsDir) }
func (s *Store) overridesDir() string { return filepath.Join(s.root, OverridesDir) }

func (s *Store) defaultPath(name string) string {
	return filepath.Join(s.defaultsDir(), name+fileExt)
}

func (s *Store) overridePath(name string) string {
	return filepath.Join(s.overridesDir(), name+fileExt)
}
