package registry

import (
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/uv-create/uvcreate/internal/errdefs"
	"github.com/uv-create/uvcreate/internal/manifest"
	"github.com/uv-create/uvcreate/internal/platform"
)

// Restore reverts name to its shipped state and returns the affected names.
//
// For a default, the override is discarded and the default file is rewritten
// with the shipped bytes. For a custom template, its file is deleted. An empty
// name or "all" removes every override and rewrites every default.
func (s *Store) Restore(name string) ([]string, error) {
	if name == "" || name == manifest.ReservedName {
		return s.restoreAll()
	}
	if err := manifest.ValidateName(name); err != nil {
		return nil, errdefs.Wrap(errdefs.KindInvalidArgument, err, "", "invalid template name")
	}

	b, isDefault := s.byName[name]
	removed, err := s.removeOverride(name)
	if err != nil {
		return nil, err
	}

	if isDefault {
		if err := s.reseed(b); err != nil {
			return nil, err
		}
		s.log.Info("restored default template", "template", name, "override_removed", removed)
		return []string{name}, nil
	}

	if !removed {
		return nil, s.notFound(name)
	}
	s.log.Info("deleted custom template", "template", name)
	return []string{name}, nil
}

func (s *Store) restoreAll() ([]string, error) {
	overrides, err := s.overrideNames()
	if err != nil {
		return nil, err
	}

	dir := s.overridesDir()
	if err := os.RemoveAll(dir); err != nil {
		return nil, errdefs.IO(err, dir, "removing overrides")
	}
	if err := os.MkdirAll(dir, platform.DirPerm); err != nil {
		return nil, errdefs.IO(err, dir, "creating registry directory")
	}

	affected := make(map[string]bool)
	for _, b := range s.defaults {
		if err := s.reseed(b); err != nil {
			return nil, err
		}
		affected[b.Name] = true
	}
	for _, name := range overrides {
		affected[name] = true
	}

	names := make([]string, 0, len(affected))
	for name := range affected {
		names = append(names, name)
	}
	sort.Strings(names)

	s.log.Info("restored all templates", "defaults", len(s.defaults), "overrides_removed", len(overrides))
	return names, nil
}

// removeOverride deletes the override file for name, reporting whether one existed.
func (s *Store) removeOverride(name string) (bool, error) {
	p := s.overridePath(name)
	err := os.Remove(p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, errdefs.IO(err, p, "removing override")
	}
}

func (s *Store) reseed(b Builtin) error {
	p := s.defaultPath(b.Name)
	if err := platform.WriteFileAtomic(p, b.Data, platform.FilePerm); err != nil {
		return errdefs.IO(err, p, "restoring default template")
	}
	return nil
}
