package scaffold

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/uv-create/uvcreate/internal/errdefs"
	"github.com/uv-create/uvcreate/internal/logging"
	"github.com/uv-create/uvcreate/internal/manifest"
	"github.com/uv-create/uvcreate/internal/platform"
	"github.com/uv-create/uvcreate/internal/render"
)

// pyprojectFile is checked for TOML syntax after rendering.
const pyprojectFile = "pyproject.toml"

// Options controls a materialization.
type Options struct {
	// Overwrite allows writing into a non-empty directory, replacing files
	// with the same path. Used to retry a partially written project.
	Overwrite bool
	Logger    *slog.Logger
}

// Result holds the outcome of a materialization.
type Result struct {
	OutputDir string
	Files     []string // rendered relative paths, in write order
	Warnings  []string
}

// Materialize renders every file of t with vars and writes it under dest.
//
// Paths are rendered and checked before the destination is touched. Writes
// are sequential and not transactional: if one fails, the files written
// before it remain and the returned IO error names the failing path.
func Materialize(t *manifest.Template, vars render.Variables, dest string, opts Options) (*Result, error) {
	log := logging.OrDiscard(opts.Logger)

	rels, err := renderPaths(t, vars)
	if err != nil {
		return &Result{OutputDir: dest}, err
	}

	if err := prepareDest(dest, opts.Overwrite); err != nil {
		return nil, err
	}

	result := &Result{OutputDir: dest}

	for i, f := range t.Files {
		rel := rels[i]
		content := render.Render(f.Content, vars)

		if err := writeFile(dest, rel, content, f.Executable); err != nil {
			return result, err
		}
		result.Files = append(result.Files, rel)
		log.Debug("wrote file", "path", rel, "bytes", len(content), "executable", f.Executable)

		for _, key := range render.Unresolved(f.Path+"\n"+f.Content, vars) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: placeholder {{%s}} has no value", rel, key))
		}
		if rel == pyprojectFile {
			if w := checkPyproject(content); w != "" {
				result.Warnings = append(result.Warnings, w)
			}
		}
	}

	for _, w := range result.Warnings {
		log.Warn(w)
	}
	log.Info("materialized template", "template", t.Name, "dest", dest, "files", len(result.Files))
	return result, nil
}

// renderPaths renders and cleans every file path. No two files may render
// to the same path.
func renderPaths(t *manifest.Template, vars render.Variables) ([]string, error) {
	rels := make([]string, len(t.Files))
	seen := make(map[string]int, len(t.Files))
	for i, f := range t.Files {
		rel, err := manifest.CleanPath(render.Render(f.Path, vars))
		if err != nil {
			return nil, errdefs.Wrap(errdefs.KindInvalidTemplate, err, f.Path, "rendered path is not inside the project")
		}
		if j, ok := seen[rel]; ok {
			return nil, errdefs.InvalidTemplate("files[%d] %q and files[%d] %q both render to %q", j, t.Files[j].Path, i, f.Path, rel)
		}
		seen[rel] = i
		rels[i] = rel
	}
	return rels, nil
}

// prepareDest ensures dest is a directory that may receive the project.
func prepareDest(dest string, overwrite bool) error {
	info, err := os.Stat(dest)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(dest, platform.DirPerm); err != nil {
			return errdefs.IO(err, dest, "creating project directory")
		}
		return nil
	case err != nil:
		return errdefs.IO(err, dest, "inspecting project directory")
	case !info.IsDir():
		return errdefs.AlreadyExists(dest, "destination exists and is not a directory")
	}

	if overwrite {
		return nil
	}
	entries, err := os.ReadDir(dest)
	if err != nil {
		return errdefs.IO(err, dest, "reading project directory")
	}
	if len(entries) > 0 {
		return errdefs.AlreadyExists(dest, "destination directory is not empty; use --force to overwrite")
	}
	return nil
}

func writeFile(dest, rel, content string, executable bool) error {
	p := filepath.Join(dest, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), platform.DirPerm); err != nil {
		return errdefs.IO(err, rel, "creating directory")
	}

	mode := platform.FilePerm
	if executable {
		mode = platform.ExecutablePerm
	}
	if err := os.WriteFile(p, []byte(content), mode); err != nil {
		return errdefs.IO(err, rel, "writing file")
	}
	// WriteFile keeps the mode of an existing file and is subject to umask.
	if executable {
		if err := platform.Chmod(p, platform.ExecutablePerm); err != nil {
			return errdefs.IO(err, rel, "setting permissions")
		}
	}
	return nil
}

func checkPyproject(content string) string {
	var doc map[string]any
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		msg := strings.ReplaceAll(err.Error(), "\n", " ")
		return fmt.Sprintf("%s: not valid TOML: %s", pyprojectFile, msg)
	}
	return ""
}
