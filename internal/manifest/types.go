package manifest

// File is one entry of a template: a slash-separated relative path and the
// content written there. Both may contain {{key}} placeholders.
type File struct {
	Path       string `yaml:"path" toml:"path" json:"path"`
	Content    string `yaml:"content" toml:"content" json:"content"`
	Executable bool   `yaml:"executable,omitempty" toml:"executable,omitempty" json:"executable,omitempty"`
}

// Template is a named, ordered collection of files.
type Template struct {
	Name        string `yaml:"name" toml:"name" json:"name"`
	Version     string `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Files       []File `yaml:"files" toml:"files" json:"files"`
}

// Paths returns the file paths in declared order.
func (t *Template) Paths() []string {
	paths := make([]string, len(t.Files))
	for i, f := range t.Files {
		paths[i] = f.Path
	}
	return paths
}

// Equal reports whether t and o hold the same header and the same files in
// the same order.
func (t *Template) Equal(o *Template) bool {
	if t.Name != o.Name || t.Version != o.Version || t.Description != o.Description {
		return false
	}
	if len(t.Files) != len(o.Files) {
		return false
	}
	for i := range t.Files {
		if t.Files[i] != o.Files[i] {
			return false
		}
	}
	return true
}

// Format identifies the serialization of a template document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)
