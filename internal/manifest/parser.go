package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"github.com/uv-create/uvcreate/internal/errdefs"
	"go.yaml.in/yaml/v3"
)

// ReservedName is the restore target meaning "every template"; no template
// may be registered under it.
const ReservedName = "all"

// FormatFromPath picks the document format from a file extension.
// Anything other than .toml is read as YAML.
func FormatFromPath(p string) Format {
	if strings.EqualFold(filepath.Ext(p), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads a template document from disk and parses it.
// Unreadable files are IO errors; anything else is InvalidTemplate.
func Load(p string) (*Template, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, errdefs.IO(err, p, "reading template source")
	}

	t, err := Parse(data, FormatFromPath(p))
	if err != nil {
		var e *errdefs.Error
		if errors.As(err, &e) && e.Path == "" {
			e.Path = p
		}
		return nil, err
	}
	return t, nil
}

// Parse validates data against the template schema, decodes it, and runs
// the semantic checks the schema cannot express.
func Parse(data []byte, format Format) (*Template, error) {
	result, err := Validate(data, format)
	if err != nil {
		return nil, errdefs.Wrap(errdefs.KindInvalidTemplate, err, "", "malformed template")
	}
	if !result.Valid {
		return nil, errdefs.InvalidTemplate("template failed validation: %s", result.Summary())
	}

	var t Template
	if err := unmarshal(data, format, &t); err != nil {
		return nil, errdefs.Wrap(errdefs.KindInvalidTemplate, err, "", "decoding template")
	}

	if err := t.Check(); err != nil {
		return nil, errdefs.Wrap(errdefs.KindInvalidTemplate, err, "", "invalid template")
	}
	return &t, nil
}

// Check verifies the name, the version, and every file path.
func (t *Template) Check() error {
	if t.Name != "" {
		if err := ValidateName(t.Name); err != nil {
			return err
		}
	}

	if t.Version != "" {
		if _, err := parseSemver(t.Version); err != nil {
			return fmt.Errorf("version %q is not a semantic version: %w", t.Version, err)
		}
	}

	if len(t.Files) == 0 {
		return fmt.Errorf("template has no files")
	}

	seen := make(map[string]bool, len(t.Files))
	for i, f := range t.Files {
		clean, err := CleanPath(f.Path)
		if err != nil {
			return fmt.Errorf("files[%d]: %w", i, err)
		}
		if seen[clean] {
			return fmt.Errorf("files[%d]: duplicate path %q", i, f.Path)
		}
		seen[clean] = true
	}
	return nil
}

// CleanPath normalizes a slash-separated template path and rejects paths
// that would escape the project directory.
func CleanPath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", fmt.Errorf("empty path")
	}
	clean := path.Clean(strings.ReplaceAll(p, `\`, "/"))
	if clean == "." {
		return "", fmt.Errorf("path %q names the project root", p)
	}
	if !filepath.IsLocal(filepath.FromSlash(clean)) {
		return "", fmt.Errorf("path %q must be relative and stay inside the project", p)
	}
	return clean, nil
}

// ValidateName checks a registry name: non-empty, no path separators, not
// a dot entry, and not the reserved restore target.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("template name must not be empty")
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("template name %q must not contain path separators", name)
	case name == "." || name == "..":
		return fmt.Errorf("template name %q is not allowed", name)
	case name == ReservedName:
		return fmt.Errorf("template name %q is reserved", name)
	}
	return nil
}

// Marshal serializes t as canonical YAML, the on-disk registry format.
// File bodies are written as literal blocks where YAML can carry them
// verbatim and as escaped double-quoted scalars otherwise; the output
// always decodes back to t.
func Marshal(t *Template) ([]byte, error) {
	data, err := encode(t, false)
	if err != nil {
		return nil, err
	}
	var back Template
	if err := yaml.Unmarshal(data, &back); err == nil && back.Equal(t) {
		return data, nil
	}
	return encode(t, true)
}

// encode writes t through a node tree so each scalar's style is chosen
// here rather than by the encoder. With quoteAll every string is escaped.
func encode(t *Template, quoteAll bool) ([]byte, error) {
	str := func(v string, content bool) *yaml.Node {
		n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
		if quoteAll || (content && !blockSafe(v)) {
			n.Style = yaml.DoubleQuotedStyle
		}
		return n
	}
	key := func(k string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
	}

	files := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, f := range t.Files {
		entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		entry.Content = append(entry.Content,
			key("path"), str(f.Path, false),
			key("content"), str(f.Content, true))
		if f.Executable {
			entry.Content = append(entry.Content, key("executable"),
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"})
		}
		files.Content = append(files.Content, entry)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	doc.Content = append(doc.Content, key("name"), str(t.Name, false))
	if t.Version != "" {
		doc.Content = append(doc.Content, key("version"), str(t.Version, false))
	}
	if t.Description != "" {
		doc.Content = append(doc.Content, key("description"), str(t.Description, false))
	}
	doc.Content = append(doc.Content, key("files"), files)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding template %s: %w", t.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding template %s: %w", t.Name, err)
	}
	return buf.Bytes(), nil
}

// blockSafe reports whether s survives a literal block unchanged: no line
// may start with a tab and every rune must be printable.
func blockSafe(s string) bool {
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, "\t") {
			return false
		}
	}
	for _, r := range s {
		if r == '\n' || r == '\t' {
			continue
		}
		if r == '\uFEFF' || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// decode unmarshals data into a generic document for schema validation.
func decode(data []byte, format Format) (any, error) {
	var doc any
	if err := unmarshal(data, format, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parsing TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parsing YAML: %w", err)
		}
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
