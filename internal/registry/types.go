package registry

import "github.com/uv-create/uvcreate/internal/manifest"

// Provenance records where the active content for a name comes from.
type Provenance string

const (
	// ProvenanceDefault means the shipped content is active.
	ProvenanceDefault Provenance = "default"
	// ProvenanceOverridden means user content shadows a shipped default.
	ProvenanceOverridden Provenance = "overridden"
	// ProvenanceCustom means the name exists only as a user template.
	ProvenanceCustom Provenance = "custom"
)

// UserDefined reports whether the active content was supplied by the user.
func (p Provenance) UserDefined() bool {
	return p == ProvenanceOverridden || p == ProvenanceCustom
}

// Builtin is a shipped default template in its stored serialization.
type Builtin struct {
	Name string
	Data []byte
}

// Resolved is a template looked up by name.
type Resolved struct {
	Template   *manifest.Template
	Provenance Provenance
	Path       string // stored file backing the active entry
}

// Entry is one row of the registry listing.
type Entry struct {
	Name        string     `json:"name"`
	Provenance  Provenance `json:"provenance"`
	Version     string     `json:"version,omitempty"`
	Description string     `json:"description,omitempty"`
	Files       int        `json:"files"`
	Problem     string     `json:"problem,omitempty"` // set when the stored file cannot be parsed
}
