package app

// Command is one of Create, List, Show, SaveTemplate, or Restore.
type Command interface {
	command()
}

// Create materializes a template as a new project.
type Create struct {
	// ProjectName is required; it names the default destination directory.
	ProjectName string
	// Template defaults to registry.DefaultTemplate.
	Template string
	// TargetDir defaults to ./<ProjectName>.
	TargetDir string
	// AuthorName falls back to the configured author, then $USER.
	AuthorName string
	// AuthorEmail falls back to the configured email, then one derived
	// from the author name.
	AuthorEmail string
	// Force writes into a non-empty destination.
	Force bool
}

// List reports every registered template.
type List struct{}

// Show resolves one template.
type Show struct {
	Name string
}

// SaveTemplate stores the document at File under Name.
type SaveTemplate struct {
	Name string
	File string
}

// Restore reverts Name to its shipped state; an empty Name means all.
type Restore struct {
	Name string
}

func (Create) command()       {}
func (List) command()         {}
func (Show) command()         {}
func (SaveTemplate) command() {}
func (Restore) command()      {}
