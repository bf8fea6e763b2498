// Package manifest defines the template document format: a name, optional
// version and description, and an ordered list of files. Documents are read
// from YAML or TOML, validated against an embedded JSON Schema, checked for
// semver versions and safe relative paths, and stored as canonical YAML.
package manifest
