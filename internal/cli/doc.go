// Package cli defines the Cobra command tree for the uv-create CLI. Each file
// in this package registers one top-level command (create, list, show, etc.)
// with the root command. Commands build an app.Command, hand it to the
// dispatcher, and only handle flag parsing and output formatting.
package cli
