// Package app maps the uv-create commands onto the template store and the
// materializer. The command set is closed: Command is implemented only by
// the types in this package, and Dispatch handles each of them.
package app
