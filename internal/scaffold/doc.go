// Package scaffold materializes a template into a project directory. It powers
// the "uv-create create" command: every file path and body is rendered with the
// project variables and written in declared order, after which the output is
// checked for leftover placeholders and an unparseable pyproject.toml.
package scaffold
