// Package errdefs defines the error kinds surfaced by uv-create. Every
// failure that reaches the command line carries exactly one Kind, which the
// CLI uses to render the message and choose the process exit code.
package errdefs
