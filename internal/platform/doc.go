// Package platform wraps the filesystem operations whose behavior differs
// across operating systems: permission bits (a no-op on Windows) and
// replace-by-rename writes used for registry files.
package platform
