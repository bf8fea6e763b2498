// Package config manages user-level settings stored at ~/.uv_templates/config.yaml.
// Settings can also come from UV_CREATE_* environment variables. It resolves
// the template registry location and the author defaults used by create.
package config
