package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/uv-create/uvcreate/internal/render"
)

// fallbackAuthor is used when neither flags, config, nor $USER name an author.
const fallbackAuthor = "Your Name"

// Defaults are configured values used when a Create leaves a field empty.
type Defaults struct {
	AuthorName  string
	AuthorEmail string
}

// Variables builds the placeholder mapping for a project. Empty values are
// left out so their placeholders survive rendering.
func Variables(c Create, d Defaults, now time.Time) render.Variables {
	author := firstNonEmpty(c.AuthorName, d.AuthorName, os.Getenv("USER"), fallbackAuthor)
	email := firstNonEmpty(c.AuthorEmail, d.AuthorEmail, DeriveEmail(author))

	vars := render.Variables{}
	set := func(key, value string) {
		if value != "" {
			vars[key] = value
		}
	}
	set(render.KeyProjectName, c.ProjectName)
	set(render.KeyPackageName, PackageName(c.ProjectName))
	set(render.KeyAuthorName, author)
	set(render.KeyAuthorEmail, email)
	set(render.KeyYear, strconv.Itoa(now.Year()))
	return vars
}

// PackageName converts a project name to an importable Python package name.
func PackageName(project string) string {
	return strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(project)))
}

// DeriveEmail builds a placeholder address from an author name,
// e.g. "Alice Smith" -> "alice.smith@example.com".
func DeriveEmail(author string) string {
	local := strings.Join(strings.Fields(strings.ToLower(author)), ".")
	if local == "" {
		return ""
	}
	return local + "@example.com"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
