package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	vars := Variables{
		KeyProjectName: "demo",
		KeyAuthorName:  "Alice",
		KeyAuthorEmail: "alice@example.com",
	}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"single", "# {{project_name}}", "# demo"},
		{"repeated", "{{project_name}}/{{project_name}}", "demo/demo"},
		{"inner whitespace", "by {{ author_name }}", "by Alice"},
		{"several keys", `{ name = "{{author_name}}", email = "{{author_email}}" }`, `{ name = "Alice", email = "alice@example.com" }`},
		{"unknown key left verbatim", "{{unknown_key}}", "{{unknown_key}}"},
		{"mixed known and unknown", "{{project_name}}-{{version}}", "demo-{{version}}"},
		{"single braces untouched", `return {"message": "Hello World"}`, `return {"message": "Hello World"}`},
		{"invalid key untouched", "{{1abc}} {{a-b}}", "{{1abc}} {{a-b}}"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.content, vars))
		})
	}
}

func TestRenderIsNotRecursive(t *testing.T) {
	vars := Variables{
		KeyProjectName: "{{author_name}}",
		KeyAuthorName:  "Alice",
	}
	assert.Equal(t, "{{author_name}}", Render("{{project_name}}", vars))
}

func TestRenderEmptyValue(t *testing.T) {
	vars := Variables{KeyAuthorEmail: ""}
	assert.Equal(t, "<>", Render("<{{author_email}}>", vars))
}

func TestPlaceholders(t *testing.T) {
	content := "{{project_name}} {{ author_name }} {{project_name}} {{year}}"
	assert.Equal(t, []string{"project_name", "author_name", "year"}, Placeholders(content))
	assert.Empty(t, Placeholders("no tokens here"))
}

func TestUnresolved(t *testing.T) {
	vars := Variables{KeyProjectName: "demo"}
	got := Unresolved("{{project_name}} {{author_email}} {{author_email}} {{year}}", vars)
	assert.Equal(t, []string{"author_email", "year"}, got)
	assert.Empty(t, Unresolved("{{project_name}}", vars))
}
