// Package render substitutes {{key}} placeholders in template text.
//
// A placeholder whose key has no value in the mapping is left in the output
// exactly as written. Optional variables (an author email nobody supplied, a
// key a user template invented) therefore never erase template content, and
// the leftover token shows up in the generated file where it is easy to spot.
// Substitution is a single pass: values are inserted literally and never
// scanned for further placeholders.
package render

import "regexp"

// Well-known variable keys populated by the create command.
const (
	KeyProjectName = "project_name"
	KeyPackageName = "package_name"
	KeyAuthorName  = "author_name"
	KeyAuthorEmail = "author_email"
	KeyYear        = "year"
)

// Variables maps placeholder keys to substitution values.
type Variables map[string]string

// placeholderPattern matches {{key}} with optional inner whitespace.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Render replaces every placeholder in content whose key is present in vars.
func Render(content string, vars Variables) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(token string) string {
		key := placeholderPattern.FindStringSubmatch(token)[1]
		if v, ok := vars[key]; ok {
			return v
		}
		return token
	})
}

// Placeholders returns the distinct keys referenced in content, in order of
// first appearance.
func Placeholders(content string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}

// Unresolved returns the keys in content that Render would leave verbatim.
func Unresolved(content string, vars Variables) []string {
	var missing []string
	for _, key := range Placeholders(content) {
		if _, ok := vars[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
