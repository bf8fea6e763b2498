package registry

import (
	"embed"
	"fmt"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// shippedOrder is the canonical listing order of the built-in templates.
var shippedOrder = []string{"basic", "cli", "web"}

// DefaultTemplate is used by create when no template is named.
const DefaultTemplate = "basic"

// Shipped returns the built-in templates in canonical order.
func Shipped() []Builtin {
	builtins := make([]Builtin, 0, len(shippedOrder))
	for _, name := range shippedOrder {
		data, err := defaultsFS.ReadFile("defaults/" + name + fileExt)
		if err != nil {
			panic(fmt.Sprintf("registry: embedded default %q missing: %v", name, err))
		}
		builtins = append(builtins, Builtin{Name: name, Data: data})
	}
	return builtins
}
