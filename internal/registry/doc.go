// Package registry is the durable template store. Shipped defaults are
// embedded in the binary and seeded into <root>/defaults/ on first use;
// user templates live in <root>/overrides/, one YAML file per name. An
// override shadows the default of the same name until it is restored.
package registry
