// Package layouts registers all known export layouts with the core registry.
// Import this package to ensure all layouts are registered.
package layouts

// DefaultKey is the layout used when none is configured.
const DefaultKey = DCECEPM25Key
