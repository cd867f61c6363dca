// Package registry provides a generic, type-safe registry for plugin
// sources. Sources register themselves by name through init() functions
// or an explicit setup step; lookups by unknown names are not errors at
// this layer, callers decide severity.
package registry
