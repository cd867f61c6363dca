// Package builtin provides the rules that ship with quellint and
// registers them as the "builtin" rule source.
package builtin
