// Package rules activates configured checking rules: each rule name
// in the configuration is resolved across the registered plugin
// sources, its inline enable/disable toggles are merged into disabled
// intervals, and the rule is constructed with its name, configured
// value and intervals. Loading is all-or-nothing: every unresolved
// name is collected into a single aggregate error.
package rules
