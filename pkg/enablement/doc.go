// Package enablement computes the character ranges where a rule's
// findings are suppressed, from the inline enable/disable toggle
// streams extracted from a source file. It is pure computation with
// no I/O and no dependencies on the rest of the linter.
package enablement
