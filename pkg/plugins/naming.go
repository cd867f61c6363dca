package plugins

import (
	"strings"
	"unicode"
)

// ExpectedIdentifier computes the canonical identifier a logical name
// resolves to for a given role suffix. Leading and trailing runs of
// hyphens and underscores are stripped and reattached around the
// result; the interior is camel-cased with its first character
// uppercased, and the suffix is appended before the trailing run.
//
//	ExpectedIdentifier("no-unused-var", "Rule")  == "NoUnusedVarRule"
//	ExpectedIdentifier("_foo_", "Rule")          == "_FooRule_"
func ExpectedIdentifier(logicalName, suffix string) string {
	lead := len(logicalName) - len(strings.TrimLeft(logicalName, "-_"))
	interior := logicalName[lead:]
	trail := len(interior) - len(strings.TrimRight(interior, "-_"))
	interior = interior[:len(interior)-trail]

	return logicalName[:lead] + upperFirst(camelize(interior)) + suffix + logicalName[len(logicalName)-trail:]
}

// camelize joins hyphen, underscore or space delimited words into a
// single camel-cased identifier. The first word keeps its case; the
// first letter of every following word is uppercased.
func camelize(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	boundary := false
	for i, r := range name {
		if r == '-' || r == '_' || r == ' ' {
			boundary = true
			continue
		}
		if boundary && i > 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		boundary = false
	}
	return b.String()
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
