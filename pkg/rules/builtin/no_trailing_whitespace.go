package builtin

import (
	"strings"

	"github.com/quellint/quellint/pkg/enablement"
	"github.com/quellint/quellint/pkg/lint"
	"github.com/quellint/quellint/pkg/rules"
)

// NoTrailingWhitespaceName is the logical name of the trailing
// whitespace rule
const NoTrailingWhitespaceName = "no-trailing-whitespace"

// NoTrailingWhitespaceRule flags whitespace at the end of a line
type NoTrailingWhitespaceRule struct {
	rules.Base
}

// NewNoTrailingWhitespaceRule is the rule factory
func NewNoTrailingWhitespaceRule(name string, value interface{}, intervals []enablement.DisabledInterval) lint.Rule {
	return &NoTrailingWhitespaceRule{Base: rules.NewBase(name, value, intervals)}
}

// Doc returns the rule's markdown documentation
func (r *NoTrailingWhitespaceRule) Doc() string {
	return `# no-trailing-whitespace

Flags spaces and tabs at the end of a line.

Trailing whitespace is invisible in most editors and produces noisy
diffs when another editor strips it on save.
`
}

// Apply scans each line for trailing spaces or tabs
func (r *NoTrailingWhitespaceRule) Apply(src *lint.Source) []lint.Failure {
	var failures []lint.Failure

	for i, line := range src.Lines() {
		trimmed := strings.TrimRight(line, " \t")
		if len(trimmed) == len(line) {
			continue
		}

		lineStart := src.LineStart(i)
		start := lineStart + len(trimmed)
		end := lineStart + len(line)
		failures = append(failures, lint.NewFailure(src, r.Name(), start, end, "trailing whitespace"))
	}

	return failures
}
