package builtin

import (
	"fmt"

	"github.com/quellint/quellint/pkg/enablement"
	"github.com/quellint/quellint/pkg/lint"
	"github.com/quellint/quellint/pkg/rules"
)

// MaxLineLengthName is the logical name of the line length rule
const MaxLineLengthName = "max-line-length"

// DefaultMaxLineLength is used when the rule's value carries no limit
const DefaultMaxLineLength = 120

// MaxLineLengthRule flags lines longer than the configured limit.
// Its configuration value is the limit itself (an integer); any
// non-numeric value falls back to DefaultMaxLineLength.
type MaxLineLengthRule struct {
	rules.Base
	limit int
}

// NewMaxLineLengthRule is the rule factory
func NewMaxLineLengthRule(name string, value interface{}, intervals []enablement.DisabledInterval) lint.Rule {
	limit := DefaultMaxLineLength
	switch v := value.(type) {
	case int:
		limit = v
	case int64:
		limit = int(v)
	case float64:
		limit = int(v)
	}
	if limit <= 0 {
		limit = DefaultMaxLineLength
	}

	return &MaxLineLengthRule{
		Base:  rules.NewBase(name, value, intervals),
		limit: limit,
	}
}

// Doc returns the rule's markdown documentation
func (r *MaxLineLengthRule) Doc() string {
	return fmt.Sprintf(`# max-line-length

Flags lines longer than the configured limit (default %d).

Configure the limit as the rule's value:

    [rules]
    max-line-length = 100
`, DefaultMaxLineLength)
}

// Apply reports each line exceeding the limit, anchored at the first
// character past it
func (r *MaxLineLengthRule) Apply(src *lint.Source) []lint.Failure {
	var failures []lint.Failure

	for i, line := range src.Lines() {
		if len(line) <= r.limit {
			continue
		}

		lineStart := src.LineStart(i)
		start := lineStart + r.limit
		end := lineStart + len(line)
		msg := fmt.Sprintf("line is %d characters, maximum allowed is %d", len(line), r.limit)
		failures = append(failures, lint.NewFailure(src, r.Name(), start, end, msg))
	}

	return failures
}
