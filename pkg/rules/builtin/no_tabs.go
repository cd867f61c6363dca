package builtin

import (
	"strings"

	"github.com/quellint/quellint/pkg/enablement"
	"github.com/quellint/quellint/pkg/lint"
	"github.com/quellint/quellint/pkg/rules"
)

// NoTabsName is the logical name of the tab indentation rule
const NoTabsName = "no-tabs"

// NoTabsRule flags tab characters anywhere in the source
type NoTabsRule struct {
	rules.Base
}

// NewNoTabsRule is the rule factory
func NewNoTabsRule(name string, value interface{}, intervals []enablement.DisabledInterval) lint.Rule {
	return &NoTabsRule{Base: rules.NewBase(name, value, intervals)}
}

// Doc returns the rule's markdown documentation
func (r *NoTabsRule) Doc() string {
	return `# no-tabs

Flags tab characters in the source text.

Use spaces for indentation so the file renders identically at any
tab-stop setting.
`
}

// Apply reports every tab character at its byte offset
func (r *NoTabsRule) Apply(src *lint.Source) []lint.Failure {
	var failures []lint.Failure

	offset := 0
	for {
		idx := strings.IndexByte(src.Text[offset:], '\t')
		if idx < 0 {
			break
		}
		pos := offset + idx
		failures = append(failures, lint.NewFailure(src, r.Name(), pos, pos+1, "tab character"))
		offset = pos + 1
	}

	return failures
}
