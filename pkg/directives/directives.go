// Package directives extracts inline enable/disable toggle events
// from source comments. A directive looks like
//
//	// quellint:disable
//	// quellint:enable no-tabs max-line-length
//
// and may appear after //, # or /* comment markers. A bare directive
// toggles the all-rules wildcard scope; naming one or more rules
// toggles only those rules. Events are emitted at the byte offset of
// the directive keyword, front to back, so every per-scope stream
// comes out sorted by position.
package directives

import (
	"regexp"
	"strings"

	"github.com/quellint/quellint/pkg/enablement"
)

var directivePattern = regexp.MustCompile(`quellint:(enable|disable)((?:[ \t]+[A-Za-z0-9_.-]+)*)`)

// Parse scans the source text and returns its toggle streams.
func Parse(text string) enablement.ToggleSet {
	toggles := enablement.ToggleSet{
		Rules: make(map[string][]enablement.ToggleEvent),
	}

	for _, m := range directivePattern.FindAllStringSubmatchIndex(text, -1) {
		event := enablement.ToggleEvent{
			Position: m[0],
			Enabled:  text[m[2]:m[3]] == "enable",
		}

		names := strings.Fields(text[m[4]:m[5]])
		if len(names) == 0 {
			toggles.All = append(toggles.All, event)
			continue
		}
		for _, name := range names {
			toggles.Rules[name] = append(toggles.Rules[name], event)
		}
	}

	return toggles
}
