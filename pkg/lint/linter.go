package lint

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/quellint/quellint/pkg/enablement"
	"github.com/quellint/quellint/pkg/logging"
)

// Linter runs a fixed set of loaded rules over sources and filters
// each rule's findings through that rule's disabled intervals.
type Linter struct {
	rules  []Rule
	logger zerolog.Logger
}

// New creates a Linter over the given rules.
func New(rules []Rule) *Linter {
	return &Linter{
		rules:  rules,
		logger: logging.GetLogger("lint.linter"),
	}
}

// Run applies every enabled rule to the source and returns the
// surviving failures sorted by position, then rule name.
func (l *Linter) Run(src *Source) []Failure {
	var failures []Failure

	for _, rule := range l.rules {
		if !rule.Enabled() {
			l.logger.Debug().Str("rule", rule.Name()).Msg("Rule disabled by configuration, skipping")
			continue
		}

		found := rule.Apply(src)
		intervals := rule.DisabledIntervals()

		kept := found[:0]
		for _, f := range found {
			if enablement.Covered(f.Position, intervals) {
				continue
			}
			kept = append(kept, f)
		}

		l.logger.Debug().
			Str("rule", rule.Name()).
			Str("file", src.Name).
			Int("found", len(found)).
			Int("suppressed", len(found)-len(kept)).
			Msg("Rule applied")

		failures = append(failures, kept...)
	}

	sort.SliceStable(failures, func(i, j int) bool {
		if failures[i].Position != failures[j].Position {
			return failures[i].Position < failures[j].Position
		}
		return failures[i].RuleName < failures[j].RuleName
	})

	return failures
}

// RunAll lints every source and returns the combined summary.
func (l *Linter) RunAll(sources []*Source) Summary {
	summary := Summary{Files: len(sources)}
	for _, src := range sources {
		summary.Failures = append(summary.Failures, l.Run(src)...)
	}
	return summary
}
