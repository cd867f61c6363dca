// Package reporters summarizes the outcome of a lint run after the
// per-failure output has been formatted. Reporters are resolved by
// logical name with the "Reporter" suffix, the same way rules and
// formatters are.
package reporters

import (
	"fmt"
	"io"
	"sort"

	"github.com/quellint/quellint/pkg/errors"
	"github.com/quellint/quellint/pkg/lint"
	"github.com/quellint/quellint/pkg/plugins"
	"github.com/quellint/quellint/pkg/registry"
)

// RoleSuffix is the naming suffix for reporter implementations
const RoleSuffix = "Reporter"

// Reporter writes a run summary to w
type Reporter interface {
	Report(w io.Writer, summary lint.Summary) error
}

// Factory constructs a reporter instance
type Factory func() Reporter

// BuiltinSource is the name of the built-in reporter set
const BuiltinSource = "builtin"

var sources = registry.New[*plugins.Source[Factory]]()

// RegisterSource makes a reporter source available under its name
func RegisterSource(src *plugins.Source[Factory]) error {
	return sources.Register(src.Name(), src)
}

// SearchPath maps source names to sources; unknown names become nil
// entries that resolution skips.
func SearchPath(names ...string) []*plugins.Source[Factory] {
	path := make([]*plugins.Source[Factory], len(names))
	for i, name := range names {
		if src, err := sources.Get(name); err == nil {
			path[i] = src
		}
	}
	return path
}

// Resolve returns a reporter instance by logical name, searching the
// given sources in order.
func Resolve(name string, sourceNames ...string) (Reporter, error) {
	desc, ok := plugins.Resolve(name, RoleSuffix, SearchPath(sourceNames...))
	if !ok {
		return nil, errors.Newf(errors.ErrReporterNotFound, "reporter '%s' not found", name)
	}
	return desc.Make(), nil
}

// SummaryReporter prints failure totals and a per-rule breakdown
type SummaryReporter struct{}

// Report implements Reporter
func (r *SummaryReporter) Report(w io.Writer, summary lint.Summary) error {
	if len(summary.Failures) == 0 {
		_, err := fmt.Fprintf(w, "no problems in %d files\n", summary.Files)
		return err
	}

	if _, err := fmt.Fprintf(w, "%d problems in %d files\n", len(summary.Failures), summary.Files); err != nil {
		return err
	}

	byRule := summary.ByRule()
	names := make([]string, 0, len(byRule))
	for name := range byRule {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", name, byRule[name]); err != nil {
			return err
		}
	}
	return nil
}

// QuietReporter writes nothing; the process exit status carries the
// outcome
type QuietReporter struct{}

// Report implements Reporter
func (r *QuietReporter) Report(io.Writer, lint.Summary) error {
	return nil
}

func init() {
	src := plugins.NewSource(BuiltinSource,
		plugins.Descriptor[Factory]{ID: "SummaryReporter", Make: func() Reporter { return &SummaryReporter{} }},
		plugins.Descriptor[Factory]{ID: "QuietReporter", Make: func() Reporter { return &QuietReporter{} }},
	)
	if err := RegisterSource(src); err != nil {
		panic(err)
	}
}
