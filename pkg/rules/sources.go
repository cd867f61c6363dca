package rules

import (
	"github.com/quellint/quellint/pkg/logging"
	"github.com/quellint/quellint/pkg/plugins"
	"github.com/quellint/quellint/pkg/registry"
)

// BuiltinSource is the name under which the built-in rule set
// registers itself.
const BuiltinSource = "builtin"

// sources maps search-location names to their rule descriptors,
// populated by explicit registration at process start.
var sources = registry.New[*plugins.Source[Factory]]()

// RegisterSource makes a rule source available under its name.
// Registration normally happens from init() functions; duplicate
// names panic there via registry.MustRegister.
func RegisterSource(src *plugins.Source[Factory]) error {
	return sources.Register(src.Name(), src)
}

// MustRegisterSource registers a rule source and panics on failure.
func MustRegisterSource(src *plugins.Source[Factory]) {
	registry.MustRegister(sources, src.Name(), src)
}

// LookupSource returns the rule source registered under name, or nil
// when the location is unknown. Absent locations are not errors; the
// resolver skips them.
func LookupSource(name string) *plugins.Source[Factory] {
	src, err := sources.Get(name)
	if err != nil {
		return nil
	}
	return src
}

// SourceNames returns all registered source names, sorted.
func SourceNames() []string {
	return sources.List()
}

// SearchPath maps an ordered list of source names to the sources
// themselves. Unknown names become nil entries, which Resolve skips,
// preserving the caller's precedence order for the rest.
func SearchPath(names ...string) []*plugins.Source[Factory] {
	logger := logging.GetLogger("rules.sources")

	path := make([]*plugins.Source[Factory], len(names))
	for i, name := range names {
		path[i] = LookupSource(name)
		if path[i] == nil {
			logger.Debug().Str("source", name).Msg("Unknown rule source, skipping")
		}
	}
	return path
}
