package rules

import (
	"sort"
	"strings"

	"github.com/quellint/quellint/pkg/enablement"
	"github.com/quellint/quellint/pkg/lint"
	"github.com/quellint/quellint/pkg/logging"
	"github.com/quellint/quellint/pkg/plugins"
)

// ConfigEntry maps one rule's logical name to its opaque
// configuration value. The value's shape is rule-specific and not
// interpreted here.
type ConfigEntry struct {
	Name  string
	Value interface{}
}

// Config is the ordered rule configuration; rules are resolved and
// constructed in entry order.
type Config []ConfigEntry

// ConfigFromMap converts a name-to-value map into a Config with
// entries sorted by name, so map-derived configurations iterate
// deterministically.
func ConfigFromMap(m map[string]interface{}) Config {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	cfg := make(Config, 0, len(names))
	for _, name := range names {
		cfg = append(cfg, ConfigEntry{Name: name, Value: m[name]})
	}
	return cfg
}

// NotFoundError reports every configured rule that could not be
// resolved in any search location. Loading never fails on the first
// miss; all misses are batched into one error so the user sees the
// full list at once.
type NotFoundError struct {
	Missing []string
}

// Error lists the missing rule names, newline-joined.
func (e *NotFoundError) Error() string {
	return "could not find the following rules specified in the configuration:\n" +
		strings.Join(e.Missing, "\n")
}

// Load resolves every configured rule across the search path and
// constructs the instances with their merged disabled intervals.
// Either all configured rules resolve, or no rules are returned and
// the error carries every missing name.
func Load(cfg Config, toggles enablement.ToggleSet, path []*plugins.Source[Factory]) ([]lint.Rule, error) {
	logger := logging.GetLogger("rules.loader")

	loaded := make([]lint.Rule, 0, len(cfg))
	var missing []string

	for _, entry := range cfg {
		desc, ok := plugins.Resolve(entry.Name, RoleSuffix, path)
		if !ok {
			logger.Debug().Str("rule", entry.Name).Msg("Rule not found in any source")
			missing = append(missing, entry.Name)
			continue
		}

		intervals := enablement.Merge(toggles.ForRule(entry.Name), toggles.All)
		loaded = append(loaded, desc.Make(entry.Name, entry.Value, intervals))
	}

	if len(missing) > 0 {
		return nil, &NotFoundError{Missing: missing}
	}

	logger.Debug().Int("rules", len(loaded)).Msg("Rules loaded")
	return loaded, nil
}

// LoadFromSources is Load with the search path given as registered
// source names; unknown names are skipped.
func LoadFromSources(cfg Config, toggles enablement.ToggleSet, sourceNames ...string) ([]lint.Rule, error) {
	return Load(cfg, toggles, SearchPath(sourceNames...))
}
