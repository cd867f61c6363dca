package builtin

import (
	"github.com/quellint/quellint/pkg/plugins"
	"github.com/quellint/quellint/pkg/rules"
)

func init() {
	src := plugins.NewSource(rules.BuiltinSource,
		plugins.Descriptor[rules.Factory]{
			ID:   "NoTrailingWhitespaceRule",
			Make: NewNoTrailingWhitespaceRule,
		},
		plugins.Descriptor[rules.Factory]{
			ID:   "NoTabsRule",
			Make: NewNoTabsRule,
		},
		plugins.Descriptor[rules.Factory]{
			// Registered under a raw-name override: the logical name
			// "max-line-length" matches the RawName field verbatim
			// instead of going through normalization.
			ID:      "LineLengthLimitRule",
			RawName: "max-line-length",
			Make:    NewMaxLineLengthRule,
		},
	)
	rules.MustRegisterSource(src)
}
