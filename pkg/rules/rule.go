package rules

import (
	"github.com/quellint/quellint/pkg/enablement"
	"github.com/quellint/quellint/pkg/lint"
)

// RoleSuffix is the naming suffix for rule implementations; the
// canonical identifier for "no-tabs" is NoTabsRule.
const RoleSuffix = "Rule"

// Factory constructs a rule instance from its logical name, its
// opaque configuration value and its pre-computed disabled intervals.
type Factory func(name string, value interface{}, intervals []enablement.DisabledInterval) lint.Rule

// Base carries the state common to rule implementations. Rule types
// embed it and implement Apply on top.
type Base struct {
	name      string
	value     interface{}
	intervals []enablement.DisabledInterval
}

// NewBase creates the embedded base for a rule instance.
func NewBase(name string, value interface{}, intervals []enablement.DisabledInterval) Base {
	return Base{name: name, value: value, intervals: intervals}
}

// Name returns the rule's logical name.
func (b *Base) Name() string {
	return b.name
}

// Value returns the rule's opaque configuration value.
func (b *Base) Value() interface{} {
	return b.value
}

// Enabled reports whether the rule is switched on by configuration.
// Only an explicit false value disables a rule; any other value,
// including rule-specific option shapes, enables it.
func (b *Base) Enabled() bool {
	v, ok := b.value.(bool)
	return !ok || v
}

// DisabledIntervals returns the rule's suppression ranges.
func (b *Base) DisabledIntervals() []enablement.DisabledInterval {
	return b.intervals
}
