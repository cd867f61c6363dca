package enablement

// UntilEnd is the sentinel end position for an interval that runs to
// the end of the source file.
const UntilEnd = -1

// ToggleEvent is a single position-tagged enable/disable directive.
// Sequences for one scope must be sorted ascending by Position; this
// is a caller contract, not verified here.
type ToggleEvent struct {
	Position int
	Enabled  bool
}

// DisabledInterval is a character-offset range where a rule's findings
// are suppressed. End == UntilEnd means the range is open-ended.
type DisabledInterval struct {
	Start int
	End   int
}

// Open reports whether the interval runs to the end of the file.
func (d DisabledInterval) Open() bool {
	return d.End == UntilEnd
}

// Contains reports whether pos falls inside the interval.
func (d DisabledInterval) Contains(pos int) bool {
	if pos < d.Start {
		return false
	}
	return d.Open() || pos < d.End
}

// Covered reports whether pos falls inside any of the intervals.
func Covered(pos int, intervals []DisabledInterval) bool {
	for _, iv := range intervals {
		if iv.Contains(pos) {
			return true
		}
	}
	return false
}

// ToggleSet holds the toggle streams for one source file. The
// all-rules wildcard stream is its own field rather than a reserved
// key, so a rule legitimately named "all" cannot collide with it.
type ToggleSet struct {
	All   []ToggleEvent
	Rules map[string][]ToggleEvent
}

// ForRule returns the rule-specific toggle stream, which may be nil.
func (ts ToggleSet) ForRule(name string) []ToggleEvent {
	return ts.Rules[name]
}

// DisabledIntervals merges the named rule's stream with the wildcard
// stream into the rule's suppression ranges.
func (ts ToggleSet) DisabledIntervals(name string) []DisabledInterval {
	return Merge(ts.ForRule(name), ts.All)
}
