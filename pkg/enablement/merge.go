package enablement

// Merge combines a rule-specific toggle stream and the all-rules
// wildcard stream, both sorted ascending by position, into a minimal
// list of non-overlapping disabled intervals, ascending by start.
//
// The streams are walked with two pointers in chronological order.
// The rule-specific stream is consumed only while its next position is
// strictly less than the wildcard's next position; at equal positions
// the wildcard event is consumed first. This tie-break is part of the
// contract: a wildcard enable and a rule-specific disable at the same
// position leave the rule disabled from that position on.
//
// An event toggles the disabled state only when it is an actual state
// change (disable while enabled, enable while disabled); redundant
// toggles are consumed without effect. If the streams end while still
// disabled, a final open-ended interval is emitted.
func Merge(ruleSpecific, wildcard []ToggleEvent) []DisabledInterval {
	var intervals []DisabledInterval

	disabled := false
	start := 0

	i, j := 0, 0
	for i < len(ruleSpecific) || j < len(wildcard) {
		var ev ToggleEvent
		if j >= len(wildcard) || (i < len(ruleSpecific) && ruleSpecific[i].Position < wildcard[j].Position) {
			ev = ruleSpecific[i]
			i++
		} else {
			ev = wildcard[j]
			j++
		}

		// A state change happens when an enable arrives while disabled
		// or a disable arrives while enabled.
		if ev.Enabled != disabled {
			continue
		}

		disabled = !disabled
		if disabled {
			start = ev.Position
		} else {
			intervals = append(intervals, DisabledInterval{Start: start, End: ev.Position})
		}
	}

	if disabled {
		intervals = append(intervals, DisabledInterval{Start: start, End: UntilEnd})
	}

	return intervals
}
