package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quellint/quellint/pkg/enablement"
)

type fakeRule struct {
	name      string
	enabled   bool
	intervals []enablement.DisabledInterval
	failAt    []int
}

func (r *fakeRule) Name() string  { return r.name }
func (r *fakeRule) Enabled() bool { return r.enabled }

func (r *fakeRule) DisabledIntervals() []enablement.DisabledInterval {
	return r.intervals
}

func (r *fakeRule) Apply(src *Source) []Failure {
	var failures []Failure
	for _, pos := range r.failAt {
		failures = append(failures, NewFailure(src, r.name, pos, pos+1, "boom"))
	}
	return failures
}

func TestLinterRun(t *testing.T) {
	src := NewSource("a.txt", "0123456789\n0123456789\n")

	t.Run("failures inside disabled intervals are suppressed", func(t *testing.T) {
		rule := &fakeRule{
			name:      "r",
			enabled:   true,
			failAt:    []int{2, 7, 15},
			intervals: []enablement.DisabledInterval{{Start: 5, End: 10}},
		}

		failures := New([]Rule{rule}).Run(src)

		require.Len(t, failures, 2)
		assert.Equal(t, 2, failures[0].Position)
		assert.Equal(t, 15, failures[1].Position)
	})

	t.Run("open-ended interval suppresses to end of file", func(t *testing.T) {
		rule := &fakeRule{
			name:      "r",
			enabled:   true,
			failAt:    []int{2, 15},
			intervals: []enablement.DisabledInterval{{Start: 10, End: enablement.UntilEnd}},
		}

		failures := New([]Rule{rule}).Run(src)

		require.Len(t, failures, 1)
		assert.Equal(t, 2, failures[0].Position)
	})

	t.Run("disabled rules are skipped", func(t *testing.T) {
		rule := &fakeRule{name: "r", enabled: false, failAt: []int{2}}

		failures := New([]Rule{rule}).Run(src)
		assert.Empty(t, failures)
	})

	t.Run("output sorted by position then rule name", func(t *testing.T) {
		ruleB := &fakeRule{name: "bravo", enabled: true, failAt: []int{8, 3}}
		ruleA := &fakeRule{name: "alpha", enabled: true, failAt: []int{8}}

		failures := New([]Rule{ruleB, ruleA}).Run(src)

		require.Len(t, failures, 3)
		assert.Equal(t, 3, failures[0].Position)
		assert.Equal(t, "alpha", failures[1].RuleName)
		assert.Equal(t, "bravo", failures[2].RuleName)
	})
}

func TestLinterRunAll(t *testing.T) {
	rule := &fakeRule{name: "r", enabled: true, failAt: []int{0}}
	linter := New([]Rule{rule})

	summary := linter.RunAll([]*Source{
		NewSource("a.txt", "aaa\n"),
		NewSource("b.txt", "bbb\n"),
	})

	assert.Equal(t, 2, summary.Files)
	require.Len(t, summary.Failures, 2)
	assert.Equal(t, map[string]int{"r": 2}, summary.ByRule())
}

func TestSourcePosition(t *testing.T) {
	src := NewSource("a.txt", "ab\ncde\n\nf")

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{5, 2, 3},
		{7, 3, 1},
		{8, 4, 1},
	}

	for _, tt := range tests {
		line, col := src.Position(tt.offset)
		assert.Equal(t, tt.line, line, "offset %d line", tt.offset)
		assert.Equal(t, tt.column, col, "offset %d column", tt.offset)
	}
}

func TestSourceLines(t *testing.T) {
	src := NewSource("a.txt", "one\ntwo\n")
	assert.Equal(t, []string{"one", "two"}, src.Lines())

	assert.Equal(t, 0, src.LineStart(0))
	assert.Equal(t, 4, src.LineStart(1))
	assert.Equal(t, len(src.Text), src.LineStart(99))
}
