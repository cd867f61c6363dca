package lint

import (
	"sort"
	"strings"

	"github.com/quellint/quellint/pkg/enablement"
)

// Source is one file's worth of text to lint.
type Source struct {
	Name string
	Text string

	// byte offset of the start of each line, computed lazily
	lineStarts []int
}

// NewSource creates a Source for the given file name and contents.
func NewSource(name, text string) *Source {
	return &Source{Name: name, Text: text}
}

// Lines returns the source split into lines without terminators.
func (s *Source) Lines() []string {
	return strings.Split(strings.TrimSuffix(s.Text, "\n"), "\n")
}

// LineStart returns the byte offset of the start of the given
// zero-based line.
func (s *Source) LineStart(line int) int {
	starts := s.starts()
	if line < 0 || line >= len(starts) {
		return len(s.Text)
	}
	return starts[line]
}

// Position converts a byte offset into a one-based line and column.
func (s *Source) Position(offset int) (line, column int) {
	starts := s.starts()
	idx := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	if idx < 0 {
		idx = 0
	}
	return idx + 1, offset - starts[idx] + 1
}

func (s *Source) starts() []int {
	if s.lineStarts == nil {
		s.lineStarts = []int{0}
		for i := 0; i < len(s.Text); i++ {
			if s.Text[i] == '\n' {
				s.lineStarts = append(s.lineStarts, i+1)
			}
		}
	}
	return s.lineStarts
}

// Failure is one finding produced by a rule.
type Failure struct {
	RuleName    string `json:"ruleName"`
	File        string `json:"file"`
	Position    int    `json:"position"`
	EndPosition int    `json:"endPosition"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Message     string `json:"message"`
}

// NewFailure builds a Failure for the given source span, filling in
// line and column from the start offset.
func NewFailure(src *Source, ruleName string, start, end int, message string) Failure {
	line, col := src.Position(start)
	return Failure{
		RuleName:    ruleName,
		File:        src.Name,
		Position:    start,
		EndPosition: end,
		Line:        line,
		Column:      col,
		Message:     message,
	}
}

// Rule is a configured, activated checking rule. Implementations are
// constructed by the rule loader with the rule's logical name, its
// configuration value and its pre-computed disabled intervals.
type Rule interface {
	Name() string
	Enabled() bool
	DisabledIntervals() []enablement.DisabledInterval
	Apply(src *Source) []Failure
}

// Documented is implemented by rules that carry markdown
// documentation for display.
type Documented interface {
	Doc() string
}

// Summary aggregates the outcome of one lint run.
type Summary struct {
	Files    int
	Failures []Failure
}

// ByRule returns failure counts keyed by rule name.
func (s Summary) ByRule() map[string]int {
	counts := make(map[string]int)
	for _, f := range s.Failures {
		counts[f.RuleName]++
	}
	return counts
}
