package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedIdentifier(t *testing.T) {
	tests := []struct {
		name        string
		logicalName string
		suffix      string
		want        string
	}{
		{"dashed name", "no-unused-var", "Rule", "NoUnusedVarRule"},
		{"underscored name", "no_unused_var", "Rule", "NoUnusedVarRule"},
		{"camel-cased name", "noUnusedVar", "Rule", "NoUnusedVarRule"},
		{"space delimited name", "no unused var", "Rule", "NoUnusedVarRule"},
		{"single word", "checkstyle", "Formatter", "CheckstyleFormatter"},
		{"already capitalized", "JSON", "Formatter", "JSONFormatter"},
		{"leading and trailing underscores preserved", "_foo_", "Rule", "_FooRule_"},
		{"leading dash run preserved", "--foo", "Rule", "--FooRule"},
		{"mixed delimiters", "max_line-length", "Rule", "MaxLineLengthRule"},
		{"empty interior", "__", "Rule", "__Rule"},
		{"reporter suffix", "summary", "Reporter", "SummaryReporter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpectedIdentifier(tt.logicalName, tt.suffix)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpectedIdentifierConventionAgnostic(t *testing.T) {
	// All spellings of the same logical rule must land on one
	// canonical identifier.
	spellings := []string{"no-unused-var", "no_unused_var", "noUnusedVar", "no unused var"}

	for _, s := range spellings {
		assert.Equal(t, "NoUnusedVarRule", ExpectedIdentifier(s, "Rule"), "spelling %q", s)
	}
}

func TestCamelize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"no-unused-var", "noUnusedVar"},
		{"no_unused_var", "noUnusedVar"},
		{"one", "one"},
		{"", ""},
		{"a-b-c", "aBC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, camelize(tt.in), "camelize(%q)", tt.in)
	}
}
