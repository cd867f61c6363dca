package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quellint/quellint/pkg/enablement"
	"github.com/quellint/quellint/pkg/lint"
	"github.com/quellint/quellint/pkg/rules"
)

func TestBuiltinSourceRegistered(t *testing.T) {
	src := rules.LookupSource(rules.BuiltinSource)
	require.NotNil(t, src, "builtin source should register itself at init")
	assert.Equal(t, 3, src.Len())
}

func TestBuiltinRulesResolve(t *testing.T) {
	cfg := rules.Config{
		{Name: NoTrailingWhitespaceName, Value: true},
		{Name: NoTabsName, Value: true},
		{Name: MaxLineLengthName, Value: 80},
	}

	loaded, err := rules.LoadFromSources(cfg, enablement.ToggleSet{}, rules.BuiltinSource)

	require.NoError(t, err)
	require.Len(t, loaded, 3)
}

func TestMaxLineLengthResolvesOnlyByRawName(t *testing.T) {
	// The rule opts out of normalization via its raw-name constant,
	// so variant spellings must not resolve.
	path := rules.SearchPath(rules.BuiltinSource)

	_, err := rules.Load(rules.Config{{Name: "max_line_length", Value: true}}, enablement.ToggleSet{}, path)
	require.Error(t, err)

	loaded, err := rules.Load(rules.Config{{Name: "max-line-length", Value: true}}, enablement.ToggleSet{}, path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
}

func TestNoTrailingWhitespaceRule(t *testing.T) {
	rule := NewNoTrailingWhitespaceRule(NoTrailingWhitespaceName, true, nil)
	src := lint.NewSource("a.txt", "clean line\ndirty line  \n\ttab indent\t\n")

	failures := rule.Apply(src)

	require.Len(t, failures, 2)
	assert.Equal(t, 2, failures[0].Line)
	assert.Equal(t, "trailing whitespace", failures[0].Message)
	assert.Equal(t, len("clean line\ndirty line"), failures[0].Position)
	assert.Equal(t, 3, failures[1].Line)
}

func TestNoTabsRule(t *testing.T) {
	rule := NewNoTabsRule(NoTabsName, true, nil)
	src := lint.NewSource("a.txt", "a\tb\nc\td\n")

	failures := rule.Apply(src)

	require.Len(t, failures, 2)
	assert.Equal(t, 1, failures[0].Position)
	assert.Equal(t, 1, failures[0].Line)
	assert.Equal(t, 2, failures[0].Column)
	assert.Equal(t, 5, failures[1].Position)
	assert.Equal(t, 2, failures[1].Line)
}

func TestMaxLineLengthRule(t *testing.T) {
	t.Run("flags long lines with configured limit", func(t *testing.T) {
		rule := NewMaxLineLengthRule(MaxLineLengthName, 10, nil)
		src := lint.NewSource("a.txt", "short\nthis line is too long\nok\n")

		failures := rule.Apply(src)

		require.Len(t, failures, 1)
		assert.Equal(t, 2, failures[0].Line)
		assert.Equal(t, 11, failures[0].Column)
		assert.Contains(t, failures[0].Message, "maximum allowed is 10")
	})

	t.Run("non-numeric value falls back to default", func(t *testing.T) {
		rule := NewMaxLineLengthRule(MaxLineLengthName, true, nil).(*MaxLineLengthRule)
		assert.Equal(t, DefaultMaxLineLength, rule.limit)
	})

	t.Run("float value from config is accepted", func(t *testing.T) {
		rule := NewMaxLineLengthRule(MaxLineLengthName, float64(90), nil).(*MaxLineLengthRule)
		assert.Equal(t, 90, rule.limit)
	})
}

func TestBuiltinRulesAreDocumented(t *testing.T) {
	for _, factory := range []rules.Factory{
		NewNoTrailingWhitespaceRule,
		NewNoTabsRule,
		NewMaxLineLengthRule,
	} {
		rule := factory("x", true, nil)
		documented, ok := rule.(lint.Documented)
		require.True(t, ok, "rule %s should carry documentation", rule.Name())
		assert.NotEmpty(t, documented.Doc())
	}
}
