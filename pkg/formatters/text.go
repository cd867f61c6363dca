package formatters

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/quellint/quellint/pkg/lint"
)

// TextFormatter renders failures as one human-readable line each:
// file:line:col  rule  message. Styling is dropped when stdout is not
// a terminal.
type TextFormatter struct {
	location lipgloss.Style
	rule     lipgloss.Style
	plain    bool
}

// NewTextFormatter creates the text formatter, detecting terminal
// capability from stdout.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		location: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		rule:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		plain:    !isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// Format implements Formatter
func (f *TextFormatter) Format(failures []lint.Failure) (string, error) {
	var b strings.Builder

	for _, failure := range failures {
		location := fmt.Sprintf("%s:%d:%d", failure.File, failure.Line, failure.Column)
		rule := failure.RuleName
		if !f.plain {
			location = f.location.Render(location)
			rule = f.rule.Render(rule)
		}
		fmt.Fprintf(&b, "%s  %s  %s\n", location, rule, failure.Message)
	}

	return b.String(), nil
}
