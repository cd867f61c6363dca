package formatters

import (
	"encoding/json"

	"github.com/quellint/quellint/pkg/errors"
	"github.com/quellint/quellint/pkg/lint"
)

// JSONFormatter renders failures as an indented JSON array. An empty
// failure set renders as [] rather than null.
type JSONFormatter struct{}

// NewJSONFormatter creates the JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements Formatter
func (f *JSONFormatter) Format(failures []lint.Failure) (string, error) {
	if failures == nil {
		failures = []lint.Failure{}
	}

	data, err := json.MarshalIndent(failures, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFormat, "failed to marshal failures")
	}
	return string(data) + "\n", nil
}
