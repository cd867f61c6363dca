package formatters

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/quellint/quellint/pkg/errors"
	"github.com/quellint/quellint/pkg/lint"
)

// CheckstyleFormatter renders failures as checkstyle-compatible XML,
// grouping errors under one <file> element per source file in first-
// appearance order.
type CheckstyleFormatter struct{}

// NewCheckstyleFormatter creates the checkstyle formatter
func NewCheckstyleFormatter() *CheckstyleFormatter {
	return &CheckstyleFormatter{}
}

// Format implements Formatter
func (f *CheckstyleFormatter) Format(failures []lint.Failure) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("checkstyle")
	root.CreateAttr("version", "4.3")

	files := make(map[string]*etree.Element)
	for _, failure := range failures {
		file, ok := files[failure.File]
		if !ok {
			file = root.CreateElement("file")
			file.CreateAttr("name", failure.File)
			files[failure.File] = file
		}

		errEl := file.CreateElement("error")
		errEl.CreateAttr("line", fmt.Sprintf("%d", failure.Line))
		errEl.CreateAttr("column", fmt.Sprintf("%d", failure.Column))
		errEl.CreateAttr("severity", "warning")
		errEl.CreateAttr("message", failure.Message)
		errEl.CreateAttr("source", "quellint."+failure.RuleName)
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFormat, "failed to serialize checkstyle output")
	}
	return out, nil
}
