// Package formatters renders lint failures for output. Formatters
// are resolved by logical name with the "Formatter" suffix across
// registered sources, the same way rules are.
package formatters

import (
	"github.com/quellint/quellint/pkg/errors"
	"github.com/quellint/quellint/pkg/lint"
	"github.com/quellint/quellint/pkg/plugins"
	"github.com/quellint/quellint/pkg/registry"
)

// RoleSuffix is the naming suffix for formatter implementations
const RoleSuffix = "Formatter"

// Formatter renders a set of failures into an output string
type Formatter interface {
	Format(failures []lint.Failure) (string, error)
}

// Factory constructs a formatter instance
type Factory func() Formatter

// BuiltinSource is the name of the built-in formatter set
const BuiltinSource = "builtin"

var sources = registry.New[*plugins.Source[Factory]]()

// RegisterSource makes a formatter source available under its name
func RegisterSource(src *plugins.Source[Factory]) error {
	return sources.Register(src.Name(), src)
}

// SearchPath maps source names to sources; unknown names become nil
// entries that resolution skips.
func SearchPath(names ...string) []*plugins.Source[Factory] {
	path := make([]*plugins.Source[Factory], len(names))
	for i, name := range names {
		if src, err := sources.Get(name); err == nil {
			path[i] = src
		}
	}
	return path
}

// Resolve returns a formatter instance by logical name, searching the
// given sources in order. The not-found case is an ErrFormatterNotFound
// error because callers always need a formatter to proceed.
func Resolve(name string, sourceNames ...string) (Formatter, error) {
	desc, ok := plugins.Resolve(name, RoleSuffix, SearchPath(sourceNames...))
	if !ok {
		return nil, errors.Newf(errors.ErrFormatterNotFound, "formatter '%s' not found", name)
	}
	return desc.Make(), nil
}

func init() {
	src := plugins.NewSource(BuiltinSource,
		plugins.Descriptor[Factory]{ID: "TextFormatter", Make: func() Formatter { return NewTextFormatter() }},
		plugins.Descriptor[Factory]{ID: "JSONFormatter", RawName: "json", Make: func() Formatter { return NewJSONFormatter() }},
		plugins.Descriptor[Factory]{ID: "CheckstyleFormatter", Make: func() Formatter { return NewCheckstyleFormatter() }},
	)
	if err := RegisterSource(src); err != nil {
		panic(err)
	}
}
