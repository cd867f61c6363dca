// Package config loads quellint settings: embedded defaults overlaid
// with a project-level .quellint.toml or .quellint.yaml.
package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/quellint/quellint/pkg/errors"
	"github.com/quellint/quellint/pkg/logging"
	"github.com/quellint/quellint/pkg/rules"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Settings is the loaded tool configuration.
type Settings struct {
	// Rules is the ordered rule configuration: logical rule name to
	// opaque value.
	Rules rules.Config

	// Formatter and Reporter are resolved by logical name.
	Formatter string
	Reporter  string

	// Sources are extra rule source names, searched in order before
	// the built-in set.
	Sources []string
}

// SearchPath returns the rule source names in precedence order:
// configured sources first, builtin last.
func (s *Settings) SearchPath() []string {
	return append(append([]string{}, s.Sources...), rules.BuiltinSource)
}

// rawBytesProvider implements a koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load reads configuration for the given directory: embedded defaults
// first, then the first project config file found among
// .quellint.toml, quellint.toml and .quellint.yaml.
func Load(dir string) (*Settings, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	candidates := []struct {
		name   string
		parser koanf.Parser
	}{
		{".quellint.toml", toml.Parser()},
		{"quellint.toml", toml.Parser()},
		{".quellint.yaml", yaml.Parser()},
	}

	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), c.parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project configuration")
		break
	}

	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Settings, error) {
	ruleMap, _ := k.Get("rules").(map[string]interface{})

	settings := &Settings{
		Formatter: k.String("formatter"),
		Reporter:  k.String("reporter"),
		Sources:   k.Strings("sources"),
		Rules:     rules.ConfigFromMap(ruleMap),
	}

	if settings.Formatter == "" || settings.Reporter == "" {
		return nil, errors.New(errors.ErrConfigValid, "formatter and reporter must be set")
	}
	return settings, nil
}
