package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// yamlConfig is a kong.ConfigurationLoader for YAML files keyed by flag
// name. Keys may use dashes or underscores, and may be nested under a
// command name to apply to that command only:
//
//	verbose: true
//	scan:
//	  max-pages: 10
//	  static: true
func yamlConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if section, ok := values[parent.Command.Name].(map[string]any); ok {
				if v, ok := lookup(section, flag.Name); ok {
					return v, nil
				}
			}
		}
		v, _ := lookup(values, flag.Name)
		return v, nil
	}), nil
}

// lookup finds name in values and returns it in a form kong can decode.
// Nested sections are never returned as flag values.
func lookup(values map[string]any, name string) (any, bool) {
	v, ok := values[name]
	if !ok {
		v, ok = values[strings.ReplaceAll(name, "-", "_")]
	}
	if !ok || v == nil {
		return nil, false
	}
	switch v := v.(type) {
	case map[string]any:
		return nil, false
	case []any:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ","), true
	default:
		return fmt.Sprint(v), true
	}
}
