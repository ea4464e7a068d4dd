package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAML is a kong.ConfigurationLoader reading flag values from a YAML mapping.
// Keys are flag names, with dashes or underscores:
//
//	log-level: debug
//	key: word
//	sep: "."
//
// Lists are joined with commas, as kong expects for slice flags.
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding yaml configuration: %w", err)
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		raw, found := values[flag.Name]
		if !found {
			raw, found = values[strings.ReplaceAll(flag.Name, "-", "_")]
		}
		if !found {
			return nil, nil
		}
		return configValue(raw)
	}
	return f, nil
}

func configValue(raw any) (string, error) {
	switch v := raw.(type) {
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, err := configValue(item)
			if err != nil {
				return "", err
			}
			items = append(items, s)
		}
		return strings.Join(items, ","), nil
	case map[string]any:
		return "", fmt.Errorf("nested configuration %v is not supported", v)
	case nil:
		return "", nil
	default:
		return fmt.Sprint(v), nil
	}
}
