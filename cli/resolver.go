package cli

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/envlayer/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from
// the mapping under key section of a YAML configuration file:
//
//	config:
//	  log-level: debug
//	  log-format: text
//	  log-pretty: false
//
// Keys are flag names; underscores may be used in place of hyphens.
// Command-line flags override configuration values. A file that cannot be
// parsed is ignored with a warning.
func resolve(section string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warn("ignoring configuration file", slog.Any("error", err))
			}

			return config{}, nil
		}

		m, ok := doc[section].(map[string]any)
		if !ok {
			return config{}, nil
		}

		return makeConfig(m), nil
	}
}

// config implements [kong.Resolver] over a flat map of flag values.
type config map[string]any

// makeConfig converts decoded YAML scalars into values kong can parse.
// Numbers are passed as strings.
func makeConfig(m map[string]any) config {
	c := make(config, len(m))

	for k, v := range m {
		switch n := v.(type) {
		case int64:
			c[k] = strconv.FormatInt(n, 10)
		case uint64:
			c[k] = strconv.FormatUint(n, 10)
		case int:
			c[k] = strconv.Itoa(n)
		case float64:
			c[k] = strconv.FormatFloat(n, 'f', -1, 64)
		default:
			c[k] = v
		}
	}

	return c
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if v, ok := c[flag.Name]; ok {
		return v, nil
	}

	if v, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return v, nil
	}

	return nil, nil
}
