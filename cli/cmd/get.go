package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions bounds the names offered when a variable is unknown.
const maxSuggestions = 3

// Get prints the value of one variable of the innermost layer.
type Get struct {
	Source `embed:""`

	Key string `arg:"" help:"Variable name." name:"key"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) error {
	m, err := g.environment(ctx)
	if err != nil {
		return err
	}

	v, ok := m[g.Key]
	if !ok {
		return unknownKey(g.Key, slices.Sorted(maps.Keys(m)))
	}

	_, err = fmt.Fprintln(outputFrom(ctx), v)

	return err
}

// suggest returns up to maxSuggestions names that fuzzy-match key, best
// match first.
func suggest(key string, names []string) []string {
	matches := fuzzy.Find(key, names)

	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}

		out = append(out, m.Str)
	}

	return out
}

func unknownKey(key string, names []string) error {
	err := ErrUnknownKey.With(slog.String("key", key))

	s := suggest(key, names)
	if len(s) == 0 {
		return err
	}

	return err.
		With(slog.Any("suggestions", s)).
		Wrap(fmt.Errorf("did you mean %s?", strings.Join(s, ", ")))
}
