package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/envlayer/env"
)

// Output formats of [Eval].
const (
	FormatNative = "native"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// Eval prints the resolved environment of the innermost layer.
type Eval struct {
	Source `embed:""`

	Format string `default:"native" enum:"native,json,yaml" help:"Output format (${enum})." short:"o"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	m, err := e.environment(ctx)
	if err != nil {
		return err
	}

	return writeEnv(outputFrom(ctx), e.Format, m)
}

// writeEnv writes m in the given format. The native format is one KEY=VALUE
// line per variable in sorted order.
func writeEnv(w io.Writer, format string, m map[string]string) error {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return ErrMarshal.With(slog.String("format", format)).Wrap(err)
		}

		_, err = fmt.Fprintln(w, string(b))

		return err

	case FormatYAML:
		if len(m) == 0 {
			_, err := fmt.Fprintln(w, "{}")

			return err
		}

		b, err := yaml.Marshal(m)
		if err != nil {
			return ErrMarshal.With(slog.String("format", format)).Wrap(err)
		}

		_, err = w.Write(b)

		return err

	default:
		for _, line := range env.List(m) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}

		return nil
	}
}
