package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/envlayer/env"
	"github.com/ardnew/envlayer/layer"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	rootStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// Trace prints the environment of every layer, outermost first.
type Trace struct {
	Source `embed:""`
}

// Run executes the trace command.
func (t *Trace) Run(ctx context.Context) error {
	c, err := t.resolve(ctx)
	if err != nil {
		return err
	}

	w := outputFrom(ctx)

	layers := c.Layers()
	slices.Reverse(layers)

	for i, l := range layers {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w, header(i+1, l))

		if l.Env == nil {
			fmt.Fprintln(w, "  "+emptyStyle.Render("no environment declared"))

			continue
		}

		m, err := l.Env(ctx)
		if err != nil {
			return ErrResolve.
				With(slog.String("layer", l.Name)).
				Wrap(err)
		}

		for _, line := range env.List(m) {
			fmt.Fprintln(w, "  "+line)
		}
	}

	return nil
}

func header(n int, l *layer.Layer) string {
	s := headerStyle.Render("layer " + strconv.Itoa(n) + ": " + l.Name)
	if l.Root != "" {
		s += " " + rootStyle.Render("("+l.Root+")")
	}

	return s
}
