package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/envlayer/env"
	"github.com/ardnew/envlayer/layer"
	"github.com/ardnew/envlayer/pkg"
	"github.com/ardnew/envlayer/stack"
)

// Source selects the stack file a command resolves.
type Source struct {
	File    string `help:"Stack file to resolve."                                   name:"file" required:"" short:"f" type:"existingfile"`
	NoBase  bool   `help:"Do not join appended variables with the process environment."`
	Debug   bool   `help:"Log how every variable is merged."`
	Compact bool   `help:"Join list variables item by item."`
}

// resolve loads and resolves the stack file.
func (s Source) resolve(ctx context.Context) (layer.Chain, error) {
	st, err := stack.Load(s.File)
	if err != nil {
		return layer.Chain{}, err
	}

	var base map[string]string
	if s.NoBase {
		base = map[string]string{}
	}

	opts := []env.Option{env.WithDebug(s.Debug)}
	if s.Compact {
		opts = append(opts, env.WithCompact(true))
	}

	c, err := st.Resolve(ctx, base, opts...)
	if err != nil {
		return layer.Chain{}, ErrResolve.
			With(slog.String("file", s.File)).
			Wrap(err)
	}

	return c, nil
}

// environment returns the snapshot of the innermost layer that declared one.
func (s Source) environment(ctx context.Context) (map[string]string, error) {
	c, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}

	get, _, ok := c.FindEnv()
	if !ok {
		return map[string]string{}, nil
	}

	m, err := get(ctx)
	if err != nil {
		return nil, pkg.WrapError(err).With(slog.String("file", s.File))
	}

	return m, nil
}
