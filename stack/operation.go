package stack

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/envlayer/env"
	"github.com/ardnew/envlayer/layer"
	"github.com/ardnew/envlayer/pkg"
)

// Operation builds the nested layer operations of s.
//
// Declarations join appended variables with base when nothing was inherited;
// a nil base means the process environment. Expressions read env(name) from
// the same environment. Additional opts are applied to every declaration
// after the stack's own settings.
func (s *Stack) Operation(base map[string]string, opts ...env.Option) (layer.Operation, error) {
	lookup := Lookup(os.Getenv)
	if base != nil {
		lookup = func(name string) string { return base[name] }
	}

	var next layer.Operation

	for i := len(s.Layers) - 1; i >= 0; i-- {
		l := s.Layers[i]
		ops := make([]layer.Operation, 0, len(l.Env)+1)

		for j, d := range l.Env {
			op, err := env.Declare(d.Hash(lookup), s.options(d, base, opts)...)
			if err != nil {
				return nil, pkg.WrapError(err).With(
					slog.String("layer", l.Name),
					slog.Int("declaration", j+1),
				)
			}

			ops = append(ops, op)
		}

		root := l.Root
		if i == 0 && root == "" {
			root = s.Root
		}

		next = layer.New(l.Name, root, append(ops, next)...)
	}

	return next, nil
}

// Resolve runs the operations of s on an empty chain. The head of the
// returned chain is the innermost layer.
func (s *Stack) Resolve(
	ctx context.Context,
	base map[string]string,
	opts ...env.Option,
) (layer.Chain, error) {
	op, err := s.Operation(base, opts...)
	if err != nil {
		return layer.Chain{}, err
	}

	return layer.Run(ctx, op)
}

func (s *Stack) options(d Declaration, base map[string]string, extra []env.Option) []env.Option {
	spec := s.Append
	if d.Append != nil {
		spec = d.Append
	}

	opts := []env.Option{
		env.WithAppend(spec),
		env.WithPlatform(s.Platform),
		env.WithCompact(s.Compact),
	}

	if base != nil {
		opts = append(opts, env.WithBase(base))
	}

	return append(opts, extra...)
}
