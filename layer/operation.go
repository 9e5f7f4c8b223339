package layer

import (
	"context"
	"log/slog"

	"github.com/ardnew/envlayer/log"
)

// Operation is a transformation of a layer chain.
//
// Operations never modify the chain they receive; they return a new one.
type Operation func(ctx context.Context, c Chain) (Chain, error)

// Sequence returns an operation that runs ops in order, feeding each the
// chain returned by the previous one. It stops at the first error and
// returns the chain it was given.
func Sequence(ops ...Operation) Operation {
	return func(ctx context.Context, c Chain) (Chain, error) {
		next := c

		for _, op := range ops {
			if op == nil {
				continue
			}

			var err error

			next, err = op(ctx, next)
			if err != nil {
				return c, err
			}
		}

		return next, nil
	}
}

// New returns an operation that pushes a new layer and runs ops inside its
// scope. An empty root inherits the root of the enclosing layer. The sink of
// the enclosing layer is inherited; outside of any layer, [LogSink] is used.
func New(name, root string, ops ...Operation) Operation {
	return func(ctx context.Context, c Chain) (Chain, error) {
		parent, ok := ScopeFrom(ctx)
		if !ok {
			parent.Sink = LogSink{}
		}

		dir := root
		if dir == "" {
			dir = parent.Root
		}

		scope := Scope{Layer: name, Root: dir, Sink: parent.Sink}

		log.TraceContext(ctx, "enter layer",
			slog.String("layer", name),
			slog.String("root", dir),
			slog.Int("depth", c.Len()+1),
		)

		return Sequence(ops...)(
			WithScope(ctx, scope),
			c.Push(&Layer{Name: name, Root: dir}),
		)
	}
}

// Named returns an operation that runs op inside an operation scope called
// name.
func Named(name string, op Operation) Operation {
	return func(ctx context.Context, c Chain) (Chain, error) {
		return op(WithOperation(ctx, name), c)
	}
}

// Run applies ops in sequence to an empty chain.
func Run(ctx context.Context, ops ...Operation) (Chain, error) {
	return Sequence(ops...)(ctx, Chain{})
}
