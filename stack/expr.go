package stack

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/envlayer/env"
)

// Lookup returns the value of a base environment variable, or the empty
// string if it is unset.
type Lookup func(name string) string

// Expr is a compiled expression declared with {expr: source}.
type Expr struct {
	Source string

	program *vm.Program
}

// exprEnv is the environment expressions are compiled and run against.
func exprEnv(ctx env.Context, lookup Lookup) map[string]any {
	if lookup == nil {
		lookup = func(string) string { return "" }
	}

	return map[string]any{
		"root":     ctx.Root,
		"platform": ctx.Platform,
		"env":      func(name string) string { return lookup(name) },
	}
}

// Compile compiles source. The expression may refer to root, platform, and
// env(name).
func Compile(source string) (*Expr, error) {
	if source == "" {
		return nil, ErrExpr.Wrap(errExprSource)
	}

	program, err := expr.Compile(source, expr.Env(exprEnv(env.Context{}, nil)))
	if err != nil {
		return nil, ErrExpr.Wrap(err).With(slog.String("source", source))
	}

	return &Expr{Source: source, program: program}, nil
}

// Eval runs the expression for the layer described by ctx.
func (e *Expr) Eval(ctx env.Context, lookup Lookup) (any, error) {
	return expr.Run(e.program, exprEnv(ctx, lookup))
}

// Deferred returns e as a value evaluated when its declaration is merged.
func (e *Expr) Deferred(lookup Lookup) env.Deferred {
	return func(ctx env.Context) (any, error) { return e.Eval(ctx, lookup) }
}
