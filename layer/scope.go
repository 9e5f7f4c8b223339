package layer

import (
	"context"
	"log/slog"
)

// Scope describes the layer that operations are currently running inside.
type Scope struct {
	// Layer is the name of the enclosing layer.
	Layer string
	// Root is the sandbox directory of the enclosing layer.
	Root string
	// Sink receives diagnostics. A nil Sink discards them.
	Sink Sink
}

type (
	scopeKey     struct{}
	operationKey struct{}
)

// WithScope returns a context carrying s as the current layer scope.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom returns the current layer scope, if any.
func ScopeFrom(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(Scope)

	return s, ok
}

// WithOperation returns a context marking that operation name is running.
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operationKey{}, name)
}

// OperationFrom returns the name of the running operation, if any.
func OperationFrom(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(operationKey{}).(string)

	return name, ok
}

// RequireLayer returns the current layer scope, or [ErrNotInLayer] naming
// the offending operation.
func RequireLayer(ctx context.Context, op string) (Scope, error) {
	s, ok := ScopeFrom(ctx)
	if !ok {
		return Scope{}, ErrNotInLayer.With(slog.String("operation", op))
	}

	return s, nil
}

// RequireOperation returns the running operation name, or
// [ErrNotInOperation] naming the offending operation.
func RequireOperation(ctx context.Context, op string) (string, error) {
	name, ok := OperationFrom(ctx)
	if !ok {
		return "", ErrNotInOperation.With(slog.String("operation", op))
	}

	return name, nil
}
