package layer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ardnew/envlayer/log"
)

// Sink records which layer an operation derived its result from, with the
// operation's input and output rendered as text.
type Sink interface {
	Log(ctx context.Context, scope, before, after string)
}

// SinkFunc adapts a function to a [Sink].
type SinkFunc func(ctx context.Context, scope, before, after string)

// Log implements [Sink].
func (f SinkFunc) Log(ctx context.Context, scope, before, after string) {
	f(ctx, scope, before, after)
}

// Emit sends an entry to the sink of the current scope, if there is one.
func Emit(ctx context.Context, scope, before, after string) {
	if s, ok := ScopeFrom(ctx); ok && s.Sink != nil {
		s.Sink.Log(ctx, scope, before, after)
	}
}

// LogSink writes entries at debug level. A zero LogSink uses the default
// logger of the log package.
type LogSink struct {
	Logger *log.Logger
}

// Log implements [Sink].
func (s LogSink) Log(ctx context.Context, scope, before, after string) {
	attrs := []slog.Attr{
		slog.String("scope", scope),
		slog.String("before", before),
		slog.String("after", after),
	}

	if op, ok := OperationFrom(ctx); ok {
		attrs = append(attrs, slog.String("operation", op))
	}

	if s.Logger != nil {
		s.Logger.DebugContext(ctx, "layer", attrs...)

		return
	}

	log.DebugContext(ctx, "layer", attrs...)
}

// Entry is a diagnostic captured by a [Recorder].
type Entry struct {
	Operation string
	Layer     string
	Scope     string
	Before    string
	After     string
}

// Recorder is a [Sink] that keeps every entry in memory. It optionally
// forwards entries to another sink.
type Recorder struct {
	Next Sink

	mu      sync.Mutex
	entries []Entry
}

// Log implements [Sink].
func (r *Recorder) Log(ctx context.Context, scope, before, after string) {
	e := Entry{Scope: scope, Before: before, After: after}
	e.Operation, _ = OperationFrom(ctx)

	if s, ok := ScopeFrom(ctx); ok {
		e.Layer = s.Layer
	}

	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()

	if r.Next != nil {
		r.Next.Log(ctx, scope, before, after)
	}
}

// Entries returns a copy of the recorded entries in order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Entry(nil), r.entries...)
}
