// Package layer provides the layer chain that nested CLI test sandboxes are
// built from, together with the small composition framework that operations
// such as environment declarations run inside.
//
// # Chain
//
// A [Chain] is an immutable, most-recent-first list of [*Layer]. Every update
// returns a new chain; the untouched tail is shared by reference with the
// original, so older chains remain valid and unchanged.
//
//	c := layer.Chain{}.Push(&layer.Layer{Name: "outer"})
//	d := c.WithHead(c.Head().Clone())  // c is unchanged
//
// # Operations and Scopes
//
// An [Operation] transforms a chain. [New] pushes a layer and runs its
// operations inside a layer scope; [Named] runs an operation inside an
// operation scope. Operations that must only run inside both assert it with
// [RequireLayer] and [RequireOperation].
//
//	op := layer.New("outer", "/tmp/sandbox",
//		layer.Named("env", declare),
//	)
//	chain, err := op(ctx, layer.Chain{})
//
// # Diagnostics
//
// Operations report what they derived through the [Sink] of the current
// scope. [LogSink] writes entries with the log package.
package layer
