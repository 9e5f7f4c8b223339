// Package env declares environment variables on a layer chain.
//
// A declaration is a [Hash] of variable names to values. When the operation
// returned by [Declare] runs, it merges the hash with the environment of the
// nearest layer that already declared one and installs the result on the
// current layer:
//
//	op, err := env.Declare(env.Hash{
//		"PATH": env.Deferred(func(c env.Context) (any, error) {
//			return filepath.Join(c.Root, "bin"), nil
//		}),
//		"RETRIES": env.Structured(3),
//	}, env.WithAppend(env.AppendKeys{"PATH"}))
//
// Keys named by the append specification are joined with a delimiter
// instead of overridden: the new value first, then the inherited value, or
// the base (process) environment's value when nothing was inherited.
package env
