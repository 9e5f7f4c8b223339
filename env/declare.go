package env

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"github.com/ardnew/envlayer/layer"
	"github.com/ardnew/envlayer/log"
)

// Name is the operation name used for scopes and diagnostics.
const Name = "env"

// Options configures a declaration.
type Options struct {
	append   Append
	base     map[string]string
	platform string
	hasBase  bool
	debug    bool
	compact  bool
}

// Option applies a configuration option to Options.
type Option func(Options) Options

func makeOptions(opts ...Option) Options {
	var o Options

	for _, opt := range opts {
		if opt != nil {
			o = opt(o)
		}
	}

	return o
}

// WithAppend selects the variables that are joined instead of overridden.
func WithAppend(spec Append) Option {
	return func(o Options) Options {
		o.append = spec

		return o
	}
}

// WithBase sets the base environment consulted when a joined variable has no
// inherited value. Without it, the process environment is read when the
// declaration runs. A nil base is treated as empty.
func WithBase(base map[string]string) Option {
	return func(o Options) Options {
		o.base = maps.Clone(base)
		o.hasBase = true

		return o
	}
}

// WithPlatform sets the GOOS-style platform whose list separator is the
// default delimiter. An empty platform uses [DefaultPlatform].
func WithPlatform(goos string) Option {
	return func(o Options) Options {
		o.platform = goos

		return o
	}
}

// WithDebug logs how every variable was merged.
func WithDebug(enable bool) Option {
	return func(o Options) Options {
		o.debug = enable

		return o
	}
}

// WithCompact joins list values item by item with mung instead of plain
// concatenation.
func WithCompact(enable bool) Option {
	return func(o Options) Options {
		o.compact = enable

		return o
	}
}

// Declare validates h and returns an operation that merges it into the
// current layer. The operation runs in its own operation scope and must be
// run inside a layer (see [layer.New]).
func Declare(h Hash, opts ...Option) (layer.Operation, error) {
	if err := Validate(h); err != nil {
		return nil, err
	}

	o := makeOptions(opts...)

	if err := ValidateAppend(o.append); err != nil {
		return nil, err
	}

	h = maps.Clone(h)

	return layer.Named(Name, func(ctx context.Context, c layer.Chain) (layer.Chain, error) {
		return merge(ctx, c, h, o)
	}), nil
}

// Merge merges h into the head of c. It must be called inside both a layer
// scope and an operation scope; [Declare] provides the latter.
func Merge(
	ctx context.Context,
	c layer.Chain,
	h Hash,
	opts ...Option,
) (layer.Chain, error) {
	if err := Validate(h); err != nil {
		return c, err
	}

	o := makeOptions(opts...)

	if err := ValidateAppend(o.append); err != nil {
		return c, err
	}

	return merge(ctx, c, h, o)
}

func merge(
	ctx context.Context,
	c layer.Chain,
	h Hash,
	o Options,
) (layer.Chain, error) {
	scope, err := layer.RequireLayer(ctx, Name)
	if err != nil {
		return c, err
	}

	if _, err := layer.RequireOperation(ctx, Name); err != nil {
		return c, err
	}

	previous := map[string]string{}

	get, index, found := c.FindEnv()
	if found {
		env, err := get(ctx)
		if err != nil {
			return c, ErrPrevious.
				With(slog.Int("layer", c.Number(index))).
				Wrap(err)
		}

		if env != nil {
			previous = env
		}
	}

	platform := o.platform
	if platform == "" {
		platform = DefaultPlatform
	}

	current, err := Evaluate(h, Context{Root: scope.Root, Platform: platform})
	if err != nil {
		return c, err
	}

	m := merger{
		delimiters: ResolveDelimiters(o.append, PlatformDelimiter(platform)),
		base:       o.base,
		join:       concat,
	}

	if !o.hasBase {
		m.base = ProcessEnviron()
	}

	if o.compact {
		m.join = compact
	}

	result := make(map[string]string, len(current)+len(previous))

	for _, k := range unionKeys(h.Keys(), sortedKeys(previous)) {
		v, r, err := m.mergeKey(k, current, previous)
		if err != nil {
			return c, err
		}

		if o.debug {
			log.DebugContext(ctx, "merge",
				slog.String("layer", scope.Layer),
				slog.String("key", k),
				slog.String("rule", r.String()),
				slog.String("value", v),
			)
		}

		result[k] = v
	}

	label := "layer " + strconv.Itoa(c.Len())
	if found {
		label += " -> layer " + strconv.Itoa(c.Number(index))
	}

	layer.Emit(ctx, label, marshal(h), marshal(result))

	head := c.Head().Clone()
	head.Env = layer.Snapshot(result)

	return c.WithHead(head), nil
}

// unionKeys returns the distinct keys of all groups in first-seen order.
func unionKeys(groups ...[]string) []string {
	var out []string

	seen := map[string]struct{}{}

	for _, keys := range groups {
		for _, k := range keys {
			if _, ok := seen[k]; ok {
				continue
			}

			seen[k] = struct{}{}
			out = append(out, k)
		}
	}

	return out
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}

func marshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return strconv.Quote(err.Error())
	}

	return string(b)
}
