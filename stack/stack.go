package stack

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/envlayer/env"
	"github.com/ardnew/envlayer/log"
	"github.com/ardnew/envlayer/pkg"
)

// Stack is a decoded stack file.
type Stack struct {
	// Root is the sandbox directory of the outermost layer when it does not
	// name one itself.
	Root string
	// Platform selects the default delimiter. Empty means the running
	// platform.
	Platform string
	// Append is used by declarations that have no append specification.
	Append env.Append
	// Compact joins list values item by item.
	Compact bool
	// Layers are ordered outermost first.
	Layers []Layer
}

// Layer is one nested sandbox layer.
type Layer struct {
	Name string
	Root string
	Env  []Declaration
}

// Declaration is a set of variables merged in one step.
type Declaration struct {
	// Vars maps names to a string, an [*Expr], or any JSON value.
	Vars map[string]any
	// Append overrides the stack's append specification when non-nil.
	Append env.Append
}

// Hash converts the declaration to an [env.Hash]. Expressions read base
// variables with lookup.
func (d Declaration) Hash(lookup Lookup) env.Hash {
	h := make(env.Hash, len(d.Vars))

	for k, v := range d.Vars {
		switch v := v.(type) {
		case string:
			h[k] = env.Literal(v)
		case *Expr:
			h[k] = v.Deferred(lookup)
		default:
			h[k] = env.Structured(v)
		}
	}

	return h
}

// Load reads the stack file at path.
func Load(path string) (*Stack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrDecode.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, pkg.WrapError(err).With(slog.String("path", path))
	}

	log.Debug("loaded stack",
		slog.String("path", path),
		slog.Int("layers", len(s.Layers)),
	)

	return s, nil
}

// Decode reads a stack file from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Stack, error) {
	var f file

	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&f); err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	return f.stack()
}

func (f file) stack() (*Stack, error) {
	if len(f.Layers) == 0 {
		return nil, ErrDecode.Wrap(errNoLayers)
	}

	spec, err := toAppend(f.Append)
	if err != nil {
		return nil, err
	}

	s := &Stack{
		Root:     f.Root,
		Platform: f.Platform,
		Append:   spec,
		Compact:  f.Compact,
		Layers:   make([]Layer, 0, len(f.Layers)),
	}

	for i, lf := range f.Layers {
		l := Layer{Name: lf.Name, Root: lf.Root}
		if l.Name == "" {
			l.Name = "layer " + strconv.Itoa(i+1)
		}

		for j, df := range lf.Env {
			d, err := df.declaration()
			if err != nil {
				return nil, pkg.WrapError(err).With(
					slog.String("layer", l.Name),
					slog.Int("declaration", j+1),
				)
			}

			l.Env = append(l.Env, d)
		}

		s.Layers = append(s.Layers, l)
	}

	return s, nil
}

func (df declareFile) declaration() (Declaration, error) {
	spec, err := toAppend(df.Append)
	if err != nil {
		return Declaration{}, err
	}

	d := Declaration{Vars: make(map[string]any, len(df.Vars)), Append: spec}

	for k, v := range df.Vars {
		val, err := toValue(v)
		if err != nil {
			return Declaration{}, pkg.WrapError(err).With(slog.String("key", k))
		}

		d.Vars[k] = val
	}

	return d, nil
}

// toValue maps a decoded YAML value to a declaration value.
func toValue(v any) (any, error) {
	v = normalize(v)

	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return v, nil
	}

	raw, ok := m["expr"]
	if !ok {
		return v, nil
	}

	source, ok := raw.(string)
	if !ok {
		return nil, ErrExpr.Wrap(errExprSource)
	}

	return Compile(source)
}

// normalize converts mappings with non-string keys into map[string]any so
// they can be rendered as JSON.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}

		return out

	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}

		return out

	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}

		return out

	default:
		return v
	}
}

// toAppend maps a decoded append specification. A missing specification
// yields nil.
func toAppend(v any) (env.Append, error) {
	switch t := normalize(v).(type) {
	case nil:
		return nil, nil

	case []any:
		keys := make(env.AppendKeys, 0, len(t))

		for _, e := range t {
			k, ok := e.(string)
			if !ok {
				return nil, env.ErrValidation.Wrap(errAppendShape)
			}

			keys = append(keys, k)
		}

		return keys, nil

	case map[string]any:
		m := make(env.AppendMap, len(t))

		for k, e := range t {
			switch d := e.(type) {
			case bool:
				m[k] = env.Bool(d)
			case string:
				m[k] = env.Sep(d)
			default:
				return nil, env.ErrValidation.
					With(slog.String("append", k)).
					Wrap(errAppendShape)
			}
		}

		return m, nil

	default:
		return nil, env.ErrValidation.Wrap(errAppendShape)
	}
}
