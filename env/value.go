package env

import (
	"encoding/json"
	"maps"
	"slices"
)

// Context is passed to [Deferred] values when they are evaluated.
type Context struct {
	// Root is the sandbox directory of the layer being declared.
	Root string
	// Platform is the GOOS-style platform name delimiters are chosen for.
	Platform string
}

// Value is the value of one variable in a [Hash].
// It is one of [Literal], [Structured], or [Deferred].
type Value interface {
	resolve(ctx Context) (any, error)
	// raw returns the form used when the declaration is logged,
	// and false if the value has no such form.
	raw() (any, bool)
}

// Literal is a string value used verbatim.
type Literal string

func (v Literal) resolve(Context) (any, error) { return string(v), nil }

func (v Literal) raw() (any, bool) { return string(v), true }

// structured holds any JSON-serializable value.
type structured struct{ v any }

// Structured returns a value rendered as JSON text, unless v is a string.
func Structured(v any) Value { return structured{v: v} }

func (v structured) resolve(Context) (any, error) { return v.v, nil }

func (v structured) raw() (any, bool) { return v.v, true }

// Deferred is a value computed from the declaring layer's [Context] when the
// declaration is merged. A non-string result is rendered as JSON text.
type Deferred func(ctx Context) (any, error)

func (v Deferred) resolve(ctx Context) (any, error) { return v(ctx) }

func (v Deferred) raw() (any, bool) { return nil, false }

// Hash maps variable names to values.
type Hash map[string]Value

// Keys returns the names in h in sorted order.
func (h Hash) Keys() []string {
	return slices.Sorted(maps.Keys(h))
}

// MarshalJSON renders the hash as it was declared. Deferred values have no
// static form and are omitted.
func (h Hash) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(h))

	for k, v := range h {
		if v == nil {
			continue
		}

		if r, ok := v.raw(); ok {
			out[k] = r
		}
	}

	return json.Marshal(out)
}
