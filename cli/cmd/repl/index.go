package repl

import (
	"context"
	"maps"
	"slices"
	"strconv"

	"github.com/ardnew/envlayer/layer"
)

// origin names the layer a variable's final value came from.
type origin struct {
	number int
	name   string
}

func (o origin) String() string {
	s := "layer " + strconv.Itoa(o.number)
	if o.name != "" {
		s += ": " + o.name
	}

	return s
}

// index holds the resolved variables of the innermost layer together with
// the layer that last changed each of them.
type index struct {
	vars   map[string]string
	names  []string
	origin map[string]origin
	layers []*layer.Layer // outermost first
}

// makeIndex walks c from the outermost layer inward. A variable's origin is
// the innermost layer in which its value differs from the value inherited
// from the layers before it.
func makeIndex(ctx context.Context, c layer.Chain) (index, error) {
	idx := index{
		vars:   map[string]string{},
		origin: map[string]origin{},
		layers: c.Layers(),
	}

	slices.Reverse(idx.layers)

	for i, l := range idx.layers {
		if l.Env == nil {
			continue
		}

		m, err := l.Env(ctx)
		if err != nil {
			return index{}, err
		}

		for k, v := range m {
			if prev, ok := idx.vars[k]; !ok || prev != v {
				idx.origin[k] = origin{number: i + 1, name: l.Name}
			}
		}

		// Variables are carried forward by every declaration, so the latest
		// snapshot replaces the set.
		idx.vars = m
	}

	for k := range idx.origin {
		if _, ok := idx.vars[k]; !ok {
			delete(idx.origin, k)
		}
	}

	idx.names = slices.Sorted(maps.Keys(idx.vars))

	return idx, nil
}
