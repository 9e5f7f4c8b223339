package layer

import (
	"context"
	"iter"
	"maps"
)

// Getter returns the resolved environment of a layer.
//
// Getters may block; once installed on a layer they must be pure and
// idempotent, returning the same snapshot on every call.
type Getter func(ctx context.Context) (map[string]string, error)

// Snapshot returns a Getter that always yields a copy of env.
func Snapshot(env map[string]string) Getter {
	frozen := maps.Clone(env)
	if frozen == nil {
		frozen = map[string]string{}
	}

	return func(context.Context) (map[string]string, error) {
		return maps.Clone(frozen), nil
	}
}

// Layer is one level of a nested sandbox configuration.
type Layer struct {
	// Name identifies the layer in diagnostics.
	Name string
	// Root is the sandbox directory owned by the layer.
	Root string
	// Env returns the layer's resolved environment, or is nil when no
	// environment has been declared in or inherited by this layer.
	Env Getter
}

// Clone returns a shallow copy of l.
func (l *Layer) Clone() *Layer {
	if l == nil {
		return &Layer{}
	}

	c := *l

	return &c
}

// node is a cell of the persistent list backing a Chain.
type node struct {
	layer *Layer
	next  *node
}

// Chain is an immutable most-recent-first sequence of layers.
// The zero value is an empty chain.
type Chain struct {
	head *node
	size int
}

// Of returns a chain holding layers in the given order, most recent first.
func Of(layers ...*Layer) Chain {
	var c Chain

	for i := len(layers) - 1; i >= 0; i-- {
		c = c.Push(layers[i])
	}

	return c
}

// Len returns the number of layers in c.
func (c Chain) Len() int { return c.size }

// Empty reports whether c holds no layers.
func (c Chain) Empty() bool { return c.size == 0 }

// Head returns the most recent layer, or nil if c is empty.
func (c Chain) Head() *Layer {
	if c.head == nil {
		return nil
	}

	return c.head.layer
}

// At returns the layer at index i (0 is the most recent), or nil if i is out
// of range.
func (c Chain) At(i int) *Layer {
	if i < 0 || i >= c.size {
		return nil
	}

	n := c.head
	for ; i > 0; i-- {
		n = n.next
	}

	return n.layer
}

// Push returns a new chain with l as its head and c as its tail.
func (c Chain) Push(l *Layer) Chain {
	return Chain{head: &node{layer: l, next: c.head}, size: c.size + 1}
}

// Pop returns the chain without its head. Popping an empty chain returns it
// unchanged.
func (c Chain) Pop() Chain {
	if c.head == nil {
		return c
	}

	return Chain{head: c.head.next, size: c.size - 1}
}

// WithHead returns a new chain with the head replaced by l and the tail shared
// with c. On an empty chain, WithHead is equivalent to Push.
func (c Chain) WithHead(l *Layer) Chain {
	if c.head == nil {
		return c.Push(l)
	}

	return Chain{head: &node{layer: l, next: c.head.next}, size: c.size}
}

// All returns an iterator over index/layer pairs, most recent first.
func (c Chain) All() iter.Seq2[int, *Layer] {
	return func(yield func(int, *Layer) bool) {
		i := 0
		for n := c.head; n != nil; n = n.next {
			if !yield(i, n.layer) {
				return
			}
			i++
		}
	}
}

// Layers returns the layers of c as a new slice, most recent first.
func (c Chain) Layers() []*Layer {
	out := make([]*Layer, 0, c.size)
	for _, l := range c.All() {
		out = append(out, l)
	}

	return out
}

// FindEnv returns the environment getter of the nearest layer that declares
// one, searching from the most recent layer, along with that layer's index.
// If no layer declares an environment, ok is false and index is -1.
func (c Chain) FindEnv() (get Getter, index int, ok bool) {
	for i, l := range c.All() {
		if l != nil && l.Env != nil {
			return l.Env, i, true
		}
	}

	return nil, -1, false
}

// Number returns the 1-based position of index i counted from the oldest
// layer, which is how layers are presented in diagnostics. It returns 0 for
// an index outside the chain.
func (c Chain) Number(i int) int {
	if i < 0 || i >= c.size {
		return 0
	}

	return c.size - i
}
