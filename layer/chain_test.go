package layer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_ZeroValueIsEmpty(t *testing.T) {
	var c Chain

	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Head())
	assert.Nil(t, c.At(0))
	assert.Equal(t, c, c.Pop())

	_, i, ok := c.FindEnv()
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

func TestChain_OfOrdersMostRecentFirst(t *testing.T) {
	inner, outer := &Layer{Name: "inner"}, &Layer{Name: "outer"}
	c := Of(inner, outer)

	require.Equal(t, 2, c.Len())
	assert.Same(t, inner, c.Head())
	assert.Same(t, outer, c.At(1))
	assert.Nil(t, c.At(2))
	assert.Nil(t, c.At(-1))
	assert.Equal(t, []*Layer{inner, outer}, c.Layers())
}

func TestChain_WithHeadSharesTail(t *testing.T) {
	a, b, c0 := &Layer{Name: "a"}, &Layer{Name: "b"}, &Layer{Name: "c"}
	orig := Of(a, b, c0)

	replaced := a.Clone()
	replaced.Name = "a2"

	next := orig.WithHead(replaced)

	assert.Same(t, a, orig.Head(), "original head must be untouched")
	assert.Equal(t, "a", orig.Head().Name)
	assert.Same(t, replaced, next.Head())
	assert.Same(t, orig.At(1), next.At(1))
	assert.Same(t, orig.At(2), next.At(2))
	assert.Equal(t, orig.Len(), next.Len())
}

func TestChain_WithHeadOnEmptyPushes(t *testing.T) {
	l := &Layer{Name: "only"}
	c := Chain{}.WithHead(l)

	assert.Equal(t, 1, c.Len())
	assert.Same(t, l, c.Head())
}

func TestChain_IndependentBranches(t *testing.T) {
	base := Of(&Layer{Name: "base"})

	left := base.Push(&Layer{Name: "left"})
	right := base.Push(&Layer{Name: "right"})

	assert.Equal(t, "left", left.Head().Name)
	assert.Equal(t, "right", right.Head().Name)
	assert.Same(t, left.At(1), right.At(1))
	assert.Equal(t, 1, base.Len())
}

func TestChain_FindEnvReturnsNearest(t *testing.T) {
	near := Snapshot(map[string]string{"A": "near"})
	far := Snapshot(map[string]string{"A": "far"})

	c := Of(
		&Layer{Name: "top"},
		&Layer{Name: "mid", Env: near},
		&Layer{Name: "bottom", Env: far},
	)

	get, i, ok := c.FindEnv()
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, c.Number(i))
	assert.Equal(t, 3, c.Number(0))
	assert.Equal(t, 0, c.Number(3))

	env, err := get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "near", env["A"])
}

func TestChain_AllStopsEarly(t *testing.T) {
	c := Of(&Layer{}, &Layer{}, &Layer{})

	n := 0
	for range c.All() {
		n++
		if n == 2 {
			break
		}
	}

	assert.Equal(t, 2, n)
}

func TestSnapshot_IsIdempotentAndIsolated(t *testing.T) {
	src := map[string]string{"K": "v"}
	get := Snapshot(src)
	src["K"] = "changed"

	first, err := get(context.Background())
	require.NoError(t, err)

	first["K"] = "mutated"

	second, err := get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"K": "v"}, second)

	empty, err := Snapshot(nil)(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestLayer_Clone(t *testing.T) {
	var nilLayer *Layer
	assert.NotNil(t, nilLayer.Clone())

	l := &Layer{Name: "x", Root: "/r"}
	c := l.Clone()
	c.Name = "y"

	assert.Equal(t, "x", l.Name)
	assert.Equal(t, "/r", c.Root)
}
