package stack

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/envlayer/env"
	"github.com/ardnew/envlayer/layer"
)

const sample = `
root: /tmp/sandbox
append: [PATH]
platform: linux
layers:
  - name: outer
    env:
      - vars: {PATH: /outer/bin, COUNT: 3}
      - vars: {USER_HOME: {expr: 'env("HOME") + "/.config"'}}
  - name: inner
    root: /tmp/sandbox/inner
    env:
      - vars:
          PATH: /inner/bin
          HOME: {expr: 'root + "/home"'}
          TAGS: [a, b]
        append: {PATH: true}
`

var base = map[string]string{"PATH": "/usr/bin", "HOME": "/home/me"}

func decode(t *testing.T, doc string) *Stack {
	t.Helper()

	s, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	return s
}

func snapshot(t *testing.T, l *layer.Layer) map[string]string {
	t.Helper()

	require.NotNil(t, l)
	require.NotNil(t, l.Env)

	got, err := l.Env(context.Background())
	require.NoError(t, err)

	return got
}

func TestDecode(t *testing.T) {
	s := decode(t, sample)

	assert.Equal(t, "/tmp/sandbox", s.Root)
	assert.Equal(t, "linux", s.Platform)
	assert.Equal(t, env.AppendKeys{"PATH"}, s.Append)
	require.Len(t, s.Layers, 2)

	outer, inner := s.Layers[0], s.Layers[1]
	assert.Equal(t, "outer", outer.Name)
	assert.Empty(t, outer.Root)
	require.Len(t, outer.Env, 2)
	assert.Nil(t, outer.Env[0].Append)
	assert.Equal(t, "/outer/bin", outer.Env[0].Vars["PATH"])

	assert.Equal(t, "/tmp/sandbox/inner", inner.Root)
	require.Len(t, inner.Env, 1)
	assert.Equal(t, env.AppendMap{"PATH": env.On()}, inner.Env[0].Append)

	home, ok := inner.Env[0].Vars["HOME"].(*Expr)
	require.True(t, ok)
	assert.Equal(t, `root + "/home"`, home.Source)
}

func TestResolve(t *testing.T) {
	rec := &layer.Recorder{}
	ctx := layer.WithScope(context.Background(), layer.Scope{Sink: rec})

	c, err := decode(t, sample).Resolve(ctx, base)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	assert.Equal(t, "inner", c.Head().Name)
	assert.Equal(t, "/tmp/sandbox/inner", c.Head().Root)
	assert.Equal(t, "/tmp/sandbox", c.At(1).Root)

	assert.Equal(t, map[string]string{
		"PATH":      "/outer/bin:/usr/bin",
		"COUNT":     "3",
		"USER_HOME": "/home/me/.config",
	}, snapshot(t, c.At(1)))

	assert.Equal(t, map[string]string{
		"PATH":      "/inner/bin:/outer/bin:/usr/bin",
		"COUNT":     "3",
		"USER_HOME": "/home/me/.config",
		"HOME":      "/tmp/sandbox/inner/home",
		"TAGS":      `["a","b"]`,
	}, snapshot(t, c.Head()))

	var scopes []string
	for _, e := range rec.Entries() {
		scopes = append(scopes, e.Layer+": "+e.Scope)
	}

	assert.Equal(t, []string{
		"outer: layer 1",
		"outer: layer 1 -> layer 1",
		"inner: layer 2 -> layer 1",
	}, scopes)
}

func TestResolve_ExtraOptionsOverride(t *testing.T) {
	ctx := layer.WithScope(context.Background(), layer.Scope{})

	c, err := decode(t, sample).Resolve(ctx, base, env.WithPlatform("windows"))
	require.NoError(t, err)
	assert.Equal(t, "/inner/bin;/outer/bin;/usr/bin", snapshot(t, c.Head())["PATH"])
}

func TestResolve_AppendOverrides(t *testing.T) {
	s := decode(t, `
layers:
  - env:
      - vars: {PATH: /a, FLAGS: -x}
  - env:
      - vars: {PATH: /b, FLAGS: -y}
        append: {PATH: false, FLAGS: " "}
`)

	c, err := s.Resolve(layer.WithScope(context.Background(), layer.Scope{}), map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"PATH": "/b", "FLAGS": "-y -x"}, snapshot(t, c.Head()))
	assert.Equal(t, "layer 2", c.Head().Name)
}

func TestResolve_LayerWithoutEnvInherits(t *testing.T) {
	s := decode(t, `
layers:
  - name: outer
    env:
      - vars: {A: "1"}
  - name: middle
  - name: inner
    env:
      - vars: {B: "2"}
`)

	c, err := s.Resolve(layer.WithScope(context.Background(), layer.Scope{}), map[string]string{})
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	assert.Nil(t, c.At(1).Env)
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, snapshot(t, c.Head()))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", ErrDecode},
		{"no layers", "root: /x\n", ErrDecode},
		{"unknown field", "layers: [{name: a}]\nbogus: 1\n", ErrDecode},
		{"append scalar", "append: PATH\nlayers: [{name: a}]\n", env.ErrValidation},
		{"append list of maps", "append: [{a: b}]\nlayers: [{name: a}]\n", env.ErrValidation},
		{"append map of numbers", "layers: [{env: [{vars: {A: x}, append: {A: 1}}]}]\n", env.ErrValidation},
		{"expr syntax", "layers: [{env: [{vars: {A: {expr: 'root +'}}}]}]\n", ErrExpr},
		{"expr not string", "layers: [{env: [{vars: {A: {expr: 3}}}]}]\n", ErrExpr},
		{"expr unknown name", "layers: [{env: [{vars: {A: {expr: 'nope'}}}]}]\n", ErrExpr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOperation_InvalidDeclaration(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad key", "layers: [{env: [{vars: {'A B': x}}]}]\n"},
		{"empty vars", "layers: [{env: [{vars: {}}]}]\n"},
		{"bad append key", "append: {'A B': true}\nlayers: [{env: [{vars: {A: x}}]}]\n"},
		{"empty append key", "append: ['']\nlayers: [{env: [{vars: {A: x}}]}]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := decode(t, tt.doc).Operation(nil)
			require.ErrorIs(t, err, env.ErrValidation)
			assert.Nil(t, op)
		})
	}
}

func TestDeclaration_Hash(t *testing.T) {
	e, err := Compile(`platform + ":" + env("X")`)
	require.NoError(t, err)

	h := Declaration{Vars: map[string]any{
		"S": "text",
		"N": uint64(7),
		"M": map[string]any{"k": true},
		"E": e,
	}}.Hash(func(string) string { return "x" })

	got, err := env.Evaluate(h, env.Context{Platform: "darwin"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"S": "text",
		"N": "7",
		"M": `{"k":true}`,
		"E": "darwin:x",
	}, got)
}

func TestExpr_NonStringResult(t *testing.T) {
	e, err := Compile(`len(root) * 2`)
	require.NoError(t, err)

	v, err := e.Eval(env.Context{Root: "/abc"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, v)
}

func TestToValue_ExprNeedsSoleKey(t *testing.T) {
	v, err := toValue(map[string]any{"expr": "root", "other": 1})
	require.NoError(t, err)
	assert.IsType(t, map[string]any{}, v)
}

func TestNormalize(t *testing.T) {
	got := normalize(map[any]any{1: []any{map[any]any{"a": "b"}}})
	assert.Equal(t, map[string]any{"1": []any{map[string]any{"a": "b"}}}, got)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Layers, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrDecode)
	require.ErrorIs(t, err, os.ErrNotExist)
}
