package repl

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/envlayer/layer"
)

func testChain() layer.Chain {
	return layer.Of(
		&layer.Layer{Name: "inner", Root: "/s/inner", Env: layer.Snapshot(map[string]string{
			"PATH":  "/s/inner/bin:/outer/bin",
			"PAGER": "less",
			"MODE":  "outer",
		})},
		&layer.Layer{Name: "middle"},
		&layer.Layer{Name: "outer", Root: "/s", Env: layer.Snapshot(map[string]string{
			"PATH":  "/outer/bin",
			"MODE":  "outer",
			"STALE": "x",
		})},
	)
}

func testModel(t *testing.T) model {
	t.Helper()

	m, err := newModel(context.Background(), testChain())
	if err != nil {
		t.Fatal(err)
	}

	return m
}

func typeText(m model, s string) model {
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})

	return m
}

func TestMakeIndexOrigins(t *testing.T) {
	idx, err := makeIndex(context.Background(), testChain())
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"PATH":  "layer 3: inner",
		"PAGER": "layer 3: inner",
		"MODE":  "layer 1: outer",
	}

	if len(idx.origin) != len(want) {
		t.Errorf("origins = %v, want %d entries", idx.origin, len(want))
	}

	for k, w := range want {
		if got := idx.origin[k].String(); got != w {
			t.Errorf("origin[%s] = %q, want %q", k, got, w)
		}
	}

	if strings.Join(idx.names, ",") != "MODE,PAGER,PATH" {
		t.Errorf("names = %v", idx.names)
	}
}

func TestDescribe(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		input string
		want  string
		quit  bool
	}{
		{"PAGER", "PAGER=less", false},
		{"MODE", "(layer 1: outer)", false},
		{"PGR", "did you mean PAGER?", false},
		{":layers", "layer 2: middle", false},
		{":help", ":quit", false},
		{":bogus", "unknown command: bogus", false},
		{":quit", "", true},
	}

	for _, tt := range tests {
		out, quit := m.describe(tt.input)
		if quit != tt.quit {
			t.Errorf("describe(%q) quit = %v, want %v", tt.input, quit, tt.quit)
		}

		if !strings.Contains(out, tt.want) {
			t.Errorf("describe(%q) = %q, want substring %q", tt.input, out, tt.want)
		}
	}
}

func TestCompletion(t *testing.T) {
	m := typeText(testModel(t), "PA")

	if len(m.matches) != 2 {
		t.Fatalf("matches = %v, want PAGER and PATH", m.matches)
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	first := m.input.Value()

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	second := m.input.Value()

	if first == second || !strings.HasPrefix(first, "PA") || !strings.HasPrefix(second, "PA") {
		t.Errorf("tab cycled %q then %q", first, second)
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.input.Value(); got != "PA" {
		t.Errorf("Esc restored %q, want %q", got, "PA")
	}
}

func TestCompletionSingleCandidate(t *testing.T) {
	m := typeText(testModel(t), "MO")

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.input.Value(); got != "MODE" {
		t.Errorf("input = %q, want %q", got, "MODE")
	}

	if m.tabActive {
		t.Error("single candidate should not start tab cycling")
	}
}

func TestCommandCompletion(t *testing.T) {
	m := typeText(testModel(t), ":lay")

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.input.Value(); got != ":layers" {
		t.Errorf("input = %q, want %q", got, ":layers")
	}
}

func TestQuit(t *testing.T) {
	m, cmd := testModel(t).handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || cmd == nil {
		t.Error("Ctrl-C on empty input should quit")
	}

	if m.View() != "" {
		t.Errorf("View() after quit = %q", m.View())
	}

	m = typeText(testModel(t), "PA")

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if m.quitting || m.input.Value() != "" {
		t.Error("Ctrl-C with input should clear it")
	}
}

func TestExecuteClearsInput(t *testing.T) {
	m := typeText(testModel(t), "PAGER")

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Enter should print the result")
	}

	if m.input.Value() != "" {
		t.Errorf("input = %q after Enter", m.input.Value())
	}
}

func TestRenderCandidateBarEllipsis(t *testing.T) {
	m := typeText(testModel(t), "P")

	bar := renderCandidateBar(m.matches, -1, false, 8)
	if !strings.Contains(bar, "...") {
		t.Errorf("bar = %q, want ellipsis", bar)
	}

	if renderCandidateBar(nil, 0, false, 80) != "" {
		t.Error("empty matches should render nothing")
	}
}

func TestRunEmptyChain(t *testing.T) {
	if err := Run(context.Background(), layer.Chain{}); err != ErrNoLayers {
		t.Errorf("Run() error = %v, want %v", err, ErrNoLayers)
	}
}
