package repl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/envlayer/layer"
	"github.com/ardnew/envlayer/log"
)

const prompt = "➜ "

const helpMessage = `Type a variable name and press Enter to print it.
  Tab / Shift-Tab  cycle through completions
  :layers          list the layers of the stack
  :help            print this message
  :quit            exit (also Ctrl-C or Ctrl-D on an empty line)`

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	highlightStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	selectedHighlightStyle = selectedStyle.Bold(true)
)

// model is the Bubble Tea model of the browser.
type model struct {
	ctx       context.Context
	input     textinput.Model
	idx       index
	matches   fuzzy.Matches // current fuzzy match results
	suggIdx   int           // selected candidate index
	tabActive bool          // whether user is tab-cycling
	preTab    string        // input text before tab-cycling began
	width     int           // terminal width for ellipsization
	quitting  bool
}

// Run browses the variables of c until the user quits.
func Run(ctx context.Context, c layer.Chain) error {
	if c.Empty() {
		return ErrNoLayers
	}

	m, err := newModel(ctx, c)
	if err != nil {
		return err
	}

	log.TraceContext(ctx, "repl start",
		slog.Int("layers", len(m.idx.layers)),
		slog.Int("vars", len(m.idx.names)),
	)

	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}

const defaultWidth = 80

func newModel(ctx context.Context, c layer.Chain) (model, error) {
	idx, err := makeIndex(ctx, c)
	if err != nil {
		return model{}, err
	}

	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = defaultWidth

	return model{
		ctx:     ctx,
		input:   ti,
		idx:     idx,
		suggIdx: -1,
		width:   defaultWidth,
	}, nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(prompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.input.Value() == "":
		b.WriteString(hintStyle.Render("Type a variable name, or :help"))
	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	log.TraceContext(m.ctx, "repl keypress", slog.String("key", msg.String()))

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		refreshMatches(&m)

		return m, nil

	case tea.KeyEnter:
		if m.tabActive {
			refreshMatches(&m)

			return m, nil
		}

		return m.execute()

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.input.SetValue(m.preTab)
			m.input.CursorEnd()
			refreshMatches(&m)
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m)

	return m, cmd
}

// cycle moves the selected completion by step. A single candidate is
// completed immediately.
func (m model) cycle(step int) model {
	if len(m.matches) == 0 {
		return m
	}

	if len(m.matches) == 1 {
		complete(&m, m.matches[0].Str)
		m.matches = nil
		m.tabActive = false
		m.suggIdx = -1

		return m
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + step + len(m.matches)) % len(m.matches)
	} else {
		m.tabActive = true
		m.preTab = m.input.Value()
		m.suggIdx = 0

		if step < 0 {
			m.suggIdx = len(m.matches) - 1
		}
	}

	complete(&m, m.matches[m.suggIdx].Str)

	return m
}

// execute runs the submitted input and prints its result above the prompt.
func (m model) execute() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.input.SetValue("")
	refreshMatches(&m)

	out, quit := m.describe(input)
	if quit {
		m.quitting = true

		return m, tea.Quit
	}

	return m, tea.Println(out)
}

// describe returns the rendered result of input and whether it asks to quit.
func (m model) describe(input string) (string, bool) {
	if name, ok := strings.CutPrefix(input, ":"); ok {
		switch name {
		case "quit", "q":
			return "", true
		case "help":
			return hintStyle.Render(helpMessage), false
		case "layers":
			return m.describeLayers(), false
		default:
			return errorStyle.Render("unknown command: " + name), false
		}
	}

	v, ok := m.idx.vars[input]
	if !ok {
		msg := "unknown variable: " + input

		if matches := fuzzy.Find(input, m.idx.names); len(matches) > 0 {
			msg += " (did you mean " + matches[0].Str + "?)"
		}

		return errorStyle.Render(msg), false
	}

	return resultStyle.Render(input+"="+v) + "  " +
		hintStyle.Render("("+m.idx.origin[input].String()+")"), false
}

func (m model) describeLayers() string {
	lines := make([]string, 0, len(m.idx.layers))

	for i, l := range m.idx.layers {
		o := origin{number: i + 1, name: l.Name}

		line := o.String()
		if l.Root != "" {
			line += " " + hintStyle.Render("("+l.Root+")")
		}

		if l.Env == nil {
			line += " " + hintStyle.Render("no environment declared")
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
