package repl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// commands are the names accepted after a leading ':'.
var commands = []string{"help", "layers", "quit"}

// computeMatches returns the ranked fuzzy matches of the current input
// against the variable names, or against the commands when the input starts
// with ':'. Empty input has no matches.
func (m model) computeMatches() fuzzy.Matches {
	word, candidates := m.input.Value(), m.idx.names

	if rest, ok := strings.CutPrefix(word, ":"); ok {
		word, candidates = rest, commands
	}

	if word == "" || len(candidates) == 0 {
		return nil
	}

	return fuzzy.Find(word, candidates)
}

// refreshMatches recomputes matches for the current input and leaves tab
// cycling.
func refreshMatches(m *model) {
	m.matches = m.computeMatches()
	m.tabActive = false
	m.suggIdx = -1
}

// complete replaces the input with candidate, keeping a leading ':'.
func complete(m *model, candidate string) {
	if strings.HasPrefix(m.input.Value(), ":") {
		candidate = ":" + candidate
	}

	m.input.SetValue(candidate)
	m.input.CursorEnd()
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within width. The selected candidate (when tabbing) uses the selected
// style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if i > 0 && used+entryWidth+ellipsisWidth > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, highlight := suggestionStyle, highlightStyle
	if selected {
		base, highlight = selectedStyle, selectedHighlightStyle
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		matched[i] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	return b.String()
}
