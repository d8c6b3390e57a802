package selector

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"
)

// Menu is a built-in terminal picker used when no external selector command
// is configured. Typing filters candidates by fuzzy match; enter confirms
// the highlighted candidate, or the typed text itself when it matches
// nothing and novel names are allowed.
type Menu struct{}

// Select runs the picker and returns the chosen name.
func (Menu) Select(_ context.Context, candidates []string, opts Options) (string, error) {
	p := tea.NewProgram(newMenuModel(candidates, opts))

	res, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running menu: %w", err)
	}

	m, ok := res.(*menuModel)
	if !ok || m.aborted || m.choice == "" {
		return "", ErrAborted
	}

	return m.choice, nil
}

// menuModel is the bubbletea model for the built-in picker.
type menuModel struct {
	opts       Options
	candidates []string
	filtered   []string
	query      string
	cursor     int
	choice     string
	aborted    bool
}

func newMenuModel(candidates []string, opts Options) *menuModel {
	return &menuModel{
		opts:       opts,
		candidates: candidates,
		filtered:   candidates,
	}
}

func (m *menuModel) Init() tea.Cmd {
	return nil
}

// Update handles key input.
func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true

		return m, tea.Quit

	case "enter":
		switch {
		case m.cursor < len(m.filtered):
			m.choice = m.filtered[m.cursor]
		case !m.opts.OnlyExisting && strings.TrimSpace(m.query) != "":
			m.choice = strings.TrimSpace(m.query)

		default:
			return m, nil
		}

		return m, tea.Quit

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "ctrl+n":
		if m.cursor+1 < len(m.filtered) {
			m.cursor++
		}

	case "backspace":
		if m.query != "" {
			m.query = m.query[:len(m.query)-1]
			m.refilter()
		}

	default:
		if key.Text != "" {
			m.query += key.Text
			m.refilter()
		}
	}

	return m, nil
}

// View renders the prompt, the query, and the filtered candidate list.
func (m *menuModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m *menuModel) render() string {
	prompt := m.opts.Prompt
	if prompt == "" {
		prompt = "profile:"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", prompt, m.query)

	for i, name := range m.filtered {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}

		b.WriteString(marker)
		b.WriteString(name)
		b.WriteByte('\n')
	}

	if len(m.filtered) == 0 && m.query != "" && !m.opts.OnlyExisting {
		fmt.Fprintf(&b, "  (enter creates %q)\n", strings.TrimSpace(m.query))
	}

	return b.String()
}

func (m *menuModel) refilter() {
	m.filtered = filterCandidates(m.query, m.candidates)

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// filterCandidates returns the candidates fuzzy-matching query, best match
// first. An empty query returns all candidates in their original order.
func filterCandidates(query string, candidates []string) []string {
	if query == "" {
		return candidates
	}

	matches := fuzzy.Find(query, candidates)

	filtered := make([]string, len(matches))
	for i, match := range matches {
		filtered[i] = match.Str
	}

	return filtered
}
