package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

var (
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Builtin is the in-process fallback picker: a fuzzy-filtered single-select
// list, so `nt notes` works without fzf installed.
type Builtin struct{}

func (b *Builtin) Pick(candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	final, err := tea.NewProgram(newBuiltinModel(candidates)).Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(builtinModel)
	if !ok || m.cancelled || len(m.filtered) == 0 {
		return nil, nil
	}
	return []string{m.candidates[m.filtered[m.cursor]]}, nil
}

type builtinModel struct {
	candidates []string
	filtered   []int // indices into candidates
	cursor     int
	input      textinput.Model
	height     int
	cancelled  bool
	done       bool
}

func newBuiltinModel(candidates []string) builtinModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40

	filtered := make([]int, len(candidates))
	for i := range candidates {
		filtered[i] = i
	}

	return builtinModel{
		candidates: candidates,
		filtered:   filtered,
		input:      ti,
		height:     15,
	}
}

func (m builtinModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m builtinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Height > 4 {
			m.height = msg.Height - 4
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *builtinModel) applyFilter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = make([]int, len(m.candidates))
		for i := range m.candidates {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(query, m.candidates)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m builtinModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(mutedStyle.Render("no matches"))
		b.WriteString("\n")
	} else {
		start, end := visibleWindow(m.cursor, len(m.filtered), m.height)
		for i := start; i < end; i++ {
			line := m.candidates[m.filtered[i]]
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> ") + selectedStyle.Render(line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d/%d  enter:select  esc:cancel", len(m.filtered), len(m.candidates))))
	return b.String()
}

func visibleWindow(cursor, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}
