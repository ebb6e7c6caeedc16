// Package picker is the interactive history browser behind "clipmate pick".
package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go.klb.dev/clipmate/internal/history"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Choose key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "oldest")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "newest")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "restore")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	imageStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model lists history items newest-last and lets the user choose one.
type Model struct {
	items  []history.Item
	cursor int
	chosen int // 1-based; 0 = nothing chosen
	width  int
	height int
}

// New returns a Model with the cursor on the newest item.
func New(items []history.Item) Model {
	m := Model{items: items, width: 80, height: 24}
	if len(items) > 0 {
		m.cursor = len(items) - 1
	}
	return m
}

// Chosen returns the 1-based number of the chosen item, or 0.
func (m Model) Chosen() int { return m.chosen }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Choose):
			if len(m.items) > 0 {
				m.chosen = m.cursor + 1
			}
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Top):
			m.cursor = 0
		case key.Matches(msg, keys.Bottom):
			if len(m.items) > 0 {
				m.cursor = len(m.items) - 1
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("clipmate history (%d items)", len(m.items))))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(dimStyle.Render("history is empty"))
		b.WriteString("\n")
		return b.String()
	}

	// header, blank line, blank line, footer
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	start, end := window(m.cursor, len(m.items), rows)
	for i := start; i < end; i++ {
		line := m.row(i)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		} else if m.items[i].ItemType == history.Image {
			line = imageStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(helpLine()))
	return b.String()
}

func (m Model) row(i int) string {
	it := m.items[i]
	prefix := fmt.Sprintf("%4d  %s  %-5s  ", i+1, it.CapturedAt().Format(time.DateTime), it.ItemType)
	avail := m.width - lipgloss.Width(prefix)
	if avail < 8 {
		avail = 8
	}
	return prefix + oneLine(it.Data, avail)
}

// window returns the [start, end) slice of n rows of height size that keeps
// cursor visible.
func window(cursor, n, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > n {
		start = n - size
	}
	return start, start + size
}

// oneLine flattens whitespace runs and truncates to width runes.
func oneLine(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func helpLine() string {
	var parts []string
	for _, b := range []key.Binding{keys.Up, keys.Down, keys.Top, keys.Bottom, keys.Choose, keys.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Run shows the picker and returns the 1-based number of the chosen item,
// or 0 if the user quit without choosing.
func Run(items []history.Item) (int, error) {
	final, err := tea.NewProgram(New(items), tea.WithAltScreen()).Run()
	if err != nil {
		return 0, fmt.Errorf("picker: %w", err)
	}
	return final.(Model).Chosen(), nil
}
