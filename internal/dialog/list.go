package dialog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// ListPicker is the interactive Picker. One instance drives one dialog at a
// time; Pick blocks until a choice, cancellation, or ctx expiry.
type ListPicker struct {
	mu      sync.Mutex
	program *tea.Program
}

// NewListPicker returns a ready ListPicker.
func NewListPicker() *ListPicker {
	return &ListPicker{}
}

type appendMsg string
type cancelMsg struct{}

type listModel struct {
	title     string
	items     []string
	cursor    int
	chosen    int
	cancelled bool
}

func (m listModel) Init() tea.Cmd { return nil }

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.items) > 0 {
				m.chosen = m.cursor
				return m, tea.Quit
			}
		}
	case appendMsg:
		m.items = append(m.items, string(msg))
	case cancelMsg:
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m listModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n\n")
	if len(m.items) == 0 {
		b.WriteString(itemStyle.Render("  Chargement...") + "\n")
	}
	for i, item := range m.items {
		cursor := "  "
		style := itemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s", cursor, item)) + "\n")
	}
	b.WriteString(helpStyle.Render("  entrée: choisir │ échap: annuler"))
	return b.String()
}

// Pick runs the list dialog. Items added through Append while it is open
// appear at the bottom of the list.
func (p *ListPicker) Pick(ctx context.Context, title string, items []string) (int, error) {
	model := listModel{title: title, items: append([]string(nil), items...), chosen: -1}
	program := tea.NewProgram(model, tea.WithContext(ctx))

	p.mu.Lock()
	p.program = program
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.program = nil
		p.mu.Unlock()
	}()

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, fmt.Errorf("run picker: %w", err)
	}
	result := final.(listModel)
	if result.cancelled || result.chosen < 0 {
		return 0, ErrCancelled
	}
	return result.chosen, nil
}

// Append adds an item to the open dialog. No-op when no dialog is running.
func (p *ListPicker) Append(item string) {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()
	if program != nil {
		program.Send(appendMsg(item))
	}
}

// Close dismisses the open dialog as a cancellation. No-op when idle.
func (p *ListPicker) Close() {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()
	if program != nil {
		program.Send(cancelMsg{})
	}
}
