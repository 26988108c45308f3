package dialog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ctvaccess/captvty-bridge/internal/schedule"
)

// TimeLayout is the format the range dialog accepts, day first like the
// host application displays dates.
const TimeLayout = "02/01/2006 15:04"

// DateRangePicker asks for a start and end timestamp through two text
// fields. An end earlier than the start is clamped up to the start rather
// than rejected.
type DateRangePicker struct{}

// NewDateRangePicker returns a ready DateRangePicker.
func NewDateRangePicker() *DateRangePicker {
	return &DateRangePicker{}
}

type rangeModel struct {
	title     string
	inputs    [2]textinput.Model
	focused   int
	errText   string
	window    schedule.Window
	done      bool
	cancelled bool
}

func newRangeModel(title string, initial schedule.Window) rangeModel {
	var m rangeModel
	m.title = title
	labels := [2]string{TimeLayout, TimeLayout}
	values := [2]time.Time{initial.Start, initial.End}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = len(TimeLayout)
		ti.Width = len(TimeLayout) + 2
		if !values[i].IsZero() {
			ti.SetValue(values[i].Format(TimeLayout))
		}
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

func (m rangeModel) Init() tea.Cmd { return textinput.Blink }

func (m rangeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "tab", "shift+tab":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + 1) % len(m.inputs)
			m.inputs[m.focused].Focus()
			return m, nil
		case "enter":
			win, err := m.parse()
			if err != nil {
				m.errText = err.Error()
				return m, nil
			}
			m.window = win
			m.done = true
			return m, tea.Quit
		}
	case cancelMsg:
		m.cancelled = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m rangeModel) parse() (schedule.Window, error) {
	start, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(m.inputs[0].Value()), time.Local)
	if err != nil {
		return schedule.Window{}, fmt.Errorf("début invalide (attendu %s)", TimeLayout)
	}
	end, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(m.inputs[1].Value()), time.Local)
	if err != nil {
		return schedule.Window{}, fmt.Errorf("fin invalide (attendu %s)", TimeLayout)
	}
	return ClampWindow(start, end), nil
}

func (m rangeModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n\n")
	b.WriteString(itemStyle.Render("  Début ") + m.inputs[0].View() + "\n")
	b.WriteString(itemStyle.Render("  Fin   ") + m.inputs[1].View() + "\n")
	if m.errText != "" {
		b.WriteString("\n" + selectedStyle.Render("  "+m.errText) + "\n")
	}
	b.WriteString(helpStyle.Render("  tab: champ suivant │ entrée: valider │ échap: annuler"))
	return b.String()
}

// ClampWindow builds a window from the two timestamps, raising the end to the
// start when it falls before it.
func ClampWindow(start, end time.Time) schedule.Window {
	if end.Before(start) {
		end = start
	}
	w, _ := schedule.NewWindow(start, end)
	return w
}

// PickRange runs the range dialog and returns the validated window.
func (p *DateRangePicker) PickRange(ctx context.Context, title string, initial schedule.Window) (schedule.Window, error) {
	program := tea.NewProgram(newRangeModel(title, initial), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return schedule.Window{}, ctx.Err()
		}
		return schedule.Window{}, fmt.Errorf("run range picker: %w", err)
	}
	result := final.(rangeModel)
	if result.cancelled || !result.done {
		return schedule.Window{}, ErrCancelled
	}
	return result.window, nil
}
