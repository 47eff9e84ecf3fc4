// Package tui renders the contact form in a terminal.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lumbunggroup/lumbung-backend/models/contact"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1B5E20"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9A825"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	buttonStyle  = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("#1B5E20")).Foreground(lipgloss.Color("15"))
	busyBtnStyle = buttonStyle.Background(lipgloss.Color("8"))
)

// deliveryDoneMsg is sent once a submit attempt resolves.
type deliveryDoneMsg struct{}

// Model is a bubbletea model over one contact.Controller. Every keystroke is
// forwarded to the controller; the view is rebuilt from its state.
type Model struct {
	ctrl    *contact.Controller
	fields  []contact.FieldDefinition
	inputs  []textinput.Model
	focus   int
	timeout time.Duration
	cancel  context.CancelFunc
	quit    bool
}

// NewModel builds a form for ctrl. timeout bounds each delivery; zero means
// no bound.
func NewModel(ctrl *contact.Controller, timeout time.Duration) *Model {
	fields := ctrl.Schema().Fields()
	m := &Model{
		ctrl:    ctrl,
		fields:  fields,
		inputs:  make([]textinput.Model, len(fields)),
		timeout: timeout,
	}
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = f.Placeholder
		ti.Width = 60
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case deliveryDoneMsg:
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.syncFromController()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quit = true
		if m.cancel != nil {
			m.cancel()
		}
		m.ctrl.Dispose()
		return m, tea.Quit
	case "tab", "down":
		m.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	case "ctrl+s":
		return m, m.submit()
	case "enter":
		if m.focus == len(m.inputs)-1 {
			return m, m.submit()
		}
		m.moveFocus(1)
		return m, nil
	case "left", "right":
		if m.fields[m.focus].Kind == contact.KindEnumSelect {
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			m.cycleOption(step)
			return m, nil
		}
	}

	if m.fields[m.focus].Kind == contact.KindEnumSelect {
		// Select values only change through left/right.
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.edit(m.focus, m.inputs[m.focus].Value())
	return m, cmd
}

func (m *Model) edit(i int, value string) {
	if err := m.ctrl.Edit(m.fields[i].Key, value); err != nil {
		// Dropped while sending; show the controller's value again.
		m.inputs[i].SetValue(m.ctrl.Values().Get(m.fields[i].Key))
	}
}

func (m *Model) cycleOption(step int) {
	field := m.fields[m.focus]
	if len(field.Options) == 0 {
		return
	}
	current := -1
	value := m.inputs[m.focus].Value()
	for i, opt := range field.Options {
		if opt.Value == value {
			current = i
			break
		}
	}
	next := (current + step + len(field.Options)) % len(field.Options)
	if current == -1 && step < 0 {
		next = len(field.Options) - 1
	}
	m.inputs[m.focus].SetValue(field.Options[next].Value)
	m.edit(m.focus, field.Options[next].Value)
}

func (m *Model) moveFocus(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *Model) submit() tea.Cmd {
	if m.ctrl.State().Busy() {
		return nil
	}
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if m.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), m.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	m.cancel = cancel
	done := m.ctrl.Submit(ctx)
	return waitForDelivery(done)
}

func waitForDelivery(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return deliveryDoneMsg{}
	}
}

// syncFromController copies controller values back into the inputs; a
// successful send clears them.
func (m *Model) syncFromController() {
	values := m.ctrl.Values()
	for i, f := range m.fields {
		m.inputs[i].SetValue(values.Get(f.Key))
	}
}

func (m *Model) View() string {
	if m.quit {
		return ""
	}
	state := m.ctrl.State()
	result := m.ctrl.Errors()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Lumbung Group - Contact Us"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		label := f.Label
		if f.Required {
			label += " *"
		}
		if i == m.focus {
			b.WriteString(focusStyle.Render(label))
		} else {
			b.WriteString(labelStyle.Render(label))
		}
		b.WriteString("\n")
		if f.Kind == contact.KindEnumSelect {
			b.WriteString(m.renderSelect(i, f))
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("\n")
		if msg, ok := result.Message(f.Key); ok {
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if state.Busy() {
		b.WriteString(busyBtnStyle.Render(state.ButtonLabel()))
	} else {
		b.WriteString(buttonStyle.Render(state.ButtonLabel()))
	}

	switch state.Phase {
	case contact.PhaseSuccess:
		b.WriteString("\n\n" + successStyle.Render(state.Notice()))
	case contact.PhaseFailed:
		b.WriteString("\n\n" + errorStyle.Render(state.Notice()))
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("tab/shift+tab: move  ←/→: choose category  ctrl+s: send  esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderSelect(i int, f contact.FieldDefinition) string {
	value := m.inputs[i].Value()
	if value == "" {
		return mutedStyle.Render("> " + f.Placeholder)
	}
	return fmt.Sprintf("> %s", f.OptionLabel(value))
}
