package main

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/digiserv/backend/intake"
	"github.com/digiserv/backend/subm"
)

type status int

const (
	statusIdle status = iota
	statusLoading
	statusSuccess
	statusError
)

// statusDuration is how long the success or error banner stays up
// before the form returns to its idle, editable state.
const statusDuration = 5 * time.Second

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldProblem
	fieldMessage
	fieldCount
)

var fieldKeys = [fieldCount]string{"name", "email", "phone", "problem", "message"}

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	inlineErr    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	pipeline *intake.DualPipeline

	inputs  [fieldCount - 1]textinput.Model
	message textarea.Model
	focus   int

	fieldErrs subm.FieldErrors
	status    status
	statusMsg string
	resetSeq  int

	spin spinner.Model
}

func initialModel(pipeline *intake.DualPipeline) model {
	var inputs [fieldCount - 1]textinput.Model
	placeholders := [...]string{"Your name", "you@example.com", "Phone (optional)", "What's the problem?"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 200
	}
	inputs[fieldName].Focus()

	message := textarea.New()
	message.Placeholder = "Describe your issue..."
	message.SetHeight(4)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return model{
		pipeline:  pipeline,
		inputs:    inputs,
		message:   message,
		fieldErrs: subm.FieldErrors{},
		spin:      spin,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type submitDoneMsg struct {
	decision intake.Decision
}

type resetMsg struct {
	seq int
}

func (m model) form() subm.Form {
	return subm.Form{
		Name:    m.inputs[fieldName].Value(),
		Email:   m.inputs[fieldEmail].Value(),
		Phone:   m.inputs[fieldPhone].Value(),
		Problem: m.inputs[fieldProblem].Value(),
		Message: m.message.Value(),
	}
}

func (m *model) setFocus(idx int) tea.Cmd {
	m.focus = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if idx == fieldMessage {
		return m.message.Focus()
	}
	m.message.Blur()
	return nil
}

func (m *model) clearForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.message.SetValue("")
}

// scheduleReset arms the auto-reset-to-idle timer. The sequence number
// makes stale timers no-ops, so an earlier banner can never clobber a
// later submission's state.
func (m *model) scheduleReset() tea.Cmd {
	m.resetSeq++
	seq := m.resetSeq
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return resetMsg{seq: seq}
	})
}

func (m model) submitCmd() tea.Cmd {
	pipeline := m.pipeline
	form := m.form()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return submitDoneMsg{decision: pipeline.Submit(ctx, form)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			if m.status != statusLoading {
				return m, m.setFocus((m.focus + 1) % fieldCount)
			}
			return m, nil
		case "shift+tab", "up":
			if m.status != statusLoading {
				return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			}
			return m, nil
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.focus != fieldMessage {
				return m.submit()
			}
		}

	case submitDoneMsg:
		if msg.decision.Delivered {
			m.status = statusSuccess
			m.statusMsg = msg.decision.Message
			m.clearForm()
		} else {
			m.status = statusError
			m.statusMsg = msg.decision.Err.Error()
			if m.statusMsg == "" {
				m.statusMsg = "Something went wrong. Please try again or call us directly."
			}
		}
		return m, m.scheduleReset()

	case resetMsg:
		// Only the most recently armed timer may reset the form.
		if msg.seq == m.resetSeq && (m.status == statusSuccess || m.status == statusError) {
			m.status = statusIdle
			m.statusMsg = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.status == statusLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.status == statusLoading {
		return m, nil
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.message, cmd = m.message.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit validates first and short-circuits entirely on invalid input:
// no network call is made and the offending fields are annotated.
func (m model) submit() (tea.Model, tea.Cmd) {
	if m.status == statusLoading {
		return m, nil
	}

	fieldErrs := subm.Validate(m.form(), true)
	m.fieldErrs = fieldErrs
	if !fieldErrs.OK() {
		return m, nil
	}

	m.status = statusLoading
	m.statusMsg = ""
	return m, tea.Batch(m.spin.Tick, m.submitCmd())
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Request a Quote — Digital Services"))
	b.WriteString("\n\n")

	labels := [...]string{"Name", "Email", "Phone", "Subject", "Message"}
	for i := 0; i < fieldCount; i++ {
		b.WriteString(labels[i])
		if errMsg, ok := m.fieldErrs[fieldKeys[i]]; ok {
			b.WriteString("  ")
			b.WriteString(inlineErr.Render(errMsg))
		}
		b.WriteString("\n")
		if i == fieldMessage {
			b.WriteString(m.message.View())
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.status {
	case statusLoading:
		b.WriteString(m.spin.View())
		b.WriteString(" Sending...")
	case statusSuccess:
		b.WriteString(successStyle.Render(m.statusMsg))
	case statusError:
		b.WriteString(inlineErr.Render(m.statusMsg))
	default:
		b.WriteString(helpStyle.Render("enter/ctrl+s: send · tab: next field · esc: quit"))
	}
	b.WriteString("\n")
	return b.String()
}
