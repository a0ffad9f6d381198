package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/digiserv/backend/subm"
)

type state int

const (
	stateLogin state = iota
	stateList
)

const bannerDuration = 5 * time.Second

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	resolvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	state  state
	client *apiClient

	login loginModel
	list  listModel
}

func initialModel(client *apiClient) model {
	return model{
		state:  stateLogin,
		client: client,
		login:  newLoginModel(),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateLogin:
		return m.updateLogin(msg)
	case stateList:
		return m.updateList(msg)
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateLogin:
		return m.login.view()
	case stateList:
		return m.list.view()
	}
	return ""
}

// --- login ---

type loginModel struct {
	inputs   [2]textinput.Model
	focusIdx int
	errMsg   string
	busy     bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "admin email"
	email.Focus()
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	return loginModel{inputs: [2]textinput.Model{email, password}}
}

type loginDoneMsg struct {
	err error
}

func (m model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			m.login.focusIdx = (m.login.focusIdx + 1) % 2
			for i := range m.login.inputs {
				if i == m.login.focusIdx {
					m.login.inputs[i].Focus()
				} else {
					m.login.inputs[i].Blur()
				}
			}
			return m, nil
		case "enter":
			if m.login.busy {
				return m, nil
			}
			email := m.login.inputs[0].Value()
			password := m.login.inputs[1].Value()
			m.login.busy = true
			m.login.errMsg = ""
			client := m.client
			return m, func() tea.Msg {
				return loginDoneMsg{err: client.Login(email, password)}
			}
		}
	case loginDoneMsg:
		m.login.busy = false
		if msg.err != nil {
			m.login.errMsg = msg.err.Error()
			return m, nil
		}
		m.state = stateList
		m.list = newListModel()
		return m, m.list.fetchCmd(m.client)
	}

	var cmds [2]tea.Cmd
	for i := range m.login.inputs {
		m.login.inputs[i], cmds[i] = m.login.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds[0], cmds[1])
}

func (lm loginModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Admin Console — Sign In"))
	b.WriteString("\n\n")
	b.WriteString(lm.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(lm.inputs[1].View())
	b.WriteString("\n\n")
	if lm.busy {
		b.WriteString(dimStyle.Render("Signing in..."))
	} else if lm.errMsg != "" {
		b.WriteString(errorStyle.Render(lm.errMsg))
	} else {
		b.WriteString(dimStyle.Render("enter: sign in · tab: switch field · esc: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// --- submission list ---

type listFilter int

const (
	filterAll listFilter = iota
	filterPending
	filterResolved
)

func (f listFilter) String() string {
	switch f {
	case filterPending:
		return "pending"
	case filterResolved:
		return "resolved"
	default:
		return "all"
	}
}

type listModel struct {
	subms   []subm.Submission
	loading bool

	filter    listFilter
	searching bool
	search    textinput.Model

	cursor    int
	banner    string
	bannerSeq int
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "search name, email, or subject"
	search.CharLimit = 120
	return listModel{loading: true, search: search}
}

type listFetchedMsg struct {
	subms []subm.Submission
	err   error
}

type toggleDoneMsg struct {
	snapshot []subm.Submission
	err      error
}

type clearBannerMsg struct {
	seq int
}

func (lm listModel) fetchCmd(client *apiClient) tea.Cmd {
	return func() tea.Msg {
		subms, err := client.ListSubmissions()
		return listFetchedMsg{subms: subms, err: err}
	}
}

// visible applies the status filter and free-text search locally; it
// never re-queries the server.
func (lm listModel) visible() []subm.Submission {
	query := strings.ToLower(lm.search.Value())
	var out []subm.Submission
	for _, s := range lm.subms {
		if lm.filter == filterPending && s.Status != subm.StatusPending {
			continue
		}
		if lm.filter == filterResolved && s.Status != subm.StatusResolved {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(s.Name + " " + s.Email + " " + s.Problem)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

func (lm *listModel) clampCursor() {
	n := len(lm.visible())
	if lm.cursor >= n {
		lm.cursor = n - 1
	}
	if lm.cursor < 0 {
		lm.cursor = 0
	}
}

func (m model) showBannerCmd() (listModel, tea.Cmd) {
	lm := m.list
	lm.bannerSeq++
	seq := lm.bannerSeq
	return lm, tea.Tick(bannerDuration, func(time.Time) tea.Msg {
		return clearBannerMsg{seq: seq}
	})
}

func (m model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.searching {
			switch msg.String() {
			case "enter", "esc":
				m.list.searching = false
				m.list.search.Blur()
				m.list.clampCursor()
				return m, nil
			default:
				var cmd tea.Cmd
				m.list.search, cmd = m.list.search.Update(msg)
				m.list.clampCursor()
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "l":
			m.client.Logout()
			m.state = stateLogin
			m.login = newLoginModel()
			return m, textinput.Blink
		case "r":
			m.list.loading = true
			return m, m.list.fetchCmd(m.client)
		case "f":
			m.list.filter = (m.list.filter + 1) % 3
			m.list.clampCursor()
			return m, nil
		case "/":
			m.list.searching = true
			m.list.search.Focus()
			return m, textinput.Blink
		case "up", "k":
			if m.list.cursor > 0 {
				m.list.cursor--
			}
			return m, nil
		case "down", "j":
			if m.list.cursor < len(m.list.visible())-1 {
				m.list.cursor++
			}
			return m, nil
		case "enter", "t":
			return m.toggleSelected()
		}

	case listFetchedMsg:
		m.list.loading = false
		if msg.err != nil {
			var cmd tea.Cmd
			m.list, cmd = m.showBannerCmd()
			m.list.banner = "Failed to load submissions: " + msg.err.Error()
			return m, cmd
		}
		m.list.subms = msg.subms
		m.list.clampCursor()
		return m, nil

	case toggleDoneMsg:
		if msg.err != nil {
			// Remote update failed: revert the optimistic flip.
			m.list.subms = msg.snapshot
			m.list.clampCursor()
			var cmd tea.Cmd
			m.list, cmd = m.showBannerCmd()
			m.list.banner = "Failed to update status"
			return m, cmd
		}
		return m, nil

	case clearBannerMsg:
		if msg.seq == m.list.bannerSeq {
			m.list.banner = ""
		}
		return m, nil
	}

	return m, nil
}

// toggleSelected flips the selected submission's status locally first,
// then issues the remote update. toggleDoneMsg reverts on failure.
func (m model) toggleSelected() (tea.Model, tea.Cmd) {
	visible := m.list.visible()
	if m.list.cursor >= len(visible) {
		return m, nil
	}
	target := visible[m.list.cursor]

	newStatus := subm.StatusResolved
	if target.Status == subm.StatusResolved {
		newStatus = subm.StatusPending
	}

	snapshot := make([]subm.Submission, len(m.list.subms))
	copy(snapshot, m.list.subms)

	for i := range m.list.subms {
		if m.list.subms[i].ID == target.ID {
			m.list.subms[i].Status = newStatus
		}
	}

	client := m.client
	id := target.ID
	return m, func() tea.Msg {
		return toggleDoneMsg{snapshot: snapshot, err: client.UpdateStatus(id, newStatus)}
	}
}

func (lm listModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Contact Submissions"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  filter: %s", lm.filter)))
	if lm.search.Value() != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  search: %q", lm.search.Value())))
	}
	b.WriteString("\n\n")

	if lm.searching {
		b.WriteString(lm.search.View())
		b.WriteString("\n\n")
	}

	if lm.loading {
		b.WriteString(dimStyle.Render("Loading submissions..."))
		b.WriteString("\n")
		return b.String()
	}

	visible := lm.visible()
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("No submissions match."))
		b.WriteString("\n")
	}
	for i, s := range visible {
		status := pendingStyle.Render(string(s.Status))
		if s.Status == subm.StatusResolved {
			status = resolvedStyle.Render(string(s.Status))
		}
		line := fmt.Sprintf("%-10s %-20s %-28s %s", status, s.Name, s.Email, s.Subject())
		if i == lm.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if lm.banner != "" {
		b.WriteString(errorStyle.Render(lm.banner))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("t: toggle status · f: filter · /: search · r: refresh · l: logout · q: quit"))
	b.WriteString("\n")
	return b.String()
}
