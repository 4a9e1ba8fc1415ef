package tui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	domainRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*\.)+[a-zA-Z]{2,}$`)
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// textFieldModel is a single-question screen backed by a text input. The
// three domain/email questions and the cache size question differ only in
// copy, validation, and where the answer lands.
type textFieldModel struct {
	state    *wizardState
	input    textinput.Model
	title    string
	desc     string
	validate func(string) string // returns an error message, or ""
	get      func(*wizardState) string
	set      func(*wizardState, string)
	back     screen
	next     func(*wizardState) screen
	errMsg   string
}

func newTextFieldModel(state *wizardState, title, desc, placeholder string) *textFieldModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 254
	ti.Width = 40

	return &textFieldModel{
		state: state,
		input: ti,
		title: title,
		desc:  desc,
	}
}

func (m *textFieldModel) Init() tea.Cmd {
	if v := m.get(m.state); v != "" {
		m.input.SetValue(v)
	}
	m.input.Focus()
	return textinput.Blink
}

func (m *textFieldModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			back := m.back
			return m, func() tea.Msg { return navigateMsg{to: back} }
		}
		if isEnter(msg) {
			val := strings.TrimSpace(m.input.Value())
			if val == "" {
				m.errMsg = "A value is required"
				return m, nil
			}
			if m.validate != nil {
				if e := m.validate(val); e != "" {
					m.errMsg = e
					return m, nil
				}
			}
			m.errMsg = ""
			m.set(m.state, val)
			next := m.next(m.state)
			return m, func() tea.Msg { return navigateMsg{to: next} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *textFieldModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.desc))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n  " + errorStyle.Render(m.errMsg))
	}

	b.WriteString(helpStyle.Render("\n  enter: confirm  esc: back"))
	return b.String()
}

func validateDomain(val string) string {
	if !domainRegex.MatchString(val) {
		return "Invalid domain format"
	}
	return ""
}

func newDomainInputModel(state *wizardState) *textFieldModel {
	m := newTextFieldModel(state, "Server Domain",
		"Public domain of the Matrix homeserver.", "matrix.example.com")
	m.validate = validateDomain
	m.get = func(s *wizardState) string { return s.domain }
	m.set = func(s *wizardState, v string) { s.domain = v }
	m.back = screenBackendSelect
	m.next = func(*wizardState) screen { return screenTurnInput }
	return m
}

func newTurnInputModel(state *wizardState) *textFieldModel {
	m := newTextFieldModel(state, "TURN Domain",
		"Domain of the coturn audio/video relay.", "turn.example.com")
	m.validate = validateDomain
	m.get = func(s *wizardState) string { return s.turnDomain }
	m.set = func(s *wizardState, v string) { s.turnDomain = v }
	m.back = screenDomainInput
	m.next = func(*wizardState) screen { return screenEmailInput }
	return m
}

func newEmailInputModel(state *wizardState) *textFieldModel {
	m := newTextFieldModel(state, "Admin Email",
		"Contact used for TLS certificate issuance.", "admin@example.com")
	m.validate = func(val string) string {
		if !emailRegex.MatchString(val) {
			return "Invalid email format"
		}
		return ""
	}
	m.get = func(s *wizardState) string { return s.email }
	m.set = func(s *wizardState, v string) { s.email = v }
	m.back = screenTurnInput
	m.next = func(*wizardState) screen { return screenOptions }
	return m
}

func newCacheInputModel(state *wizardState) *textFieldModel {
	m := newTextFieldModel(state, "RocksDB Cache",
		"Conduit database cache size in MB.", "256")
	m.validate = func(val string) string {
		for _, r := range val {
			if r < '0' || r > '9' {
				return "Enter a whole number of megabytes"
			}
		}
		return ""
	}
	m.get = func(s *wizardState) string { return s.cacheMB }
	m.set = func(s *wizardState, v string) { s.cacheMB = v }
	m.back = screenOptions
	m.next = func(*wizardState) screen { return screenConfirm }
	return m
}
