package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meshya/matrix-server-docker-compose/internal/setup"
)

type optionToggle struct {
	label string
	desc  string
	get   func(*wizardState) bool
	set   func(*wizardState, bool)
}

type optionsModel struct {
	state   *wizardState
	cursor  int
	toggles []optionToggle
}

func newOptionsModel(state *wizardState) *optionsModel {
	return &optionsModel{
		state: state,
		toggles: []optionToggle{
			{
				label: "Allow public registration",
				desc:  "Anyone can create an account on this server",
				get:   func(s *wizardState) bool { return s.allowReg },
				set:   func(s *wizardState, v bool) { s.allowReg = v },
			},
			{
				label: "Allow federation",
				desc:  "Exchange messages with other Matrix servers",
				get:   func(s *wizardState) bool { return s.allowFed },
				set:   func(s *wizardState, v bool) { s.allowFed = v },
			},
		},
	}
}

func (m *optionsModel) Init() tea.Cmd {
	return nil
}

func (m *optionsModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenEmailInput} }
		}
		if isUp(msg) && m.cursor > 0 {
			m.cursor--
		}
		if isDown(msg) && m.cursor < len(m.toggles)-1 {
			m.cursor++
		}
		if isSpace(msg) {
			t := m.toggles[m.cursor]
			t.set(m.state, !t.get(m.state))
		}
		if isEnter(msg) {
			next := screenConfirm
			if m.state.backend == setup.BackendConduit {
				next = screenCacheInput
			}
			return m, func() tea.Msg { return navigateMsg{to: next} }
		}
	}
	return m, nil
}

func (m *optionsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Server Options"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Toggle feature flags for the homeserver."))
	b.WriteString("\n\n")

	for i, t := range m.toggles {
		check := checkOff
		if t.get(m.state) {
			check = checkOn
		}
		label := normalStyle.Render(t.label)
		prefix := " "
		if i == m.cursor {
			label = selectedStyle.Render(t.label)
			prefix = cursorChar
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n", prefix, check, label))
		b.WriteString(fmt.Sprintf("      %s\n", mutedStyle.Render(t.desc)))
	}

	b.WriteString(helpStyle.Render("\n  up/down: navigate  space: toggle  enter: continue  esc: back"))
	return b.String()
}
