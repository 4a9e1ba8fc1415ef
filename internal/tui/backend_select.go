package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meshya/matrix-server-docker-compose/internal/setup"
)

type backendOption struct {
	value setup.Backend
	label string
	desc  string
}

type backendSelectModel struct {
	state   *wizardState
	cursor  int
	options []backendOption
}

func newBackendSelectModel(state *wizardState) *backendSelectModel {
	return &backendSelectModel{
		state: state,
		options: []backendOption{
			{value: setup.BackendConduit, label: "conduit", desc: "Lightweight Rust homeserver, RocksDB storage"},
			{value: setup.BackendSynapse, label: "synapse", desc: "Reference implementation, needs the extra secret set"},
		},
	}
}

func (m *backendSelectModel) Init() tea.Cmd {
	for i, opt := range m.options {
		if opt.value == m.state.backend {
			m.cursor = i
			break
		}
	}
	return nil
}

func (m *backendSelectModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenWelcome} }
		}
		if isUp(msg) && m.cursor > 0 {
			m.cursor--
		}
		if isDown(msg) && m.cursor < len(m.options)-1 {
			m.cursor++
		}
		if isEnter(msg) {
			m.state.backend = m.options[m.cursor].value
			return m, func() tea.Msg { return navigateMsg{to: screenDomainInput} }
		}
	}
	return m, nil
}

func (m *backendSelectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select Backend"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Choose the homeserver implementation to deploy."))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		radio := radioOff
		label := normalStyle.Render(opt.label)
		if i == m.cursor {
			radio = radioOn
			label = selectedStyle.Render(opt.label)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", radio, label))
		b.WriteString(fmt.Sprintf("      %s\n", mutedStyle.Render(opt.desc)))
	}

	b.WriteString(helpStyle.Render("\n  up/down: navigate  enter: select  esc: back"))
	return b.String()
}
