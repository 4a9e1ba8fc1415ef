package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meshya/matrix-server-docker-compose/internal/setup"
)

type stepStatus int

const (
	stepPending stepStatus = iota
	stepRunning
	stepDone
	stepFailed
)

type progressStep struct {
	label  string
	status stepStatus
}

type stepDoneMsg struct {
	index int
	err   error
}

type progressModel struct {
	state   *wizardState
	steps   []progressStep
	spinner spinner.Model
	done    bool
	errMsg  string
}

func newProgressModel(state *wizardState) *progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &progressModel{
		state:   state,
		spinner: sp,
		steps: []progressStep{
			{label: "Generating secrets"},
			{label: "Rendering templates and writing artifacts"},
		},
	}
}

func (m *progressModel) Init() tea.Cmd {
	m.done = false
	m.errMsg = ""
	for i := range m.steps {
		m.steps[i].status = stepPending
	}
	m.steps[0].status = stepRunning
	return tea.Batch(m.spinner.Tick, m.runStep(0))
}

func (m *progressModel) runStep(index int) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch index {
		case 0:
			err = m.doSecrets()
		case 1:
			err = m.doWrite()
		}
		return stepDoneMsg{index: index, err: err}
	}
}

func (m *progressModel) doSecrets() error {
	s := m.state
	session := &setup.Session{
		Backend:           s.backend,
		Domain:            s.domain,
		TurnDomain:        s.turnDomain,
		AdminEmail:        s.email,
		AllowRegistration: s.allowReg,
		AllowFederation:   s.allowFed,
		CacheMB:           s.cacheMB,
	}
	if err := session.GenerateSecrets(setup.NewSecretSource()); err != nil {
		return err
	}
	s.session = session
	return nil
}

func (m *progressModel) doWrite() error {
	written, err := setup.WriteOutputs(m.state.templatesRoot, m.state.outputDir, m.state.session)
	if err != nil {
		return err
	}
	m.state.written = written
	return nil
}

func (m *progressModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stepDoneMsg:
		if msg.err != nil {
			m.steps[msg.index].status = stepFailed
			m.errMsg = msg.err.Error()
			m.done = true
			return m, nil
		}
		m.steps[msg.index].status = stepDone

		next := msg.index + 1
		if next >= len(m.steps) {
			m.done = true
			return m, func() tea.Msg { return navigateMsg{to: screenComplete} }
		}
		m.steps[next].status = stepRunning
		return m, m.runStep(next)

	case tea.KeyMsg:
		if m.done && m.errMsg != "" {
			if isEnter(msg) || isEsc(msg) {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Generating"))
	b.WriteString("\n\n")

	for _, step := range m.steps {
		var icon string
		switch step.status {
		case stepPending:
			icon = mutedStyle.Render("  ")
		case stepRunning:
			icon = m.spinner.View()
		case stepDone:
			icon = successStyle.Render("OK")
		case stepFailed:
			icon = errorStyle.Render("XX")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", icon, normalStyle.Render(step.label)))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  Error: " + m.errMsg))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("\n  press enter or esc to exit"))
	}

	return b.String()
}
