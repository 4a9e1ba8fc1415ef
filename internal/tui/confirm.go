package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meshya/matrix-server-docker-compose/internal/setup"
)

type confirmModel struct {
	state  *wizardState
	cursor int
}

func newConfirmModel(state *wizardState) *confirmModel {
	return &confirmModel{state: state}
}

func (m *confirmModel) Init() tea.Cmd {
	m.cursor = 0
	return nil
}

func (m *confirmModel) backScreen() screen {
	if m.state.backend == setup.BackendConduit {
		return screenCacheInput
	}
	return screenOptions
}

func (m *confirmModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			back := m.backScreen()
			return m, func() tea.Msg { return navigateMsg{to: back} }
		}
		if (isLeft(msg) || isUp(msg)) && m.cursor > 0 {
			m.cursor--
		}
		if (isRight(msg) || isDown(msg)) && m.cursor < 2 {
			m.cursor++
		}
		if isEnter(msg) {
			switch m.cursor {
			case 0:
				return m, func() tea.Msg { return navigateMsg{to: screenProgress} }
			case 1:
				back := m.backScreen()
				return m, func() tea.Msg { return navigateMsg{to: back} }
			case 2:
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func onOff(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func (m *confirmModel) View() string {
	var b strings.Builder
	s := m.state

	b.WriteString(titleStyle.Render("Confirm Deployment"))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("  Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Backend:       %s\n", selectedStyle.Render(s.backend.String())))
	b.WriteString(fmt.Sprintf("  Server domain: %s\n", selectedStyle.Render(s.domain)))
	b.WriteString(fmt.Sprintf("  TURN domain:   %s\n", selectedStyle.Render(s.turnDomain)))
	b.WriteString(fmt.Sprintf("  Admin email:   %s\n", selectedStyle.Render(s.email)))
	b.WriteString(fmt.Sprintf("  Registration:  %s\n", normalStyle.Render(onOff(s.allowReg))))
	b.WriteString(fmt.Sprintf("  Federation:    %s\n", normalStyle.Render(onOff(s.allowFed))))
	if s.backend == setup.BackendConduit {
		b.WriteString(fmt.Sprintf("  RocksDB cache: %s\n", normalStyle.Render(s.cacheMB+" MB")))
	}
	b.WriteString(fmt.Sprintf("  Output:        %s\n", mutedStyle.Render(s.outputDir)))

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  Secrets are generated fresh; existing files in the output directory are overwritten."))
	b.WriteString("\n\n")

	buttons := []string{"Generate", "Back", "Cancel"}
	for i, btn := range buttons {
		if i == m.cursor {
			b.WriteString("  " + borderStyle.Render(selectedStyle.Render(btn)))
		} else {
			b.WriteString("  " + normalStyle.Render("["+btn+"]"))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("\n  left/right: navigate  enter: select  esc: back"))
	return b.String()
}
