package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meshya/matrix-server-docker-compose/internal/setup"
)

type completeModel struct {
	state *wizardState
}

func newCompleteModel(state *wizardState) *completeModel {
	return &completeModel{state: state}
}

func (m *completeModel) Init() tea.Cmd {
	return nil
}

func (m *completeModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEnter(msg) || isEsc(msg) || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *completeModel) View() string {
	var b strings.Builder
	s := m.state.session

	b.WriteString(successStyle.Render("  Deployment files generated"))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("  Files"))
	b.WriteString("\n")
	for _, f := range m.state.written {
		b.WriteString(fmt.Sprintf("  %s\n", normalStyle.Render(filepath.Join(m.state.outputDir, f))))
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  TURN credentials"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  api key:       %s\n", selectedStyle.Render(s.TurnAPIKey)))
	b.WriteString(fmt.Sprintf("  shared secret: %s\n", selectedStyle.Render(s.TurnSecret)))
	if s.Backend == setup.BackendSynapse {
		b.WriteString(fmt.Sprintf("  registration:  %s\n", selectedStyle.Render(s.RegistrationSecret)))
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  DNS"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  A records for %s and %s must point at this host.", s.Domain, s.TurnDomain)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  Open ports 80, 443, 8448, 3478, 5349 and 49152-49999/udp."))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("  Next steps"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  $ docker compose up -d"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  $ docker compose logs -f"))
	b.WriteString("\n")
	if s.Backend == setup.BackendSynapse {
		b.WriteString(mutedStyle.Render("  $ docker compose exec synapse register_new_matrix_user -c /data/homeserver.yaml -a http://localhost:8008"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("\n  enter/q: quit"))
	return b.String()
}
