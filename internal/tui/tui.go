package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meshya/matrix-server-docker-compose/internal/setup"
)

type screen int

const (
	screenWelcome screen = iota
	screenBackendSelect
	screenDomainInput
	screenTurnInput
	screenEmailInput
	screenOptions
	screenCacheInput
	screenConfirm
	screenProgress
	screenComplete
)

type navigateMsg struct {
	to screen
}

// wizardState accumulates the operator's answers across screens. The
// session itself is built once, on the progress screen.
type wizardState struct {
	backend    setup.Backend
	domain     string
	turnDomain string
	email      string
	allowReg   bool
	allowFed   bool
	cacheMB    string

	templatesRoot string
	outputDir     string

	session *setup.Session
	written []string
}

type screenModel interface {
	Init() tea.Cmd
	Update(tea.Msg) (screenModel, tea.Cmd)
	View() string
}

type rootModel struct {
	current  screen
	state    *wizardState
	screens  map[screen]screenModel
	width    int
	height   int
	quitting bool
}

// StartWizard runs the full-screen setup flow. It produces the same
// artifacts as the line-mode setup.
func StartWizard(templatesRoot, outputDir string) error {
	def := setup.LoadDefaults(outputDir)
	state := &wizardState{
		backend:       setup.BackendConduit,
		domain:        def.Domain,
		turnDomain:    def.TurnDomain,
		email:         def.AdminEmail,
		allowReg:      def.AllowRegistration,
		allowFed:      def.AllowFederation,
		cacheMB:       def.CacheMB,
		templatesRoot: templatesRoot,
		outputDir:     outputDir,
	}
	if def.Backend == setup.BackendSynapse.String() {
		state.backend = setup.BackendSynapse
	}

	screens := map[screen]screenModel{
		screenWelcome:       newWelcomeModel(),
		screenBackendSelect: newBackendSelectModel(state),
		screenDomainInput:   newDomainInputModel(state),
		screenTurnInput:     newTurnInputModel(state),
		screenEmailInput:    newEmailInputModel(state),
		screenOptions:       newOptionsModel(state),
		screenCacheInput:    newCacheInputModel(state),
		screenConfirm:       newConfirmModel(state),
		screenProgress:      newProgressModel(state),
		screenComplete:      newCompleteModel(state),
	}

	m := rootModel{
		current: screenWelcome,
		state:   state,
		screens: screens,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m rootModel) Init() tea.Cmd {
	return m.screens[m.current].Init()
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Quit
		}

	case navigateMsg:
		m.current = msg.to
		return m, m.screens[m.current].Init()
	}

	s := m.screens[m.current]
	newScreen, cmd := s.Update(msg)
	m.screens[m.current] = newScreen
	return m, cmd
}

func (m rootModel) View() string {
	if m.quitting {
		return ""
	}
	return m.screens[m.current].View()
}
