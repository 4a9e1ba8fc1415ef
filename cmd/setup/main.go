package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/meshya/matrix-server-docker-compose/internal/setup"
	"github.com/meshya/matrix-server-docker-compose/internal/tui"
)

var fatalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))

func main() {
	args := os.Args[1:]

	var err error
	if len(args) > 0 && args[0] == "wizard" {
		err = tui.StartWizard(setup.TemplatesRoot(), setup.OutputDir())
	} else {
		err = setup.Run(args)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, fatalStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
