package setup

import "fmt"

// Run dispatches the CLI. Invoked with no arguments it starts the
// interactive line-mode setup; the wizard subcommand is handled by the
// caller so this package stays free of the TUI dependency.
func Run(args []string) error {
	if len(args) == 0 {
		return RunSetup(StdPrompter(), NewSecretSource(), TemplatesRoot(), OutputDir())
	}

	switch args[0] {
	case "setup":
		return RunSetup(StdPrompter(), NewSecretSource(), TemplatesRoot(), OutputDir())
	case "doctor":
		return RunDoctor()
	case "help", "--help", "-h":
		Usage()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func Usage() {
	fmt.Println(`matrix-server-docker-compose - interactive deployment generator

Usage:
  setup            collect parameters and generate deployment files
  setup wizard     same flow as a full-screen wizard
  setup doctor     check host prerequisites
  setup help       show this help

With no command, the interactive setup runs. All questions are answered
on stdin; generated files land in the output directory (current
directory unless MATRIX_SETUP_OUTPUT is set).`)
}
