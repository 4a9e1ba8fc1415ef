package setup

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// RunDoctor checks host prerequisites for the generated stack. Failures
// are warnings, not errors; the generator itself only needs the template
// directory and a writable output directory.
func RunDoctor() error {
	fmt.Println("setup doctor")
	fmt.Printf("runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	checks := []struct {
		name string
		fn   func() error
	}{
		{"docker binary", func() error {
			_, err := exec.LookPath("docker")
			return err
		}},
		{"docker compose", func() error {
			_, err := runCmdCapture("docker", "compose", "version")
			return err
		}},
		{"docker daemon", func() error {
			_, err := runCmdCapture("docker", "info")
			return err
		}},
		{"template directory", func() error {
			root := TemplatesRoot()
			if !dirExists(root) {
				return fmt.Errorf("not found: %s", root)
			}
			for _, b := range []Backend{BackendConduit, BackendSynapse} {
				if !dirExists(filepath.Join(root, b.TemplateDir())) {
					return fmt.Errorf("missing backend templates: %s", b)
				}
			}
			return nil
		}},
		{"output dir writable", func() error {
			return writableCheck(OutputDir())
		}},
		{"ports 80/443/8448 free", func() error {
			out, err := runCmdCapture("ss", "-ltn")
			if err != nil {
				return err
			}
			for _, port := range []string{":80 ", ":443 ", ":8448 "} {
				if strings.Contains(out, port) {
					return fmt.Errorf("port %s already in use", strings.TrimSpace(strings.Trim(port, ":")))
				}
			}
			return nil
		}},
	}

	for _, check := range checks {
		if err := check.fn(); err != nil {
			fmt.Printf("[WARN] %s: %v\n", check.name, err)
		} else {
			fmt.Printf("[ OK ] %s\n", check.name)
		}
	}
	return nil
}
