package setup

import (
	"fmt"
	"path/filepath"
)

// RunSetup drives one session end to end: collect answers, generate
// secrets, render templates, write artifacts, print the summary. Control
// flow is strictly linear; no step is retried.
func RunSetup(p *Prompter, src *SecretSource, templatesRoot, outputDir string) error {
	if existing, err := ReadDotEnv(filepath.Join(outputDir, ".env")); err == nil {
		if d := existing["DOMAIN"]; d != "" {
			fmt.Fprintln(p.Out, mutedStyle.Render(
				fmt.Sprintf("Existing deployment for %s found; its files will be overwritten.", d)))
		}
	}

	s, err := Collect(p, LoadDefaults(outputDir))
	if err != nil {
		return err
	}
	if err := s.GenerateSecrets(src); err != nil {
		return err
	}
	written, err := WriteOutputs(templatesRoot, outputDir, s)
	if err != nil {
		return err
	}
	PrintSummary(p.Out, s, outputDir, written)
	return nil
}
