package setup

import (
	"fmt"
	"path/filepath"
	"time"
)

// WriteOutputs renders the backend's template set plus the generated .env
// and answers file into outputDir. Existing files are overwritten without
// prompting; a write failure aborts with the files written so far left on
// disk. Returns the target file names in write order.
func WriteOutputs(templatesRoot, outputDir string, s *Session) ([]string, error) {
	if !dirExists(templatesRoot) {
		return nil, fmt.Errorf("template root not found: %s", templatesRoot)
	}
	backendDir := filepath.Join(templatesRoot, s.Backend.TemplateDir())
	if !dirExists(backendDir) {
		return nil, fmt.Errorf("no template set for backend %s: %s", s.Backend, backendDir)
	}
	if err := ensureDir(outputDir, 0o750); err != nil {
		return nil, err
	}

	var written []string
	for _, tf := range s.Backend.TemplateFiles() {
		src := filepath.Join(backendDir, tf.Name)
		dst := filepath.Join(outputDir, tf.Target)
		if tf.Copy {
			if err := copyFile(src, dst); err != nil {
				return nil, fmt.Errorf("copy %s: %w", tf.Name, err)
			}
		} else if err := RenderFile(src, dst, s); err != nil {
			return nil, fmt.Errorf("render %s: %w", tf.Name, err)
		}
		written = append(written, tf.Target)
	}

	if err := WriteEnvFile(filepath.Join(outputDir, ".env"), s, time.Now()); err != nil {
		return nil, fmt.Errorf("write .env: %w", err)
	}
	written = append(written, ".env")

	if err := WriteAnswers(outputDir, s); err != nil {
		return nil, fmt.Errorf("write %s: %w", answersFileName, err)
	}
	written = append(written, answersFileName)
	return written, nil
}
