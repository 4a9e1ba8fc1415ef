package setup

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultCacheMB  = "256"
	answersFileName = "setup-answers.yml"
)

// Backend selects the homeserver implementation and with it the template
// set and the optional fields that apply.
type Backend int

const (
	BackendConduit Backend = iota
	BackendSynapse
)

func (b Backend) String() string {
	if b == BackendSynapse {
		return "synapse"
	}
	return "conduit"
}

// TemplateDir is the subdirectory of the template root holding this
// backend's template set.
func (b Backend) TemplateDir() string {
	return b.String()
}

// ConfigFileName is the rendered homeserver config target name.
func (b Backend) ConfigFileName() string {
	if b == BackendSynapse {
		return "homeserver.yaml"
	}
	return "conduit.toml"
}

// Session holds every operator-supplied and generated value for one run.
// It is fully populated before rendering starts and not mutated after.
type Session struct {
	Backend           Backend
	Domain            string
	TurnDomain        string
	AdminEmail        string
	AllowRegistration bool
	AllowFederation   bool
	CacheMB           string

	TurnAPIKey         string
	TurnSecret         string
	RegistrationSecret string
	MacaroonSecret     string
	FormSecret         string
}

// Answers is the non-secret subset of a session, persisted alongside the
// generated files so a re-run can offer the previous values as defaults.
type Answers struct {
	Backend           string `yaml:"backend"`
	Domain            string `yaml:"domain"`
	TurnDomain        string `yaml:"turn_domain"`
	AdminEmail        string `yaml:"admin_email"`
	AllowRegistration bool   `yaml:"allow_registration"`
	AllowFederation   bool   `yaml:"allow_federation"`
	CacheMB           string `yaml:"rocksdb_cache_mb"`
}

// DefaultAnswers are the built-in prompt defaults for a fresh run.
func DefaultAnswers() Answers {
	return Answers{
		AllowFederation: true,
		CacheMB:         defaultCacheMB,
	}
}

// LoadDefaults returns the previous run's answers when outputDir holds an
// answers file, otherwise the built-in defaults.
func LoadDefaults(outputDir string) Answers {
	a, err := LoadAnswers(outputDir)
	if err != nil {
		return DefaultAnswers()
	}
	if a.CacheMB == "" {
		a.CacheMB = defaultCacheMB
	}
	return a
}

func LoadAnswers(outputDir string) (Answers, error) {
	b, err := os.ReadFile(filepath.Join(outputDir, answersFileName))
	if err != nil {
		return Answers{}, err
	}
	var a Answers
	if err := yaml.Unmarshal(b, &a); err != nil {
		return Answers{}, err
	}
	return a, nil
}

func WriteAnswers(outputDir string, s *Session) error {
	a := Answers{
		Backend:           s.Backend.String(),
		Domain:            s.Domain,
		TurnDomain:        s.TurnDomain,
		AdminEmail:        s.AdminEmail,
		AllowRegistration: s.AllowRegistration,
		AllowFederation:   s.AllowFederation,
		CacheMB:           s.CacheMB,
	}
	out, err := yaml.Marshal(a)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, answersFileName), out, 0o640)
}

// TemplatesRoot locates the template directory: env override first, then
// next to the binary, then the working directory.
func TemplatesRoot() string {
	if custom := strings.TrimSpace(os.Getenv("MATRIX_SETUP_TEMPLATES")); custom != "" {
		return custom
	}

	exe, err := os.Executable()
	if err == nil {
		binDir := filepath.Dir(exe)
		candidates := []string{
			filepath.Join(binDir, "..", "templates"),
			filepath.Join(binDir, "templates"),
		}
		for _, c := range candidates {
			if dirExists(c) {
				return c
			}
		}
	}

	cwd, err := os.Getwd()
	if err == nil {
		c := filepath.Join(cwd, "templates")
		if dirExists(c) {
			return c
		}
	}
	return "templates"
}

// OutputDir is where artifacts are written; defaults to the working
// directory so docker compose picks the files up in place.
func OutputDir() string {
	if v := strings.TrimSpace(os.Getenv("MATRIX_SETUP_OUTPUT")); v != "" {
		return v
	}
	return "."
}
