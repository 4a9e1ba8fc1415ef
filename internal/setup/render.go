package setup

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Placeholder tokens replaced verbatim in template files. A template may
// use any subset; tokens the active backend never sets simply do not
// appear in its template set.
const (
	tokenDomain             = "{{DOMAIN}}"
	tokenTurnDomain         = "{{TURN_DOMAIN}}"
	tokenAdminEmail         = "{{ADMIN_EMAIL}}"
	tokenAllowRegistration  = "{{ALLOW_REGISTRATION}}"
	tokenAllowFederation    = "{{ALLOW_FEDERATION}}"
	tokenCacheMB            = "{{ROCKSDB_CACHE_MB}}"
	tokenTurnAPIKey         = "{{TURN_API_KEY}}"
	tokenTurnSecret         = "{{TURN_SECRET}}"
	tokenRegistrationSecret = "{{REGISTRATION_SECRET}}"
	tokenMacaroonSecret     = "{{MACAROON_SECRET}}"
	tokenFormSecret         = "{{FORM_SECRET}}"
)

func (s *Session) replacements() []string {
	return []string{
		tokenDomain, s.Domain,
		tokenTurnDomain, s.TurnDomain,
		tokenAdminEmail, s.AdminEmail,
		tokenAllowRegistration, strconv.FormatBool(s.AllowRegistration),
		tokenAllowFederation, strconv.FormatBool(s.AllowFederation),
		tokenCacheMB, s.CacheMB,
		tokenTurnAPIKey, s.TurnAPIKey,
		tokenTurnSecret, s.TurnSecret,
		tokenRegistrationSecret, s.RegistrationSecret,
		tokenMacaroonSecret, s.MacaroonSecret,
		tokenFormSecret, s.FormSecret,
	}
}

// RenderString substitutes every placeholder token with its session
// value. Literal text replacement, not template evaluation.
func RenderString(text string, s *Session) string {
	pairs := s.replacements()
	for i := 0; i < len(pairs); i += 2 {
		text = strings.ReplaceAll(text, pairs[i], pairs[i+1])
	}
	return text
}

// RenderFile reads a template, substitutes tokens, and writes the result
// to outPath, creating parent directories as needed.
func RenderFile(inPath, outPath string, s *Session) error {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	if err := ensureDir(filepath.Dir(outPath), 0o750); err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(RenderString(string(content), s)), 0o640)
}

// templateFile maps one file of a backend's template set to its target
// name in the output directory.
type templateFile struct {
	Name   string
	Target string
	Copy   bool // copied byte-for-byte, no substitution
}

// TemplateFiles lists the template set for this backend in render order.
func (b Backend) TemplateFiles() []templateFile {
	files := []templateFile{
		{Name: "docker-compose.yml", Target: "docker-compose.yml"},
		{Name: b.ConfigFileName(), Target: b.ConfigFileName()},
		{Name: "turnserver.conf", Target: "turnserver.conf"},
		{Name: "matrix.conf", Target: "matrix.conf"},
	}
	if b == BackendSynapse {
		files = append(files, templateFile{Name: "log.config", Target: "log.config", Copy: true})
	}
	return files
}
