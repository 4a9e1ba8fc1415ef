package setup

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// WriteEnvFile synthesizes the deployment .env. Key order is fixed;
// booleans render as the literal strings true/false. The cache size key
// appears only for Conduit, the three extra secrets only for Synapse.
func WriteEnvFile(path string, s *Session, now time.Time) error {
	var b strings.Builder
	b.WriteString("# generated by matrix-server-docker-compose setup\n")
	fmt.Fprintf(&b, "# backend: %s\n", s.Backend)
	fmt.Fprintf(&b, "# date: %s\n\n", now.UTC().Format(time.RFC3339))

	fmt.Fprintf(&b, "DOMAIN=%s\n", s.Domain)
	fmt.Fprintf(&b, "TURN_DOMAIN=%s\n", s.TurnDomain)
	fmt.Fprintf(&b, "ADMIN_EMAIL=%s\n", s.AdminEmail)
	fmt.Fprintf(&b, "ALLOW_REGISTRATION=%t\n", s.AllowRegistration)
	fmt.Fprintf(&b, "ALLOW_FEDERATION=%t\n", s.AllowFederation)
	switch s.Backend {
	case BackendConduit:
		fmt.Fprintf(&b, "ROCKSDB_CACHE_MB=%s\n", s.CacheMB)
	case BackendSynapse:
		fmt.Fprintf(&b, "REGISTRATION_SECRET=%s\n", s.RegistrationSecret)
		fmt.Fprintf(&b, "MACAROON_SECRET=%s\n", s.MacaroonSecret)
		fmt.Fprintf(&b, "FORM_SECRET=%s\n", s.FormSecret)
	}
	fmt.Fprintf(&b, "TURN_API_KEY=%s\n", s.TurnAPIKey)
	fmt.Fprintf(&b, "TURN_SECRET=%s\n", s.TurnSecret)

	return os.WriteFile(path, []byte(b.String()), 0o640)
}

// ReadDotEnv parses a KEY=value file, skipping blanks and comments.
func ReadDotEnv(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	vars := map[string]string{}
	s := bufio.NewScanner(file)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		k := strings.TrimSpace(parts[0])
		v := strings.Trim(strings.TrimSpace(parts[1]), "\"")
		vars[k] = v
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}
