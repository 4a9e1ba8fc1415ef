package setup

import "fmt"

func yn(v bool) string {
	if v {
		return "y"
	}
	return "n"
}

// Collect runs the interactive question sequence and returns a session
// with all plain parameters set. Secrets are filled in separately by
// GenerateSecrets. Values from a previous run (def) become the defaults
// shown next to each prompt.
func Collect(p *Prompter, def Answers) (*Session, error) {
	fmt.Fprintln(p.Out, titleStyle.Render("matrix-server-docker-compose setup"))
	fmt.Fprintln(p.Out, mutedStyle.Render("Answers in [brackets] are defaults; press Enter to accept them."))
	fmt.Fprintln(p.Out)

	backend, err := p.BackendChoice()
	if err != nil {
		return nil, err
	}
	s := &Session{Backend: backend}

	if s.Domain, err = ask(p, "server domain", "Matrix server domain (e.g. matrix.example.com):", def.Domain); err != nil {
		return nil, err
	}
	if s.TurnDomain, err = ask(p, "TURN domain", "TURN server domain (e.g. turn.example.com):", def.TurnDomain); err != nil {
		return nil, err
	}
	if s.AdminEmail, err = ask(p, "admin email", "Admin email (for TLS certificates):", def.AdminEmail); err != nil {
		return nil, err
	}

	if s.AllowRegistration, err = p.YesNo("Allow public registration? (y/n)", yn(def.AllowRegistration)); err != nil {
		return nil, err
	}
	if s.AllowFederation, err = p.YesNo("Allow federation with other servers? (y/n)", yn(def.AllowFederation)); err != nil {
		return nil, err
	}

	if backend == BackendConduit {
		if s.CacheMB, err = p.Optional("RocksDB cache size in MB", def.CacheMB); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ask keeps required fields required on a fresh run, but offers the
// previous run's value as an explicit default when one is on record.
func ask(p *Prompter, label, text, previous string) (string, error) {
	if previous == "" {
		return p.Required(label, text)
	}
	return p.Optional(text, previous)
}
