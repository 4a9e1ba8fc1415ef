package setup

import (
	"fmt"
	"io"
	"path/filepath"
)

var firewallPorts = []string{
	"80/tcp       (HTTP, ACME challenges)",
	"443/tcp      (client API)",
	"8448/tcp     (federation)",
	"3478/tcp+udp (TURN)",
	"5349/tcp+udp (TURN over TLS)",
	"49152-49999/udp (TURN relay range)",
}

// PrintSummary reports generated artifacts, credentials, required DNS
// records, firewall ports, and copy-paste next steps.
func PrintSummary(w io.Writer, s *Session, outputDir string, files []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, successStyle.Render("Setup complete."))

	fmt.Fprintln(w)
	fmt.Fprintln(w, subtitleStyle.Render("Generated files"))
	for _, f := range files {
		fmt.Fprintf(w, "  %s\n", normalStyle.Render(filepath.Join(outputDir, f)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, subtitleStyle.Render("TURN credentials"))
	fmt.Fprintf(w, "  api key:       %s\n", selectedStyle.Render(s.TurnAPIKey))
	fmt.Fprintf(w, "  shared secret: %s\n", selectedStyle.Render(s.TurnSecret))
	if s.Backend == BackendSynapse {
		fmt.Fprintln(w)
		fmt.Fprintln(w, subtitleStyle.Render("Synapse registration shared secret"))
		fmt.Fprintf(w, "  %s\n", selectedStyle.Render(s.RegistrationSecret))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, subtitleStyle.Render("DNS records"))
	fmt.Fprintf(w, "  A  %-30s -> this host\n", s.Domain)
	fmt.Fprintf(w, "  A  %-30s -> this host\n", s.TurnDomain)

	fmt.Fprintln(w)
	fmt.Fprintln(w, subtitleStyle.Render("Firewall ports"))
	for _, port := range firewallPorts {
		fmt.Fprintf(w, "  %s\n", normalStyle.Render(port))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, subtitleStyle.Render("Next steps"))
	fmt.Fprintln(w, mutedStyle.Render("  $ docker compose up -d"))
	fmt.Fprintln(w, mutedStyle.Render("  $ docker compose logs -f"))
	if s.Backend == BackendSynapse {
		fmt.Fprintln(w, mutedStyle.Render("  $ docker compose exec synapse register_new_matrix_user -c /data/homeserver.yaml -a http://localhost:8008"))
	}
	fmt.Fprintln(w)
}
