package setup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConduitSession() *Session {
	return &Session{
		Backend:         BackendConduit,
		Domain:          "matrix.example.com",
		TurnDomain:      "turn.example.com",
		AdminEmail:      "admin@example.com",
		AllowFederation: true,
		CacheMB:         "256",
		TurnAPIKey:      strings.Repeat("a", 32),
		TurnSecret:      strings.Repeat("b", 64),
	}
}

func sampleSynapseSession() *Session {
	s := sampleConduitSession()
	s.Backend = BackendSynapse
	s.CacheMB = ""
	s.RegistrationSecret = strings.Repeat("c", 64)
	s.MacaroonSecret = strings.Repeat("d", 64)
	s.FormSecret = strings.Repeat("e", 64)
	return s
}

func TestRenderStringBareToken(t *testing.T) {
	s := sampleConduitSession()
	assert.Equal(t, "matrix.example.com", RenderString("{{DOMAIN}}", s))
}

func TestRenderStringLeavesNonTokensAlone(t *testing.T) {
	s := sampleConduitSession()
	in := "plain text, {braces}, and {{UNKNOWN}} stay as-is\n"
	assert.Equal(t, in, RenderString(in, s))
}

func TestRenderStringBooleansAreLiterals(t *testing.T) {
	s := sampleConduitSession()
	out := RenderString("reg={{ALLOW_REGISTRATION}} fed={{ALLOW_FEDERATION}}", s)
	assert.Equal(t, "reg=false fed=true", out)
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "conduit.toml")
	out := filepath.Join(dir, "out", "conduit.toml")
	require.NoError(t, os.WriteFile(in, []byte("server_name = \"{{DOMAIN}}\"\n"), 0o640))

	s := sampleConduitSession()
	require.NoError(t, RenderFile(in, out, s))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "server_name = \"matrix.example.com\"\n", string(b))
}

func TestRenderFileMissingTemplate(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yml")
	err := RenderFile(missing, filepath.Join(t.TempDir(), "out.yml"), sampleConduitSession())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yml")
}

func TestTemplateFilesPerBackend(t *testing.T) {
	conduit := BackendConduit.TemplateFiles()
	require.Len(t, conduit, 4)
	for _, tf := range conduit {
		assert.False(t, tf.Copy)
	}

	synapse := BackendSynapse.TemplateFiles()
	require.Len(t, synapse, 5)
	last := synapse[len(synapse)-1]
	assert.Equal(t, "log.config", last.Name)
	assert.True(t, last.Copy)
}
