package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplateTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"conduit/docker-compose.yml": "services: {}\n# {{DOMAIN}}\n",
		"conduit/conduit.toml":       "server_name = \"{{DOMAIN}}\"\ncache = {{ROCKSDB_CACHE_MB}}\n",
		"conduit/turnserver.conf":    "static-auth-secret={{TURN_SECRET}}\n",
		"conduit/matrix.conf":        "server_name {{DOMAIN}};\n",
		"synapse/docker-compose.yml": "services: {}\n",
		"synapse/homeserver.yaml":    "registration_shared_secret: \"{{REGISTRATION_SECRET}}\"\n",
		"synapse/turnserver.conf":    "realm={{TURN_DOMAIN}}\n",
		"synapse/matrix.conf":        "server_name {{DOMAIN}};\n",
		"synapse/log.config":         "version: 1\nhandlers: {console: {class: logging.StreamHandler}}\n",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o640))
	}
	return root
}

func TestWriteOutputsConduit(t *testing.T) {
	templates := writeTemplateTree(t)
	out := t.TempDir()
	s := sampleConduitSession()

	written, err := WriteOutputs(templates, out, s)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"docker-compose.yml", "conduit.toml", "turnserver.conf", "matrix.conf",
		".env", "setup-answers.yml",
	}, written)

	b, err := os.ReadFile(filepath.Join(out, "conduit.toml"))
	require.NoError(t, err)
	assert.Equal(t, "server_name = \"matrix.example.com\"\ncache = 256\n", string(b))
}

func TestWriteOutputsSynapseCopiesLogConfig(t *testing.T) {
	templates := writeTemplateTree(t)
	out := t.TempDir()
	s := sampleSynapseSession()

	written, err := WriteOutputs(templates, out, s)
	require.NoError(t, err)
	assert.Contains(t, written, "log.config")

	src, err := os.ReadFile(filepath.Join(templates, "synapse", "log.config"))
	require.NoError(t, err)
	dst, err := os.ReadFile(filepath.Join(out, "log.config"))
	require.NoError(t, err)
	assert.Equal(t, src, dst)
}

func TestWriteOutputsOverwritesWithoutPrompting(t *testing.T) {
	templates := writeTemplateTree(t)
	out := t.TempDir()
	for _, name := range []string{"docker-compose.yml", "conduit.toml", ".env"} {
		require.NoError(t, os.WriteFile(filepath.Join(out, name), []byte("stale\n"), 0o640))
	}

	_, err := WriteOutputs(templates, out, sampleConduitSession())
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(out, "conduit.toml"))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "stale")
}

func TestWriteOutputsMissingTemplateRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	_, err := WriteOutputs(missing, t.TempDir(), sampleConduitSession())
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestWriteOutputsMissingBackendDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "conduit"), 0o750))

	_, err := WriteOutputs(root, t.TempDir(), sampleSynapseSession())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synapse")
}

func TestWriteOutputsMissingTemplateFile(t *testing.T) {
	templates := writeTemplateTree(t)
	require.NoError(t, os.Remove(filepath.Join(templates, "conduit", "matrix.conf")))

	_, err := WriteOutputs(templates, t.TempDir(), sampleConduitSession())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matrix.conf")
}

func TestWriteOutputsCreatesOutputDir(t *testing.T) {
	templates := writeTemplateTree(t)
	out := filepath.Join(t.TempDir(), "deploy", "matrix")

	_, err := WriteOutputs(templates, out, sampleConduitSession())
	require.NoError(t, err)
	assert.True(t, dirExists(out))
}
