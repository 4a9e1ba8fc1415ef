package setup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStamp = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestWriteEnvFileConduit(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	s := sampleConduitSession()
	require.NoError(t, WriteEnvFile(path, s, testStamp))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(b)

	assert.Contains(t, text, "# backend: conduit")
	assert.Contains(t, text, "2026-01-02T03:04:05Z")

	vars, err := ReadDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "matrix.example.com", vars["DOMAIN"])
	assert.Equal(t, "turn.example.com", vars["TURN_DOMAIN"])
	assert.Equal(t, "admin@example.com", vars["ADMIN_EMAIL"])
	assert.Equal(t, "false", vars["ALLOW_REGISTRATION"])
	assert.Equal(t, "true", vars["ALLOW_FEDERATION"])
	assert.Equal(t, "256", vars["ROCKSDB_CACHE_MB"])
	assert.Equal(t, s.TurnAPIKey, vars["TURN_API_KEY"])
	assert.Equal(t, s.TurnSecret, vars["TURN_SECRET"])

	_, hasReg := vars["REGISTRATION_SECRET"]
	assert.False(t, hasReg)
}

func TestWriteEnvFileSynapse(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	s := sampleSynapseSession()
	require.NoError(t, WriteEnvFile(path, s, testStamp))

	vars, err := ReadDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, s.RegistrationSecret, vars["REGISTRATION_SECRET"])
	assert.Equal(t, s.MacaroonSecret, vars["MACAROON_SECRET"])
	assert.Equal(t, s.FormSecret, vars["FORM_SECRET"])

	_, hasCache := vars["ROCKSDB_CACHE_MB"]
	assert.False(t, hasCache)
}

func TestWriteEnvFileKeyOrderIsFixed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, WriteEnvFile(path, sampleConduitSession(), testStamp))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(b)

	order := []string{
		"\nDOMAIN=",
		"\nTURN_DOMAIN=",
		"\nADMIN_EMAIL=",
		"\nALLOW_REGISTRATION=",
		"\nALLOW_FEDERATION=",
		"\nROCKSDB_CACHE_MB=",
		"\nTURN_API_KEY=",
		"\nTURN_SECRET=",
	}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		require.GreaterOrEqualf(t, idx, 0, "key %q missing", key)
		assert.Greaterf(t, idx, last, "key %q out of order", key)
		last = idx
	}
}

func TestEachValueAppearsExactlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, WriteEnvFile(path, sampleConduitSession(), testStamp))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(b)

	for _, key := range []string{"DOMAIN=", "TURN_DOMAIN=", "ADMIN_EMAIL=", "TURN_API_KEY=", "TURN_SECRET="} {
		assert.Equalf(t, 1, strings.Count(text, "\n"+key), "key %q", key)
	}
}
