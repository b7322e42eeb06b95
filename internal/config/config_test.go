package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "https://reqres.in/api/cupcakes", cfg.Endpoint)
	assert.Zero(t, cfg.RequestTimeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := writeFile(t, dir, "cupcake.yaml", `
endpoint: http://localhost:9000/api/cupcakes
request_timeout: 5s
log_level: debug
server:
  listen: ":9000"
  rules_dir: ./rules
  rules_version: v1
`)
	t.Setenv("CUPCAKE_LISTEN", ":9100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/api/cupcakes", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9100", cfg.Server.Listen)
	assert.Equal(t, "./rules", cfg.Server.RulesDir)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, ".env", "CUPCAKE_ENDPOINT=http://127.0.0.1:8080/api/cupcakes\n")
	t.Cleanup(func() { os.Unsetenv("CUPCAKE_ENDPOINT") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/api/cupcakes", cfg.Endpoint)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	tests := map[string]string{
		"bad endpoint":  "endpoint: not a url\n",
		"bad level":     "log_level: loud\n",
		"unknown key":   "endpont: http://x\n",
		"negative wait": "request_timeout: -1s\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, "c.yaml", body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
