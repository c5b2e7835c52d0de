package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/errors"
)

// isolate points the home dir and working dir at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("SIGIL_HOME", home)
	t.Chdir(work)
	return home, work
}

func writeYAML(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoad_DefaultsWhenNoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_GlobalThenProject(t *testing.T) {
	home, work := isolate(t)

	writeYAML(t, filepath.Join(home, "config.yaml"), `
signing:
  algorithm: ed25519
  key_file: /keys/global.sk
logging:
  max_backups: 9
`)
	writeYAML(t, filepath.Join(work, ".sigil", "config.yaml"), `
signing:
  key_file: project.sk
`)

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, crypto.Ed25519, cfg.Signing.Algorithm)
	assert.Equal(t, "project.sk", cfg.Signing.KeyFile)
	assert.Equal(t, 9, cfg.Logging.MaxBackups)
	assert.Equal(t, ".", cfg.Keys.OutputDir)
}

func TestLoad_ExplicitFileReplacesProject(t *testing.T) {
	_, work := isolate(t)

	writeYAML(t, filepath.Join(work, ".sigil", "config.yaml"), `
keys:
  output_dir: project-keys
`)
	explicit := filepath.Join(t.TempDir(), "custom.yaml")
	writeYAML(t, explicit, `
signing:
  algorithm: ED25519
`)

	cfg, err := Load(context.Background(), explicit)
	require.NoError(t, err)
	assert.Equal(t, crypto.Ed25519, cfg.Signing.Algorithm)
	assert.Equal(t, ".", cfg.Keys.OutputDir)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, errors.ErrInputNotFound)
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	home, _ := isolate(t)
	writeYAML(t, filepath.Join(home, "config.yaml"), `
signing:
  algorithm: blake3
keys:
  output_dir: from-file
`)
	t.Setenv("SIGIL_SIGNING_ALGORITHM", "ed25519")
	t.Setenv("SIGIL_KEYS_OUTPUT_DIR", "from-env")
	t.Setenv("SIGIL_LOGGING_FILE", "false")

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, crypto.Ed25519, cfg.Signing.Algorithm)
	assert.Equal(t, "from-env", cfg.Keys.OutputDir)
	assert.False(t, cfg.Logging.File)
}

func TestLoad_InvalidAlgorithm(t *testing.T) {
	home, _ := isolate(t)
	writeYAML(t, filepath.Join(home, "config.yaml"), `
signing:
  algorithm: sha1
`)

	_, err := Load(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
}

func TestLoad_InvalidValues(t *testing.T) {
	home, _ := isolate(t)
	writeYAML(t, filepath.Join(home, "config.yaml"), `
logging:
  max_size_mb: 0
`)

	_, err := Load(context.Background(), "")
	require.ErrorIs(t, err, errors.ErrConfigInvalidLogging)
}

func TestLoad_MalformedYAML(t *testing.T) {
	home, _ := isolate(t)
	writeYAML(t, filepath.Join(home, "config.yaml"), "signing: [unterminated")

	_, err := Load(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read global config file")
}

func TestLoadFromPaths(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	global := filepath.Join(dir, "global.yaml")
	project := filepath.Join(dir, "project.yaml")
	writeYAML(t, global, `
keys:
  output_dir: /global
logging:
  compress: false
`)
	writeYAML(t, project, `
keys:
  output_dir: /project
`)

	cfg, err := LoadFromPaths(context.Background(), project, global)
	require.NoError(t, err)
	assert.Equal(t, "/project", cfg.Keys.OutputDir)
	assert.False(t, cfg.Logging.Compress)

	cfg, err = LoadFromPaths(context.Background(), "", filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
