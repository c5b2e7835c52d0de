package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/testutil"
)

func TestTextGenerate_Blake3(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	res := runCLI(t, "", "text", "generate", "-O", dir)
	require.NoError(t, res.err)

	path := filepath.Join(dir, constants.Blake3KeyFileName)
	assert.Equal(t, path, strings.TrimSpace(res.stdout))

	data, err := os.ReadFile(path) //#nosec G304 -- test path
	require.NoError(t, err)
	assert.Len(t, data, 32)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.KeyFileMode), info.Mode().Perm())

	sig := signFixture(t, path, "msg")
	verify := runCLI(t, "msg", "text", "verify", "-k", path, "-s", sig)
	require.NoError(t, verify.err)
	assert.Equal(t, constants.StatusVerified, strings.TrimSpace(verify.stdout))
}

func TestTextGenerate_Ed25519JSON(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	res := runCLI(t, "", "-o", "json", "text", "generator", "-f", "ed25519", "-O", dir)
	require.NoError(t, res.err)

	var got generateResult
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, "ed25519", got.Algorithm.Name())
	assert.Equal(t, []string{
		filepath.Join(dir, constants.Ed25519SigningKeyFileName),
		filepath.Join(dir, constants.Ed25519VerifyingKeyFileName),
	}, got.Files)
}

func TestTextGenerate_OutputDirFromConfig(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	t.Setenv("SIGIL_KEYS_OUTPUT_DIR", dir)

	res := runCLI(t, "", "text", "generate")
	require.NoError(t, res.err)
	assert.FileExists(t, filepath.Join(dir, constants.Blake3KeyFileName))
}

func TestTextGenerate_Existing(t *testing.T) {
	isolateHome(t)

	setup := func(t *testing.T) (string, string) {
		t.Helper()
		path := testutil.WriteFile(t, constants.Blake3KeyFileName, []byte(testutil.FixedKey))
		return filepath.Dir(path), path
	}

	t.Run("non-interactive refuses", func(t *testing.T) {
		defer mockTerminalCheckFunc(false)()
		dir, path := setup(t)

		res := runCLI(t, "", "text", "generate", "-O", dir)
		require.ErrorIs(t, res.err, errors.ErrKeyExists)
		require.ErrorIs(t, res.err, errors.ErrNonInteractiveMode)

		data, err := os.ReadFile(path) //#nosec G304 -- test path
		require.NoError(t, err)
		assert.Equal(t, testutil.FixedKey, string(data))
	})

	t.Run("force overwrites", func(t *testing.T) {
		defer mockTerminalCheckFunc(false)()
		dir, path := setup(t)

		res := runCLI(t, "", "text", "generate", "-O", dir, "--force")
		require.NoError(t, res.err)

		data, err := os.ReadFile(path) //#nosec G304 -- test path
		require.NoError(t, err)
		assert.Len(t, data, 32)
		assert.NotEqual(t, testutil.FixedKey, string(data))
	})

	t.Run("prompt accepted", func(t *testing.T) {
		defer mockTerminalCheckFunc(true)()
		var seen []string
		defer mockConfirmOverwrite(true, nil, &seen)()
		dir, path := setup(t)

		res := runCLI(t, "", "text", "generate", "-O", dir)
		require.NoError(t, res.err)
		assert.Equal(t, []string{path}, seen)

		data, err := os.ReadFile(path) //#nosec G304 -- test path
		require.NoError(t, err)
		assert.NotEqual(t, testutil.FixedKey, string(data))
	})

	t.Run("prompt declined", func(t *testing.T) {
		defer mockTerminalCheckFunc(true)()
		defer mockConfirmOverwrite(false, nil, nil)()
		dir, _ := setup(t)

		res := runCLI(t, "", "text", "generate", "-O", dir)
		require.ErrorIs(t, res.err, errors.ErrOperationCanceled)
	})

	t.Run("prompt failure", func(t *testing.T) {
		defer mockTerminalCheckFunc(true)()
		defer mockConfirmOverwrite(false, testutil.ErrMockRead, nil)()
		dir, _ := setup(t)

		res := runCLI(t, "", "text", "generate", "-O", dir)
		require.ErrorIs(t, res.err, testutil.ErrMockRead)
	})

	t.Run("json never prompts", func(t *testing.T) {
		defer mockTerminalCheckFunc(true)()
		var seen []string
		defer mockConfirmOverwrite(true, nil, &seen)()
		dir, _ := setup(t)

		res := runCLI(t, "", "-o", "json", "text", "generate", "-O", dir)
		require.ErrorIs(t, res.err, errors.ErrKeyExists)
		assert.Empty(t, seen)
	})
}

func TestTextGenerate_MissingDir(t *testing.T) {
	isolateHome(t)

	res := runCLI(t, "", "text", "generate", "-O", filepath.Join(t.TempDir(), "absent"))
	require.ErrorIs(t, res.err, errors.ErrInvalidArgument)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
}
