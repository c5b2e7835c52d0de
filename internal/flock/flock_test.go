//go:build unix

package flock_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/flock"
)

func openKeyFile(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600) // #nosec G304 -- test temp dir
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExclusive(t *testing.T) {
	t.Parallel()

	t.Run("acquire and release", func(t *testing.T) {
		t.Parallel()
		f := openKeyFile(t, filepath.Join(t.TempDir(), "blake3.txt"))

		require.NoError(t, flock.Exclusive(f.Fd()))
		require.NoError(t, flock.Unlock(f.Fd()))
	})

	t.Run("second descriptor is refused", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "ed25519.sk")
		first := openKeyFile(t, path)
		second := openKeyFile(t, path)

		require.NoError(t, flock.Exclusive(first.Fd()))
		defer func() { _ = flock.Unlock(first.Fd()) }()

		assert.Error(t, flock.Exclusive(second.Fd()))
	})

	t.Run("reacquire after unlock", func(t *testing.T) {
		t.Parallel()
		f := openKeyFile(t, filepath.Join(t.TempDir(), "ed25519.pk"))

		require.NoError(t, flock.Exclusive(f.Fd()))
		require.NoError(t, flock.Unlock(f.Fd()))
		require.NoError(t, flock.Exclusive(f.Fd()))
		require.NoError(t, flock.Unlock(f.Fd()))
	})
}

func TestLock(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "blake3.txt")
	first := openKeyFile(t, path)
	second := openKeyFile(t, path)

	unlock, err := flock.Lock(first)
	require.NoError(t, err)

	_, err = flock.Lock(second)
	require.ErrorIs(t, err, errors.ErrLockFailed)
	assert.Contains(t, err.Error(), "blake3.txt")

	require.NoError(t, unlock())

	unlock, err = flock.Lock(second)
	require.NoError(t, err)
	require.NoError(t, unlock())
}
