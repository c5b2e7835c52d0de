package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyConstants(t *testing.T) {
	t.Run("all supported keys are 32 bytes", func(t *testing.T) {
		assert.Equal(t, 32, KeySize)
	})

	t.Run("signature sizes match the algorithms", func(t *testing.T) {
		assert.Equal(t, 32, Blake3SignatureSize)
		assert.Equal(t, 64, Ed25519SignatureSize)
	})

	t.Run("key file read bound leaves room for a key", func(t *testing.T) {
		assert.Greater(t, MaxKeyFileBytes, KeySize)
	})
}

func TestKeyFileNames(t *testing.T) {
	assert.Equal(t, "blake3.txt", Blake3KeyFileName)
	assert.Equal(t, "ed25519.sk", Ed25519SigningKeyFileName)
	assert.Equal(t, "ed25519.pk", Ed25519VerifyingKeyFileName)
	assert.Equal(t, 0o600, KeyFileMode, "key files must not be group or world readable")
}

func TestLogConstants(t *testing.T) {
	assert.Equal(t, "sigil.log", CLILogFileName)
	assert.Positive(t, LogMaxSizeMB)
	assert.Positive(t, LogMaxBackups)
	assert.Positive(t, LogMaxAgeDays)
}
