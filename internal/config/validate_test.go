package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/sigil/internal/crypto"
	sigilerrors "github.com/mrz1836/sigil/internal/errors"
)

func TestValidate_NilConfig(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, Validate(nil), sigilerrors.ErrConfigNil)
}

func TestValidate_DefaultConfig(t *testing.T) {
	t.Parallel()
	require.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		wantMsg string
	}{
		{
			name:    "zero algorithm",
			mutate:  func(c *Config) { c.Signing.Algorithm = 0 },
			wantErr: sigilerrors.ErrConfigInvalidSigning,
			wantMsg: "signing.algorithm",
		},
		{
			name:    "empty output dir",
			mutate:  func(c *Config) { c.Keys.OutputDir = "  " },
			wantErr: sigilerrors.ErrConfigInvalidKeys,
			wantMsg: "keys.output_dir",
		},
		{
			name:    "zero max size",
			mutate:  func(c *Config) { c.Logging.MaxSizeMB = 0 },
			wantErr: sigilerrors.ErrConfigInvalidLogging,
			wantMsg: "logging.max_size_mb",
		},
		{
			name:    "negative backups",
			mutate:  func(c *Config) { c.Logging.MaxBackups = -1 },
			wantErr: sigilerrors.ErrConfigInvalidLogging,
			wantMsg: "logging.max_backups",
		},
		{
			name:    "negative age",
			mutate:  func(c *Config) { c.Logging.MaxAgeDays = -3 },
			wantErr: sigilerrors.ErrConfigInvalidLogging,
			wantMsg: "logging.max_age_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_ZeroRetentionAllowed(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Signing.Algorithm = crypto.Ed25519
	cfg.Logging.MaxBackups = 0
	cfg.Logging.MaxAgeDays = 0
	require.NoError(t, Validate(cfg))
}
