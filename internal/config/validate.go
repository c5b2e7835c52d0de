package config

import (
	"strings"

	"github.com/mrz1836/sigil/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - signing.algorithm must be a supported algorithm
//   - keys.output_dir must not be empty
//   - logging.max_size_mb must be positive
//   - logging.max_backups and logging.max_age_days must not be negative
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if !cfg.Signing.Algorithm.Valid() {
		return errors.Wrapf(errors.ErrConfigInvalidSigning,
			"signing.algorithm must be one of blake3, ed25519, got %d", uint8(cfg.Signing.Algorithm))
	}

	if strings.TrimSpace(cfg.Keys.OutputDir) == "" {
		return errors.Wrap(errors.ErrConfigInvalidKeys, "keys.output_dir must not be empty")
	}

	return validateLoggingConfig(&cfg.Logging)
}

func validateLoggingConfig(cfg *LoggingConfig) error {
	if cfg.MaxSizeMB <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLogging,
			"logging.max_size_mb must be positive, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLogging,
			"logging.max_backups cannot be negative, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLogging,
			"logging.max_age_days cannot be negative, got %d", cfg.MaxAgeDays)
	}
	return nil
}
