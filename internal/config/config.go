// Package config provides layered configuration for sigil.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by the cli package when a flag is set explicitly)
//  2. Environment variables (SIGIL_* prefix, "." replaced by "_")
//  3. The file named by --config, or the project config (.sigil/config.yaml)
//  4. Global config (~/.sigil/config.yaml, or $SIGIL_HOME/config.yaml)
//  5. Built-in defaults
//
// This package may import internal/constants, internal/errors and
// internal/crypto (for the Algorithm type) but no other internal packages.
package config

import "github.com/mrz1836/sigil/internal/crypto"

// Config is the root configuration structure for sigil.
type Config struct {
	// Signing holds the defaults for `text sign` and `text verify`.
	Signing SigningConfig `yaml:"signing" json:"signing" mapstructure:"signing"`

	// Keys holds the defaults for `text generate`.
	Keys KeysConfig `yaml:"keys" json:"keys" mapstructure:"keys"`

	// Logging controls the rotating log file.
	Logging LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// SigningConfig selects the default algorithm and key.
type SigningConfig struct {
	// Algorithm is used when -f is not given.
	// Default: blake3
	Algorithm crypto.Algorithm `yaml:"algorithm" json:"algorithm" mapstructure:"algorithm"`

	// KeyFile is used when -k is not given. Empty means -k is required.
	KeyFile string `yaml:"key_file" json:"key_file" mapstructure:"key_file"`
}

// KeysConfig controls where generated keys are written.
type KeysConfig struct {
	// OutputDir is used when -O is not given. The directory must already exist.
	// Default: "."
	OutputDir string `yaml:"output_dir" json:"output_dir" mapstructure:"output_dir"`
}

// LoggingConfig controls the rotating log file under the sigil home directory.
type LoggingConfig struct {
	// File enables the log file. Console logging is unaffected.
	File bool `yaml:"file" json:"file" mapstructure:"file"`

	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int `yaml:"max_size_mb" json:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is how many rotated files are kept. Zero keeps all of them.
	MaxBackups int `yaml:"max_backups" json:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays is how long rotated files are kept. Zero disables age-based removal.
	MaxAgeDays int `yaml:"max_age_days" json:"max_age_days" mapstructure:"max_age_days"`

	// Compress gzips rotated files.
	Compress bool `yaml:"compress" json:"compress" mapstructure:"compress"`
}
