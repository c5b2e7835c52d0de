package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/crypto"
)

// DefaultConfig returns a Config holding the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Signing: SigningConfig{
			Algorithm: crypto.Blake3,
		},
		Keys: KeysConfig{
			OutputDir: constants.DefaultKeyOutputDir,
		},
		Logging: LoggingConfig{
			File:       true,
			MaxSizeMB:  constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
			MaxAgeDays: constants.LogMaxAgeDays,
			Compress:   constants.LogCompress,
		},
	}
}

// setDefaults registers every key with viper so environment overrides apply.
// Keys must match the mapstructure tags exactly.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("signing.algorithm", d.Signing.Algorithm.Name())
	v.SetDefault("signing.key_file", d.Signing.KeyFile)

	v.SetDefault("keys.output_dir", d.Keys.OutputDir)

	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
	v.SetDefault("logging.compress", d.Logging.Compress)
}
