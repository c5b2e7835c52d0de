package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
)

// newViperInstance creates a Viper instance with the SIGIL_ env prefix and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// viperDecoderOption lets mapstructure build typed values such as
// crypto.Algorithm from their text form.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
		),
	)
}

func unmarshalAndValidate(ctx context.Context, v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "config").
		Stringer("signing.algorithm", cfg.Signing.Algorithm).
		Str("keys.output_dir", cfg.Keys.OutputDir).
		Bool("logging.file", cfg.Logging.File).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// When configFile is non-empty it replaces the project config and must exist.
// A missing global or project config is not an error.
func Load(ctx context.Context, configFile string) (*Config, error) {
	v := newViperInstance()

	if globalPath, err := GlobalConfigPath(); err == nil && fileExists(globalPath) {
		if err := mergeFile(v, globalPath); err != nil {
			return nil, errors.Wrap(err, "failed to read global config file")
		}
	}

	switch {
	case configFile != "":
		if !fileExists(configFile) {
			return nil, errors.Wrapf(errors.ErrInputNotFound, "config file %s", configFile)
		}
		if err := mergeFile(v, configFile); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	case fileExists(ProjectConfigPath()):
		if err := mergeFile(v, ProjectConfigPath()); err != nil {
			return nil, errors.Wrap(err, "failed to read project config file")
		}
	}

	return unmarshalAndValidate(ctx, v)
}

// LoadFromPaths loads configuration from specific file paths for testing.
// projectConfigPath has higher priority than globalConfigPath; either may be
// empty to skip that level, and a path that does not exist is skipped.
func LoadFromPaths(ctx context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	for _, path := range []string{globalConfigPath, projectConfigPath} {
		if path == "" || !fileExists(path) {
			continue
		}
		if err := mergeFile(v, path); err != nil {
			return nil, errors.Wrapf(err, "failed to read config: %s", path)
		}
	}

	return unmarshalAndValidate(ctx, v)
}

func mergeFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return err
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
