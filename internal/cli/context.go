package cli

import (
	"context"

	"github.com/mrz1836/sigil/internal/config"
)

// configKey is the context key for the loaded configuration.
type configKey struct{}

// withConfig attaches cfg to ctx for subcommands.
func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the configuration loaded by the root command, or the
// built-in defaults when none was attached.
func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.DefaultConfig()
}
