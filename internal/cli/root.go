// Package cli provides the command-line interface for sigil.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/sigil/internal/config"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// newRootCmd creates the root command for the sigil CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "sigil",
		Short: "Sign and verify data with BLAKE3 or Ed25519",
		Long: `sigil signs, verifies and generates keys for arbitrary data.

Two algorithms are supported behind the same commands:
  • blake3   symmetric keyed BLAKE3 hash (one 32-byte key signs and verifies)
  • ed25519  asymmetric Ed25519 signatures (32-byte seed signs, public key verifies)

Signatures are printed as URL-safe base64 without padding.`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd, flags); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			cfg, err := config.Load(cmd.Context(), flags.ConfigFile)
			if err != nil {
				return err
			}

			logger := InitLogger(flags.Verbose, flags.Quiet, cfg.Logging)

			logger.Debug().
				Str("command", cmd.CommandPath()).
				Msg("command started")

			cmd.SetContext(logger.WithContext(withConfig(cmd.Context(), cfg)))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddTextCommand(cmd, flags)
	AddBase64Command(cmd, flags)
	AddConfigCommand(cmd, flags)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are reported on stderr before being returned for the exit code.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	defer CloseLogFile()

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		reportError(cmd.ErrOrStderr(), flags.Output, err)
	}
	return err
}

// reportError prints err with a suggested next step when one is known.
func reportError(w io.Writer, format string, err error) {
	_, action := errors.Actionable(err)
	ae := tui.NewActionableError(err.Error(), action).WithCause(err)
	tui.NewOutput(w, format).Error(ae)
}
