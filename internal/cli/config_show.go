package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/tui"
)

// AddConfigCommand adds the config command and its show subcommand.
func AddConfigCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect sigil configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging defaults, the global config
(~/.sigil/config.yaml), the project config (.sigil/config.yaml) or --config,
and SIGIL_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, flags.Output)
		},
	}

	cmd.AddCommand(showCmd)
	root.AddCommand(cmd)
}

func runConfigShow(cmd *cobra.Command, outputFormat string) error {
	cfg := configFrom(cmd.Context())

	if outputFormat == OutputJSON {
		return tui.NewOutput(cmd.OutOrStdout(), outputFormat).JSON(cfg)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	return enc.Close()
}
