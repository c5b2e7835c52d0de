package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/keystore"
	"github.com/mrz1836/sigil/internal/tui"
)

type textGenerateOptions struct {
	algorithm string
	outDir    string
	force     bool
}

// generateResult is printed with --output json.
type generateResult struct {
	Algorithm crypto.Algorithm `json:"algorithm"`
	Files     []string         `json:"files"`
}

func addTextGenerateCmd(parent *cobra.Command, flags *GlobalFlags) {
	opts := &textGenerateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"generator"},
		Short:   "Generate a new key",
		Long: `Generate fresh key material and write it to an existing directory.

  blake3   writes blake3.txt (32 random bytes)
  ed25519  writes ed25519.sk (seed) and ed25519.pk (public key)

Files are created with mode 0600. Existing files are kept unless --force is
given or the overwrite is confirmed at the interactive prompt.

Examples:
  sigil text generate -O keys
  sigil text generate -f ed25519 -O keys --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextGenerate(cmd, opts, flags.Output)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "format", "f", "", algorithmUsage())
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "O", "", "existing output directory, default from keys.output_dir")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite existing key files")

	parent.AddCommand(cmd)
}

func runTextGenerate(cmd *cobra.Command, opts *textGenerateOptions, outputFormat string) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)
	logger := zerolog.Ctx(ctx)

	alg, err := resolveAlgorithm(cmd, opts.algorithm, cfg)
	if err != nil {
		return err
	}
	dir := opts.outDir
	if !cmd.Flags().Changed("out-dir") {
		dir = cfg.Keys.OutputDir
	}

	force, err := resolveOverwrite(dir, alg, opts.force, outputFormat)
	if err != nil {
		return err
	}

	keys, err := crypto.GenerateKeys(ctx, alg)
	if err != nil {
		return err
	}
	defer keys.Wipe()

	paths, err := keystore.Write(ctx, dir, alg, keys, keystore.Options{Force: force})
	if err != nil {
		return err
	}

	logger.Info().
		Stringer("algorithm", alg).
		Strs("files", paths).
		Msg("keys generated")

	out := tui.NewOutput(cmd.OutOrStdout(), outputFormat)
	if outputFormat == OutputJSON {
		return out.JSON(generateResult{Algorithm: alg, Files: paths})
	}
	for _, p := range paths {
		out.Print(p)
	}
	return nil
}

// resolveOverwrite decides whether existing key files may be replaced.
// Without --force an interactive terminal is asked; anything else keeps the files.
func resolveOverwrite(dir string, alg crypto.Algorithm, force bool, outputFormat string) (bool, error) {
	if force {
		return true, nil
	}

	paths, err := keystore.Paths(dir, alg)
	if err != nil {
		return false, err
	}
	var existing []string
	for _, p := range paths {
		if _, statErr := os.Stat(p); statErr == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return false, nil
	}

	exists := errors.Wrapf(errors.ErrKeyExists, "%s (use --force to overwrite)", existing[0])
	if outputFormat == OutputJSON {
		return false, exists
	}
	if !terminalCheck() {
		return false, errors.Mark(exists, errors.ErrNonInteractiveMode)
	}

	confirmed, err := confirmOverwrite(existing)
	if err != nil {
		return false, errors.Wrap(err, "confirmation prompt failed")
	}
	if !confirmed {
		return false, errors.ErrOperationCanceled
	}
	return true, nil
}
