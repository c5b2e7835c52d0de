package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/encoding"
	"github.com/mrz1836/sigil/internal/tui"
)

type textVerifyOptions struct {
	input     string
	keyFile   string
	algorithm string
	signature string
}

// verifyResult is printed with --output json.
type verifyResult struct {
	Algorithm crypto.Algorithm `json:"algorithm"`
	Verified  bool             `json:"verified"`
}

func addTextVerifyCmd(parent *cobra.Command, flags *GlobalFlags) {
	opts := &textVerifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature",
		Long: `Verify a URL-safe base64 signature over the input.

Prints "Verified" or "Not verified". Both are successful outcomes and exit 0;
a signature of the wrong length is an error.

Examples:
  sigil text verify -k blake3.txt -s "$SIG" < message.txt
  sigil text verify -f ed25519 -k ed25519.pk -i message.txt -s "$SIG"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextVerify(cmd, opts, flags.Output)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", constants.StdinSentinel, "input file, - for stdin")
	cmd.Flags().StringVarP(&opts.keyFile, "key", "k", "", "key file, default from signing.key_file")
	cmd.Flags().StringVarP(&opts.algorithm, "format", "f", "", algorithmUsage())
	cmd.Flags().StringVarP(&opts.signature, "sig", "s", "", "signature (URL-safe base64)")
	_ = cmd.MarkFlagRequired("sig")

	parent.AddCommand(cmd)
}

func runTextVerify(cmd *cobra.Command, opts *textVerifyOptions, outputFormat string) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)

	alg, err := resolveAlgorithm(cmd, opts.algorithm, cfg)
	if err != nil {
		return err
	}
	keyPath, err := resolveKeyPath(cmd, opts.keyFile, cfg)
	if err != nil {
		return err
	}
	if err := checkStdinUse([]string{opts.input}, keyPath); err != nil {
		return err
	}

	sig, err := encoding.DecodeSignature(opts.signature)
	if err != nil {
		return err
	}
	src, err := openKeySource(cmd.InOrStdin(), keyPath)
	if err != nil {
		return err
	}
	data, err := readInput(cmd.InOrStdin(), opts.input)
	if err != nil {
		return err
	}

	ok, err := crypto.Verify(ctx, alg, data, src, sig)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Stringer("algorithm", alg).
		Bool("verified", ok).
		Msg("verification finished")

	out := tui.NewOutput(cmd.OutOrStdout(), outputFormat)
	if outputFormat == OutputJSON {
		return out.JSON(verifyResult{Algorithm: alg, Verified: ok})
	}

	status := constants.StatusNotVerified
	if ok {
		status = constants.StatusVerified
	}
	out.Status(ok, status)
	return nil
}
