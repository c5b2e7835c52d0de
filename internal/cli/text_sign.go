package cli

import (
	"context"
	"io"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/ctxutil"
	"github.com/mrz1836/sigil/internal/encoding"
	"github.com/mrz1836/sigil/internal/logging"
	"github.com/mrz1836/sigil/internal/tui"
)

type textSignOptions struct {
	inputs    []string
	keyFile   string
	algorithm string
}

// signResult is one signed input as printed with --output json.
type signResult struct {
	Algorithm crypto.Algorithm `json:"algorithm"`
	Input     string           `json:"input,omitempty"`
	Signature string           `json:"signature"`
}

func addTextSignCmd(parent *cobra.Command, flags *GlobalFlags) {
	opts := &textSignOptions{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign input with a shared or private key",
		Long: `Sign one or more inputs and print URL-safe base64 signatures.

With several -i values the inputs are signed concurrently and each line is
printed as "<input>\t<signature>" in argument order.

Examples:
  sigil text sign -k blake3.txt < message.txt
  sigil text sign -f ed25519 -k ed25519.sk -i a.txt -i b.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextSign(cmd, opts, flags.Output)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.inputs, "input", "i", []string{constants.StdinSentinel}, "input file, - for stdin (repeatable)")
	cmd.Flags().StringVarP(&opts.keyFile, "key", "k", "", "key file, default from signing.key_file")
	cmd.Flags().StringVarP(&opts.algorithm, "format", "f", "", algorithmUsage())

	parent.AddCommand(cmd)
}

func runTextSign(cmd *cobra.Command, opts *textSignOptions, outputFormat string) error {
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
	if err := checkStdinUse(opts.inputs, keyPath); err != nil {
		return err
	}
	src, err := openKeySource(cmd.InOrStdin(), keyPath)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Stringer("algorithm", alg).
		Str("key_file", logging.SafeValue("key_file", keyPath)).
		Int("inputs", len(opts.inputs)).
		Msg("signing inputs")

	sigs, err := signAll(ctx, cmd.InOrStdin(), alg, src, opts.inputs)
	if err != nil {
		return err
	}

	out := tui.NewOutput(cmd.OutOrStdout(), outputFormat)
	multi := len(opts.inputs) > 1
	for i, sig := range sigs {
		res := signResult{Algorithm: alg, Signature: encoding.EncodeSignature(sig)}
		if multi {
			res.Input = opts.inputs[i]
		}

		if outputFormat == OutputJSON {
			if err := out.JSON(res); err != nil {
				return err
			}
			continue
		}
		if multi {
			out.Print(res.Input + "\t" + res.Signature)
		} else {
			out.Print(res.Signature)
		}
	}
	return nil
}

// signAll signs every input concurrently and returns signatures in input order.
// Each goroutine loads its own key from src.
func signAll(ctx context.Context, stdin io.Reader, alg crypto.Algorithm, src crypto.KeySource, inputs []string) ([][]byte, error) {
	sigs := make([][]byte, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, in := range inputs {
		g.Go(func() error {
			// a failed sibling cancels gctx; skip reading the rest
			if err := ctxutil.Canceled(gctx); err != nil {
				return err
			}
			data, err := readInput(stdin, in)
			if err != nil {
				return err
			}
			sig, err := crypto.Sign(gctx, alg, data, src)
			if err != nil {
				return err
			}
			sigs[i] = sig
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sigs, nil
}
