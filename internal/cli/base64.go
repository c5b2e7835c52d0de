package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/encoding"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/tui"
)

type base64Options struct {
	input  string
	format string
}

// encodeResult is printed by base64 encode with --output json.
type encodeResult struct {
	Format  encoding.Format `json:"format"`
	Encoded string          `json:"encoded"`
}

// AddBase64Command adds the base64 command with encode and decode subcommands.
func AddBase64Command(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode base64",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	encodeOpts := &base64Options{}
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode input as base64",
		Example: `  sigil base64 encode -i blake3.txt
  printf 'hi' | sigil base64 encode --format urlsafe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBase64Encode(cmd, encodeOpts, flags.Output)
		},
	}
	addBase64Flags(encodeCmd, encodeOpts)

	decodeOpts := &base64Options{}
	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 input and write the raw bytes",
		Long: `Decode base64 input and write the raw bytes to stdout.

Surrounding whitespace is ignored. The output is binary in every output mode.`,
		Example: `  sigil base64 decode -i key.b64 > blake3.txt`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBase64Decode(cmd, decodeOpts)
		},
	}
	addBase64Flags(decodeCmd, decodeOpts)

	cmd.AddCommand(encodeCmd, decodeCmd)
	root.AddCommand(cmd)
}

func addBase64Flags(cmd *cobra.Command, opts *base64Options) {
	names := make([]string, 0, len(encoding.Formats()))
	for _, f := range encoding.Formats() {
		names = append(names, string(f))
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", constants.StdinSentinel, "input file, - for stdin")
	cmd.Flags().StringVar(&opts.format, "format", string(encoding.FormatStandard),
		"alphabet ("+strings.Join(names, "|")+")")
}

func parseFormatFlag(value string) (encoding.Format, error) {
	f, err := encoding.ParseFormat(value)
	if err != nil {
		return "", errors.NewExitCode2Error(err)
	}
	return f, nil
}

func runBase64Encode(cmd *cobra.Command, opts *base64Options, outputFormat string) error {
	f, err := parseFormatFlag(opts.format)
	if err != nil {
		return err
	}
	data, err := readInput(cmd.InOrStdin(), opts.input)
	if err != nil {
		return err
	}

	text, err := encoding.Encode(f, data)
	if err != nil {
		return err
	}

	out := tui.NewOutput(cmd.OutOrStdout(), outputFormat)
	if outputFormat == OutputJSON {
		return out.JSON(encodeResult{Format: f, Encoded: text})
	}
	out.Print(text)
	return nil
}

func runBase64Decode(cmd *cobra.Command, opts *base64Options) error {
	f, err := parseFormatFlag(opts.format)
	if err != nil {
		return err
	}
	data, err := readInput(cmd.InOrStdin(), opts.input)
	if err != nil {
		return err
	}

	raw, err := encoding.Decode(f, string(data))
	if err != nil {
		return errors.NewExitCode2Error(err)
	}

	if _, err := cmd.OutOrStdout().Write(raw); err != nil {
		return errors.Wrap(err, "failed to write decoded bytes")
	}
	return nil
}
