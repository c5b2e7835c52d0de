package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/crypto"
)

// AddTextCommand adds the text command and its sign, verify and generate subcommands.
func AddTextCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign, verify and generate keys for text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addTextSignCmd(cmd, flags)
	addTextVerifyCmd(cmd, flags)
	addTextGenerateCmd(cmd, flags)

	root.AddCommand(cmd)
}

// algorithmUsage is the shared help text for -f.
func algorithmUsage() string {
	return "signing algorithm (" + strings.Join(crypto.AlgorithmNames(), "|") + "), default from signing.algorithm"
}
