package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/config"
	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/errors"
)

// readInput returns the bytes named by path: "-" reads stdin, anything else
// must be an existing regular file.
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == constants.StdinSentinel {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		return data, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewExitCode2Error(errors.Wrapf(errors.ErrInputNotFound, "%s", path))
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if info.IsDir() {
		return nil, errors.NewExitCode2Error(errors.Wrapf(errors.ErrInvalidArgument, "%s is a directory", path))
	}

	data, err := os.ReadFile(path) //#nosec G304 -- the user names the input file
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

// checkStdinUse rejects more than one consumer of stdin across inputs and key.
func checkStdinUse(inputs []string, keyFile string) error {
	n := 0
	for _, in := range inputs {
		if in == constants.StdinSentinel {
			n++
		}
	}
	if keyFile == constants.StdinSentinel {
		n++
	}
	if n > 1 {
		return errors.NewExitCode2Error(errors.Wrap(errors.ErrInvalidArgument, "stdin (-) can be used only once"))
	}
	return nil
}

// resolveAlgorithm returns the -f value when given, else signing.algorithm.
func resolveAlgorithm(cmd *cobra.Command, flagValue string, cfg *config.Config) (crypto.Algorithm, error) {
	if !cmd.Flags().Changed("format") {
		return cfg.Signing.Algorithm, nil
	}
	alg, err := crypto.ParseAlgorithm(flagValue)
	if err != nil {
		return 0, errors.NewExitCode2Error(err)
	}
	return alg, nil
}

// resolveKeyPath returns the -k value when given, else signing.key_file.
func resolveKeyPath(cmd *cobra.Command, flagValue string, cfg *config.Config) (string, error) {
	path := flagValue
	if !cmd.Flags().Changed("key") {
		path = cfg.Signing.KeyFile
	}
	if path == "" {
		return "", errors.NewExitCode2Error(
			errors.Wrap(errors.ErrInvalidArgument, "no key file: pass -k or set signing.key_file"))
	}
	return path, nil
}

// openKeySource returns the KeySource for path. A key on stdin is consumed
// once here so concurrent signers share the bytes.
func openKeySource(stdin io.Reader, path string) (crypto.KeySource, error) {
	if path == constants.StdinSentinel {
		raw, err := crypto.KeyReader(stdin).ReadKey()
		if err != nil {
			return nil, err
		}
		return crypto.KeyBytes(raw), nil
	}
	return crypto.KeyFile(path), nil
}
