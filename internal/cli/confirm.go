package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// terminalCheck is a variable for the terminal check function, allowing tests to override it.
//
//nolint:gochecknoglobals // test seam
var terminalCheck = isTerminal

// isTerminal returns true if stdin is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// confirmOverwrite is a variable so tests can answer the prompt.
//
//nolint:gochecknoglobals // test seam
var confirmOverwrite = promptOverwrite

// promptOverwrite asks whether the listed key files may be replaced.
func promptOverwrite(paths []string) (bool, error) {
	var confirm bool
	description := strings.Join(paths, "\n") + "\n\nThe old keys cannot be recovered."

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite %d existing key file(s)?", len(paths))).
				Description(description).
				Affirmative("Yes, overwrite").
				Negative("No, cancel").
				Value(&confirm),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirm, nil
}
