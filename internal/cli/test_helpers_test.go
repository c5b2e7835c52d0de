package cli

// This file contains test utilities for running sigil commands in-process.

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// cliResult captures one in-process run of the root command.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// isolateHome points SIGIL_HOME at a temp dir, disables the log file and
// colors, and moves into an empty working directory so no real config is read.
// Tests that call it cannot run in parallel.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("SIGIL_HOME", home)
	t.Setenv("SIGIL_LOGGING_FILE", "false")
	t.Setenv("NO_COLOR", "1")
	t.Chdir(t.TempDir())
	return home
}

// runCLI executes the root command with args, feeding stdin.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// mockTerminalCheckFunc replaces terminalCheck and returns a restore func.
func mockTerminalCheckFunc(isTerminal bool) func() {
	original := terminalCheck
	terminalCheck = func() bool { return isTerminal }
	return func() { terminalCheck = original }
}

// mockConfirmOverwrite answers the overwrite prompt with answer and records
// the paths it was shown.
func mockConfirmOverwrite(answer bool, err error, seen *[]string) func() {
	original := confirmOverwrite
	confirmOverwrite = func(paths []string) (bool, error) {
		if seen != nil {
			*seen = append(*seen, paths...)
		}
		return answer, err
	}
	return func() { confirmOverwrite = original }
}
