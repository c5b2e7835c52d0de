// Package tui renders sigil command results for terminals and machines.
package tui

import "io"

// Output format names accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output is where commands write results and messages.
// Result lines are never styled so they stay safe to pipe.
type Output interface {
	// Print writes one raw result line such as a signature.
	Print(line string)
	// Status writes a verdict line; ok selects the success or error color.
	Status(ok bool, msg string)
	// Success prints a success message.
	Success(msg string)
	// Error prints an error message.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// JSON writes v as a JSON document.
	JSON(v any) error
}

// NewOutput creates the Output for format. Anything but "json" is styled text.
func NewOutput(w io.Writer, format string) Output {
	if format == FormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
