package tui

// ActionableError pairs an error message with a next step for the user.
//
//	err := NewActionableError("key file already exists", "Re-run with --force to overwrite")
//	output.Error(err)
//	// ✗ key file already exists
//	//   ▸ Try: Re-run with --force to overwrite
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion starts with a verb, e.g. "Check the key file path".
	Suggestion string

	// Context is appended to Message in parentheses when set.
	Context string

	err error
}

// NewActionableError creates a new ActionableError with message and suggestion.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// Error implements the error interface.
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// Unwrap returns the error set with WithCause.
func (e *ActionableError) Unwrap() error {
	return e.err
}

// WithContext sets Context and returns e for chaining.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}

// WithCause keeps err in the chain so errors.Is still matches sentinels.
func (e *ActionableError) WithCause(err error) *ActionableError {
	e.err = err
	return e
}
