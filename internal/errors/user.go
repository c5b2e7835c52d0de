package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice rather than a map because lookups go through errors.Is().
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Keys & Signatures
	// ===================
	{
		err: ErrKeyLoad,
		info: ErrorInfo{
			Message: "The key could not be read.",
			Action:  "Check that the key path exists and is readable.",
		},
	},
	{
		err: ErrKeyFormat,
		info: ErrorInfo{
			Message: "The key is not valid for the selected algorithm.",
			Action:  "Keys must be exactly 32 raw bytes. Generate one with 'sigil text generate'.",
		},
	},
	{
		err: ErrVerificationInput,
		info: ErrorInfo{
			Message: "The signature is malformed.",
			Action:  "Pass the signature exactly as printed by 'sigil text sign' (URL-safe base64, no padding).",
		},
	},
	{
		err: ErrKeyRole,
		info: ErrorInfo{
			Message: "This key cannot be used for the requested operation.",
			Action:  "Sign with the signing key (ed25519.sk) and verify with the verifying key (ed25519.pk).",
		},
	},
	{
		err: ErrUnknownAlgorithm,
		info: ErrorInfo{
			Message: "Unknown signing algorithm.",
			Action:  "Use 'blake3' or 'ed25519'.",
		},
	},
	{
		err: ErrKeyGeneration,
		info: ErrorInfo{
			Message: "Key generation failed.",
			Action:  "The system random source returned an error. Try again.",
		},
	},
	{
		err: ErrKeyExists,
		info: ErrorInfo{
			Message: "A key file already exists in the output directory.",
			Action:  "Use --force to overwrite it or choose another directory.",
		},
	},
	{
		err: ErrLockFailed,
		info: ErrorInfo{
			Message: "A key file is being written by another process.",
			Action:  "Wait for the other process to finish and try again.",
		},
	},

	// ===================
	// Input
	// ===================
	{
		err: ErrInputNotFound,
		info: ErrorInfo{
			Message: "File does not exist.",
			Action:  "Pass an existing file or '-' to read standard input.",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "An invalid argument was provided.",
			Action:  "Check the command help for valid arguments.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInvalidEncoding,
		info: ErrorInfo{
			Message: "The input is not valid for the selected encoding.",
			Action:  "Check the --format flag matches how the text was encoded.",
		},
	},
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Operation was canceled.",
			Action:  "",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "This operation requires confirmation in non-interactive mode.",
			Action:  "Use --force flag to skip confirmation.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is not loaded.",
			Action:  "Ensure config.yaml exists and is valid YAML.",
		},
	},
	{
		err: ErrConfigInvalidSigning,
		info: ErrorInfo{
			Message: "Invalid signing configuration.",
			Action:  "Check the 'signing' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidKeys,
		info: ErrorInfo{
			Message: "Invalid keys configuration.",
			Action:  "Check the 'keys' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidLogging,
		info: ErrorInfo{
			Message: "Invalid logging configuration.",
			Action:  "Check the 'logging' section in config.yaml for invalid values.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// Direct sentinels hit the map; wrapped errors fall back to errors.Is().
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
