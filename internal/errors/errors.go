// Package errors provides centralized error handling for sigil.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for the signing core.
// A signature that simply does not match is NOT an error; Verify reports it as false.
var (
	// ErrKeyLoad indicates the key bytes could not be read from their source
	// (missing file, permission denied, broken stream). The underlying I/O error
	// stays in the chain.
	ErrKeyLoad = errors.New("failed to load key")

	// ErrKeyFormat indicates key bytes were read but are not a valid key for the
	// selected algorithm (wrong length, or an Ed25519 public key that is not a curve point).
	ErrKeyFormat = errors.New("invalid key format")

	// ErrVerificationInput indicates a supplied signature cannot be parsed into the
	// algorithm's fixed-length representation.
	ErrVerificationInput = errors.New("malformed signature")

	// ErrKeyRole indicates a key was used for an operation it was not loaded for,
	// such as signing with an Ed25519 verifying key.
	ErrKeyRole = errors.New("key cannot be used for this operation")

	// ErrUnknownAlgorithm indicates an algorithm selector outside {blake3, ed25519}.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrKeyGeneration indicates the random source failed while generating keys.
	ErrKeyGeneration = errors.New("key generation failed")
)

// Sentinel errors for the key store and CLI.
var (
	// ErrKeyExists indicates key generation would overwrite an existing key file.
	ErrKeyExists = errors.New("key file already exists")

	// ErrLockFailed indicates an exclusive lock on a key file could not be acquired.
	ErrLockFailed = errors.New("key file is locked by another process")

	// ErrInvalidArgument indicates an invalid command argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInputNotFound indicates an input path is neither "-" nor an existing file.
	ErrInputNotFound = errors.New("file does not exist")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidEncoding indicates text could not be decoded with the requested encoding.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrNonInteractiveMode indicates confirmation is required but no terminal is attached.
	ErrNonInteractiveMode = errors.New("cannot prompt in non-interactive mode")
)

// Sentinel errors for configuration.
var (
	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidSigning indicates an invalid signing configuration value.
	ErrConfigInvalidSigning = errors.New("invalid signing configuration")

	// ErrConfigInvalidKeys indicates an invalid keys configuration value.
	ErrConfigInvalidKeys = errors.New("invalid keys configuration")

	// ErrConfigInvalidLogging indicates an invalid logging configuration value.
	ErrConfigInvalidLogging = errors.New("invalid logging configuration")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
