package errors

import "fmt"

// Wrap adds context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage:
//
//	if err := store.Write(ctx, dir, set); err != nil {
//	    return errors.Wrap(err, "failed to write keys")
//	}
//
// The wrapped error preserves the chain, so errors.Is(err, errors.ErrKeyExists)
// keeps working for callers.
//
// IMPORTANT: Only wrap errors at package boundaries to avoid
// overly nested error messages.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to errors at package boundaries.
// It returns nil if err is nil.
//
//	return errors.Wrapf(errors.ErrKeyFormat, "expected %d bytes, got %d", want, got)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Mark tags cause with a sentinel so that both errors.Is(err, sentinel) and
// errors.Is(err, cause) hold. The cause is kept unchanged in the chain.
// Returns nil if cause is nil.
func Mark(cause, sentinel error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}
