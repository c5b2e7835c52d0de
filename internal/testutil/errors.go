// Package testutil provides testing utilities for sigil.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Mock errors for testing purposes.
var (
	// ErrMockRead simulates a failing key or input stream.
	ErrMockRead = errors.New("mock read failure")

	// ErrMockRandom simulates an exhausted random source.
	ErrMockRandom = errors.New("mock random source failure")
)

// FailingReader is an io.Reader that always fails with Err (ErrMockRead when nil).
type FailingReader struct {
	Err error
}

// Read implements io.Reader.
func (r FailingReader) Read(_ []byte) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	return 0, ErrMockRead
}

// FixedKey is the 32-byte BLAKE3 test key used across packages.
const FixedKey = "01234567890123456789012345678901"

// WriteFile writes data to name inside a fresh temp dir and returns the full path.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
