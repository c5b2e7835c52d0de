package testutil

import (
	"errors"
	"os"
	"testing"
)

var errCustom = errors.New("custom")

func TestFailingReader(t *testing.T) {
	t.Run("defaults to ErrMockRead", func(t *testing.T) {
		n, err := FailingReader{}.Read(make([]byte, 4))
		if n != 0 || !errors.Is(err, ErrMockRead) {
			t.Errorf("Read() = %d, %v; want 0, ErrMockRead", n, err)
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		_, err := FailingReader{Err: errCustom}.Read(nil)
		if !errors.Is(err, errCustom) {
			t.Errorf("Read() error = %v, want %v", err, errCustom)
		}
	})
}

func TestFixedKeyLength(t *testing.T) {
	if len(FixedKey) != 32 {
		t.Fatalf("FixedKey has %d bytes, want 32", len(FixedKey))
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "key.bin", []byte(FixedKey))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != FixedKey {
		t.Errorf("content = %q, want %q", data, FixedKey)
	}
}
