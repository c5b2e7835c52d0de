package flock

import (
	"os"

	"github.com/mrz1836/sigil/internal/errors"
)

// Lock takes an exclusive lock on f and returns the matching release func.
// A lock held elsewhere is reported as ErrLockFailed.
func Lock(f *os.File) (func() error, error) {
	fd := f.Fd()
	if err := Exclusive(fd); err != nil {
		return nil, errors.Wrapf(errors.ErrLockFailed, "%s: %v", f.Name(), err)
	}
	return func() error { return Unlock(fd) }, nil
}
