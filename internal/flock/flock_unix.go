//go:build unix

package flock

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Exclusive takes an exclusive lock on fd without waiting for another holder.
// The call is retried if a signal interrupts it.
func Exclusive(fd uintptr) error {
	for {
		err := unix.Flock(int(fd), unix.LOCK_EX|unix.LOCK_NB)
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}

// Unlock releases the lock on fd.
func Unlock(fd uintptr) error {
	return unix.Flock(int(fd), unix.LOCK_UN)
}
