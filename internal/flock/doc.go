// Package flock holds advisory locks on key files while they are written.
//
// Locks are exclusive and non-blocking: a file already locked by another
// process fails immediately with errors.ErrLockFailed instead of waiting.
//
//	unlock, err := flock.Lock(file)
//	if err != nil {
//	    return err
//	}
//	defer func() { _ = unlock() }()
package flock
