// Package keystore persists freshly generated keys under their fixed file names.
package keystore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/crypto"
	"github.com/mrz1836/sigil/internal/ctxutil"
	"github.com/mrz1836/sigil/internal/errors"
	"github.com/mrz1836/sigil/internal/flock"
)

// Options controls how Write treats files already on disk.
type Options struct {
	// Force overwrites existing key files instead of failing with ErrKeyExists.
	Force bool
}

// Paths returns where keys for alg are stored in dir, in KeySet order.
func Paths(dir string, alg crypto.Algorithm) ([]string, error) {
	switch alg {
	case crypto.Blake3:
		return []string{filepath.Join(dir, constants.Blake3KeyFileName)}, nil
	case crypto.Ed25519:
		return []string{
			filepath.Join(dir, constants.Ed25519SigningKeyFileName),
			filepath.Join(dir, constants.Ed25519VerifyingKeyFileName),
		}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "value %d", uint8(alg))
	}
}

// Write stores every key in ks under dir and returns the written paths.
// dir must already exist. Nothing is written if any target exists and Force is unset.
//
// Keys are staged in temp files inside dir and then moved into place together.
// If any step fails, every target is left as it was before the call.
func Write(ctx context.Context, dir string, alg crypto.Algorithm, ks crypto.KeySet, opts Options) ([]string, error) {
	if err := ctxutil.Entry(ctx, "write keys"); err != nil {
		return nil, err
	}

	if err := checkDir(dir); err != nil {
		return nil, err
	}

	paths, err := Paths(dir, alg)
	if err != nil {
		return nil, err
	}
	if len(paths) != len(ks) {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "%s expects %d keys, got %d", alg, len(paths), len(ks))
	}

	existing, err := checkTargets(paths, opts.Force)
	if err != nil {
		return nil, err
	}

	unlock, err := lockExisting(existing)
	if err != nil {
		return nil, err
	}
	defer unlock()

	staged := make([]string, 0, len(paths))
	defer func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}()
	for i, p := range paths {
		tmp, stageErr := stageKeyFile(dir, filepath.Base(p), ks[i].Bytes)
		if stageErr != nil {
			return nil, fmt.Errorf("failed to write %s key: %w", ks[i].Role, stageErr)
		}
		staged = append(staged, tmp)
	}

	if err := commit(staged, paths, opts.Force); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	for i, p := range paths {
		logger.Debug().
			Str("path", p).
			Stringer("role", ks[i].Role).
			Msg("key file written")
	}

	return paths, nil
}

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidArgument, "output directory %s: %v", dir, err)
	}
	if !info.IsDir() {
		return errors.Wrapf(errors.ErrInvalidArgument, "output path %s is not a directory", dir)
	}
	return nil
}

// checkTargets returns the targets already on disk. Without force any of them
// is ErrKeyExists; with force each must be a regular file.
func checkTargets(paths []string, force bool) ([]string, error) {
	var existing []string
	for _, p := range paths {
		info, err := os.Lstat(p)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", p, err)
		}
		if !force {
			return nil, errors.Wrapf(errors.ErrKeyExists, "%s (use --force to overwrite)", p)
		}
		if !info.Mode().IsRegular() {
			return nil, errors.Wrapf(errors.ErrInvalidArgument, "%s is not a regular file", p)
		}
		existing = append(existing, p)
	}
	return existing, nil
}

// lockExisting holds an exclusive lock on every existing target until the
// returned func runs, so a concurrent writer fails instead of interleaving.
func lockExisting(paths []string) (func(), error) {
	var releases []func()
	release := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	for _, p := range paths {
		f, err := os.OpenFile(p, os.O_RDONLY, 0) //#nosec G304 -- path is built from a fixed file name
		if err != nil {
			release()
			return nil, fmt.Errorf("failed to open %s: %w", p, err)
		}
		unlock, err := flock.Lock(f)
		if err != nil {
			_ = f.Close()
			release()
			return nil, err
		}
		releases = append(releases, func() {
			_ = unlock()
			_ = f.Close()
		})
	}
	return release, nil
}

// stageKeyFile writes data to a new hidden temp file in dir and syncs it.
func stageKeyFile(dir, name string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create key file: %w", err)
	}
	tmp := f.Name()

	err = writeSynced(f, data)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close key file: %w", closeErr)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}

func writeSynced(f *os.File, data []byte) error {
	if err := f.Chmod(constants.KeyFileMode); err != nil {
		return fmt.Errorf("failed to set key file mode: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync key file: %w", err)
	}
	return nil
}

// File operations used by commit. Tests replace them to fail mid-commit.
//
//nolint:gochecknoglobals // test seam
var (
	renameFile = os.Rename
	linkFile   = os.Link
)

// placed records one committed target and where its previous contents went.
type placed struct {
	target string
	backup string
}

// commit moves each staged file onto its target. Without force a hard link is
// used so an existing target is never replaced. On failure the committed
// targets are rolled back in reverse order.
func commit(staged, targets []string, force bool) error {
	var done []placed

	for i, target := range targets {
		p, err := place(staged[i], target, force)
		if err != nil {
			rollback(done)
			return err
		}
		done = append(done, p)
	}

	for _, p := range done {
		if p.backup != "" {
			_ = os.Remove(p.backup)
		}
	}
	return nil
}

func place(tmp, target string, force bool) (placed, error) {
	p := placed{target: target}

	if !force {
		if err := linkFile(tmp, target); err != nil {
			if os.IsExist(err) {
				return p, errors.Wrapf(errors.ErrKeyExists, "%s (use --force to overwrite)", target)
			}
			return p, fmt.Errorf("failed to place key file %s: %w", target, err)
		}
		return p, nil
	}

	if _, err := os.Lstat(target); err == nil {
		backup := tmp + ".old"
		if err := renameFile(target, backup); err != nil {
			return p, fmt.Errorf("failed to back up %s: %w", target, err)
		}
		p.backup = backup
	}
	if err := renameFile(tmp, target); err != nil {
		if p.backup != "" {
			_ = os.Rename(p.backup, target)
		}
		return p, fmt.Errorf("failed to place key file %s: %w", target, err)
	}
	return p, nil
}

// rollback restores previous contents, or removes targets that did not exist.
func rollback(done []placed) {
	for i := len(done) - 1; i >= 0; i-- {
		p := done[i]
		if p.backup != "" {
			_ = os.Rename(p.backup, p.target)
			continue
		}
		_ = os.Remove(p.target)
	}
}
