// Package keyed provides the symmetric BLAKE3 keyed-hash variant.
// One 32-byte key both produces and checks a tag, so Sign and Verify share a Key.
package keyed

import (
	"crypto/subtle"
	"io"

	"github.com/zeebo/blake3"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
)

// Key is a BLAKE3 key. The zero value is not a usable key; build one with NewKey or Generate.
type Key struct {
	b [constants.KeySize]byte
}

// NewKey copies b into a Key. b must be exactly 32 bytes; longer buffers are
// rejected rather than truncated.
func NewKey(b []byte) (Key, error) {
	var k Key
	if len(b) != constants.KeySize {
		return k, errors.Wrapf(errors.ErrKeyFormat, "blake3 key must be %d bytes, got %d", constants.KeySize, len(b))
	}
	copy(k.b[:], b)
	return k, nil
}

// Generate reads a fresh key uniformly from rand.
func Generate(rand io.Reader) (Key, error) {
	var k Key
	if _, err := io.ReadFull(rand, k.b[:]); err != nil {
		return Key{}, errors.Mark(err, errors.ErrKeyGeneration)
	}
	return k, nil
}

// Bytes returns a copy of the raw key.
func (k Key) Bytes() []byte {
	out := make([]byte, constants.KeySize)
	copy(out, k.b[:])
	return out
}

// Sign returns the 32-byte keyed BLAKE3 hash of data. Identical inputs always
// produce identical output.
func (k Key) Sign(data []byte) ([]byte, error) {
	h, err := blake3.NewKeyed(k.b[:])
	if err != nil {
		return nil, errors.Wrap(err, "blake3")
	}
	_, _ = h.Write(data)
	return h.Sum(nil), nil
}

// Verify recomputes the tag for data and compares it with sig in constant time.
// A mismatch is (false, nil); only a sig of the wrong length is an error.
func (k Key) Verify(data, sig []byte) (bool, error) {
	if len(sig) != constants.Blake3SignatureSize {
		return false, errors.Wrapf(errors.ErrVerificationInput,
			"blake3 signature must be %d bytes, got %d", constants.Blake3SignatureSize, len(sig))
	}
	want, err := k.Sign(data)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(want, sig) == 1, nil
}
