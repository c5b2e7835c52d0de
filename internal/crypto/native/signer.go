// Package native provides Ed25519 signing using standard crypto libraries.
//
// Signing and verifying are separate key types: a VerifyingKey has no path to a
// signature, and a SigningKey has no Verify method.
package native

import (
	"crypto/ed25519"
	"io"

	"filippo.io/edwards25519"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
)

// SigningKey is an Ed25519 private key expanded from a 32-byte RFC 8032 seed.
type SigningKey struct {
	priv ed25519.PrivateKey
}

// NewSigningKey expands a 32-byte seed into a SigningKey.
func NewSigningKey(seed []byte) (SigningKey, error) {
	if len(seed) != ed25519.SeedSize {
		return SigningKey{}, errors.Wrapf(errors.ErrKeyFormat,
			"ed25519 signing key must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return SigningKey{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// Seed returns a copy of the 32-byte seed.
func (k SigningKey) Seed() []byte {
	return append([]byte(nil), k.priv.Seed()...)
}

// VerifyingKey derives the public half of k.
func (k SigningKey) VerifyingKey() VerifyingKey {
	pub, _ := k.priv.Public().(ed25519.PublicKey)
	return VerifyingKey{pub: append(ed25519.PublicKey(nil), pub...)}
}

// Sign returns the deterministic 64-byte signature of data.
func (k SigningKey) Sign(data []byte) []byte {
	return ed25519.Sign(k.priv, data)
}

// VerifyingKey is an Ed25519 public key known to decode to a curve point.
type VerifyingKey struct {
	pub ed25519.PublicKey
}

// NewVerifyingKey validates b as an encoded curve point. Invalid points are
// rejected here so that Verify never sees them.
func NewVerifyingKey(b []byte) (VerifyingKey, error) {
	if len(b) != ed25519.PublicKeySize {
		return VerifyingKey{}, errors.Wrapf(errors.ErrKeyFormat,
			"ed25519 verifying key must be %d bytes, got %d", ed25519.PublicKeySize, len(b))
	}
	if _, err := new(edwards25519.Point).SetBytes(b); err != nil {
		return VerifyingKey{}, errors.Wrap(errors.ErrKeyFormat, "ed25519 verifying key is not a valid curve point")
	}
	return VerifyingKey{pub: append(ed25519.PublicKey(nil), b...)}, nil
}

// Bytes returns a copy of the 32-byte public key.
func (k VerifyingKey) Bytes() []byte {
	return append([]byte(nil), k.pub...)
}

// Verify reports whether sig is a valid signature of data under k.
// The only error is a sig that is not 64 bytes; every other failure is a bare
// false with no reason attached.
func (k VerifyingKey) Verify(data, sig []byte) (bool, error) {
	if len(sig) != constants.Ed25519SignatureSize {
		return false, errors.Wrapf(errors.ErrVerificationInput,
			"ed25519 signature must be %d bytes, got %d", constants.Ed25519SignatureSize, len(sig))
	}
	return ed25519.Verify(k.pub, data, sig), nil
}

// GenerateKey creates a new key pair from a seed read out of rand.
func GenerateKey(rand io.Reader) (SigningKey, VerifyingKey, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(rand, seed); err != nil {
		return SigningKey{}, VerifyingKey{}, errors.Mark(err, errors.ErrKeyGeneration)
	}
	sk := SigningKey{priv: ed25519.NewKeyFromSeed(seed)}
	return sk, sk.VerifyingKey(), nil
}
