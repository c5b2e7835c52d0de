// Package crypto dispatches signing, verification and key generation across
// the supported algorithms. Every call loads, uses and discards its own key.
package crypto

import (
	"context"
	"crypto/rand"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrz1836/sigil/internal/crypto/keyed"
	"github.com/mrz1836/sigil/internal/crypto/native"
	"github.com/mrz1836/sigil/internal/ctxutil"
	"github.com/mrz1836/sigil/internal/errors"
)

// Sign loads the signing key for alg from src and signs data.
func Sign(ctx context.Context, alg Algorithm, data []byte, src KeySource) ([]byte, error) {
	if err := ctxutil.Entry(ctx, "sign"); err != nil {
		return nil, err
	}
	if !alg.Valid() {
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "value %d", uint8(alg))
	}

	zerolog.Ctx(ctx).Debug().
		Stringer("algorithm", alg).
		Int("input_bytes", len(data)).
		Msg("signing")

	key, err := LoadSigningKey(alg, src)
	if err != nil {
		return nil, err
	}
	return key.Sign(data)
}

// Verify loads the verifying key for alg from src and checks sig over data.
// A signature that does not match returns (false, nil); errors are reserved
// for unusable inputs such as a missing key or a signature of the wrong length.
func Verify(ctx context.Context, alg Algorithm, data []byte, src KeySource, sig []byte) (bool, error) {
	if err := ctxutil.Entry(ctx, "verify"); err != nil {
		return false, err
	}
	if !alg.Valid() {
		return false, errors.Wrapf(errors.ErrUnknownAlgorithm, "value %d", uint8(alg))
	}

	zerolog.Ctx(ctx).Debug().
		Stringer("algorithm", alg).
		Int("input_bytes", len(data)).
		Int("signature_bytes", len(sig)).
		Msg("verifying")

	key, err := LoadVerifyingKey(alg, src)
	if err != nil {
		return false, err
	}
	return key.Verify(data, sig)
}

// GenerateKeys creates fresh key material for alg from crypto/rand.
func GenerateKeys(ctx context.Context, alg Algorithm) (KeySet, error) {
	return GenerateKeysFrom(ctx, alg, rand.Reader)
}

// GenerateKeysFrom creates key material for alg reading entropy from r.
func GenerateKeysFrom(ctx context.Context, alg Algorithm, r io.Reader) (KeySet, error) {
	if err := ctxutil.Entry(ctx, "generate"); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Stringer("algorithm", alg).Msg("generating keys")

	switch alg {
	case Blake3:
		k, err := keyed.Generate(r)
		if err != nil {
			return nil, err
		}
		return KeySet{{Role: RoleSymmetric, Bytes: k.Bytes()}}, nil
	case Ed25519:
		sk, vk, err := native.GenerateKey(r)
		if err != nil {
			return nil, err
		}
		return KeySet{
			{Role: RoleSigning, Bytes: sk.Seed()},
			{Role: RoleVerifying, Bytes: vk.Bytes()},
		}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "value %d", uint8(alg))
	}
}
