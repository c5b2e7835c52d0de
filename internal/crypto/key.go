package crypto

import (
	"bytes"
	"io"
	"os"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/crypto/keyed"
	"github.com/mrz1836/sigil/internal/crypto/native"
	"github.com/mrz1836/sigil/internal/errors"
)

// KeySource yields the raw bytes of a key. Sources are read once per operation.
type KeySource interface {
	ReadKey() ([]byte, error)
}

// KeyFile is a key stored at a file path. The path is resolved when the key is read.
type KeyFile string

// ReadKey reads the file. Failures wrap ErrKeyLoad and keep the os error in the chain.
func (f KeyFile) ReadKey() ([]byte, error) {
	file, err := os.Open(string(f))
	if err != nil {
		return nil, errors.Mark(err, errors.ErrKeyLoad)
	}
	defer func() { _ = file.Close() }()
	return readBounded(file)
}

// KeyBytes is a key that has already been read into memory.
type KeyBytes []byte

// ReadKey returns a copy of the bytes.
func (b KeyBytes) ReadKey() ([]byte, error) {
	return bytes.Clone([]byte(b)), nil
}

// KeyReader adapts an already-open stream. The stream is read to EOF and not closed.
func KeyReader(r io.Reader) KeySource {
	return keyReader{r: r}
}

type keyReader struct {
	r io.Reader
}

func (k keyReader) ReadKey() ([]byte, error) {
	return readBounded(k.r)
}

func readBounded(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, constants.MaxKeyFileBytes+1))
	if err != nil {
		return nil, errors.Mark(err, errors.ErrKeyLoad)
	}
	if len(b) > constants.MaxKeyFileBytes {
		return nil, errors.Wrapf(errors.ErrKeyFormat, "key source exceeds %d bytes", constants.MaxKeyFileBytes)
	}
	return b, nil
}

// variant tags the closed set of key shapes.
type variant uint8

const (
	variantBlake3 variant = iota + 1
	variantEd25519Signer
	variantEd25519Verifier
)

// Key is loaded key material for exactly one algorithm and purpose.
// Blake3 keys sign and verify; Ed25519 keys are either a signer or a verifier.
type Key struct {
	variant   variant
	blake3    keyed.Key
	signing   native.SigningKey
	verifying native.VerifyingKey
}

// LoadSigningKey reads src and builds the key alg signs with.
func LoadSigningKey(alg Algorithm, src KeySource) (*Key, error) {
	raw, err := src.ReadKey()
	if err != nil {
		return nil, err
	}
	return newSigningKey(alg, raw)
}

// LoadVerifyingKey reads src and builds the key alg verifies with.
// Ed25519 public keys are checked to be curve points here.
func LoadVerifyingKey(alg Algorithm, src KeySource) (*Key, error) {
	raw, err := src.ReadKey()
	if err != nil {
		return nil, err
	}
	return newVerifyingKey(alg, raw)
}

func newSigningKey(alg Algorithm, raw []byte) (*Key, error) {
	switch alg {
	case Blake3:
		return newBlake3Key(raw)
	case Ed25519:
		sk, err := native.NewSigningKey(raw)
		if err != nil {
			return nil, err
		}
		return &Key{variant: variantEd25519Signer, signing: sk}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "value %d", uint8(alg))
	}
}

func newVerifyingKey(alg Algorithm, raw []byte) (*Key, error) {
	switch alg {
	case Blake3:
		return newBlake3Key(raw)
	case Ed25519:
		vk, err := native.NewVerifyingKey(raw)
		if err != nil {
			return nil, err
		}
		return &Key{variant: variantEd25519Verifier, verifying: vk}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "value %d", uint8(alg))
	}
}

func newBlake3Key(raw []byte) (*Key, error) {
	k, err := keyed.NewKey(raw)
	if err != nil {
		return nil, err
	}
	return &Key{variant: variantBlake3, blake3: k}, nil
}

// Algorithm reports which family k belongs to.
func (k *Key) Algorithm() Algorithm {
	switch k.variant {
	case variantBlake3:
		return Blake3
	case variantEd25519Signer, variantEd25519Verifier:
		return Ed25519
	default:
		return 0
	}
}

// CanSign reports whether k may be passed to Sign.
func (k *Key) CanSign() bool {
	return k.variant == variantBlake3 || k.variant == variantEd25519Signer
}

// CanVerify reports whether k may be passed to Verify.
func (k *Key) CanVerify() bool {
	return k.variant == variantBlake3 || k.variant == variantEd25519Verifier
}

// Sign signs data with k. Ed25519 verifying keys return ErrKeyRole.
func (k *Key) Sign(data []byte) ([]byte, error) {
	if !k.CanSign() {
		return nil, k.misuse("sign")
	}
	if k.variant == variantBlake3 {
		return k.blake3.Sign(data)
	}
	return k.signing.Sign(data), nil
}

// Verify checks sig over data. Ed25519 signing keys return ErrKeyRole.
// A signature that does not match is (false, nil).
func (k *Key) Verify(data, sig []byte) (bool, error) {
	if !k.CanVerify() {
		return false, k.misuse("verify")
	}
	if k.variant == variantBlake3 {
		return k.blake3.Verify(data, sig)
	}
	return k.verifying.Verify(data, sig)
}

// misuse explains why k cannot be used for op.
func (k *Key) misuse(op string) error {
	switch k.variant {
	case variantEd25519Signer:
		return errors.Wrapf(errors.ErrKeyRole, "ed25519 signing key cannot %s", op)
	case variantEd25519Verifier:
		return errors.Wrapf(errors.ErrKeyRole, "ed25519 verifying key cannot %s", op)
	default:
		return errors.Wrap(errors.ErrKeyFormat, "key not loaded")
	}
}
