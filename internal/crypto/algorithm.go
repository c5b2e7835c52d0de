package crypto

import (
	"strings"

	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/errors"
)

// Algorithm selects a signing family. The zero value is not a valid algorithm.
type Algorithm uint8

// Supported algorithms.
const (
	// Blake3 is the symmetric keyed BLAKE3 hash.
	Blake3 Algorithm = iota + 1
	// Ed25519 is the asymmetric Ed25519 signature scheme.
	Ed25519
)

// Algorithms returns every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{Blake3, Ed25519}
}

// AlgorithmNames returns the accepted text forms, for flag help and validation messages.
func AlgorithmNames() []string {
	names := make([]string, 0, len(Algorithms()))
	for _, a := range Algorithms() {
		names = append(names, a.Name())
	}
	return names
}

// ParseAlgorithm accepts "blake3" or "ed25519" in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blake3":
		return Blake3, nil
	case "ed25519":
		return Ed25519, nil
	default:
		return 0, errors.Wrapf(errors.ErrUnknownAlgorithm, "%q (want one of %s)", s, strings.Join(AlgorithmNames(), ", "))
	}
}

// Name is the lower-case text form used on the command line and in config.
func (a Algorithm) Name() string {
	switch a {
	case Blake3:
		return "blake3"
	case Ed25519:
		return "ed25519"
	default:
		return ""
	}
}

// String is the display form ("Blake3", "Ed25519").
func (a Algorithm) String() string {
	switch a {
	case Blake3:
		return "Blake3"
	case Ed25519:
		return "Ed25519"
	default:
		return "Algorithm(invalid)"
	}
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a == Blake3 || a == Ed25519
}

// SignatureSize is the byte length of a signature produced by a.
func (a Algorithm) SignatureSize() int {
	switch a {
	case Blake3:
		return constants.Blake3SignatureSize
	case Ed25519:
		return constants.Ed25519SignatureSize
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, errors.Wrapf(errors.ErrUnknownAlgorithm, "value %d", uint8(a))
	}
	return []byte(a.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
