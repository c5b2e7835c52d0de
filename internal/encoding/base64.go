// Package encoding converts signatures and arbitrary payloads to and from base64 text.
package encoding

import (
	"encoding/base64"
	"strings"

	"github.com/mrz1836/sigil/internal/errors"
)

// Format selects a base64 alphabet.
type Format string

// Supported formats.
const (
	// FormatStandard is RFC 4648 section 4 with padding.
	FormatStandard Format = "standard"
	// FormatURLSafe is RFC 4648 section 5 without padding.
	FormatURLSafe Format = "urlsafe"
)

// Formats lists the accepted --format values.
func Formats() []Format {
	return []Format{FormatStandard, FormatURLSafe}
}

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatStandard, FormatURLSafe:
		return f, nil
	default:
		return "", errors.Wrapf(errors.ErrInvalidArgument, "unknown base64 format %q (want standard or urlsafe)", s)
	}
}

func (f Format) encoding() (*base64.Encoding, error) {
	switch f {
	case FormatStandard:
		return base64.StdEncoding, nil
	case FormatURLSafe:
		return base64.RawURLEncoding, nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "unknown base64 format %q", string(f))
	}
}

// Encode renders data in format f.
func Encode(f Format, data []byte) (string, error) {
	enc, err := f.encoding()
	if err != nil {
		return "", err
	}
	return enc.EncodeToString(data), nil
}

// Decode parses text in format f. Surrounding whitespace is ignored.
func Decode(f Format, text string) ([]byte, error) {
	enc, err := f.encoding()
	if err != nil {
		return nil, err
	}
	b, err := enc.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, errors.Mark(err, errors.ErrInvalidEncoding)
	}
	return b, nil
}

// EncodeSignature is the transport form of a signature: URL-safe base64 without padding.
func EncodeSignature(sig []byte) string {
	return base64.RawURLEncoding.EncodeToString(sig)
}

// DecodeSignature reverses EncodeSignature. Malformed text is a verification input error.
func DecodeSignature(text string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrVerificationInput, "signature is not url-safe base64: %v", err)
	}
	return b, nil
}
