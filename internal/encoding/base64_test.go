package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/sigil/internal/errors"
)

func TestEncodeSignature(t *testing.T) {
	// 0xfb 0xff encodes to "+/8=" in the standard alphabet.
	assert.Equal(t, "-_8", EncodeSignature([]byte{0xfb, 0xff}))
	assert.Empty(t, EncodeSignature(nil))
}

func TestDecodeSignature(t *testing.T) {
	b, err := DecodeSignature("-_8\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfb, 0xff}, b)

	for _, bad := range []string{"+/8=", "-_8=", "!!!", "a"} {
		_, err := DecodeSignature(bad)
		require.ErrorIs(t, err, errors.ErrVerificationInput, bad)
	}
}

func TestEncodeDecodeFormats(t *testing.T) {
	data := []byte("hello,world!?>")

	tests := []struct {
		format Format
		want   string
	}{
		{FormatStandard, "aGVsbG8sd29ybGQhPz4="},
		{FormatURLSafe, "aGVsbG8sd29ybGQhPz4"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := Encode(tt.format, data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := Decode(tt.format, "  "+got+"\n")
			require.NoError(t, err)
			assert.Equal(t, data, back)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(FormatStandard, "not base64!")
	require.ErrorIs(t, err, errors.ErrInvalidEncoding)

	_, err = Decode(FormatURLSafe, "aGVsbG8=")
	require.ErrorIs(t, err, errors.ErrInvalidEncoding)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("URLSafe")
	require.NoError(t, err)
	assert.Equal(t, FormatURLSafe, f)

	f, err = ParseFormat("standard")
	require.NoError(t, err)
	assert.Equal(t, FormatStandard, f)

	_, err = ParseFormat("hex")
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = Encode(Format("hex"), nil)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	_, err = Decode(Format("hex"), "")
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	assert.Equal(t, []Format{FormatStandard, FormatURLSafe}, Formats())
}
