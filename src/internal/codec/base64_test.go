// FILE: alin/src/internal/codec/base64_test.go
package codec

import (
	"encoding/base64"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"f", "Zg=="},
		{"fo", "Zm8="},
		{"foo", "Zm9v"},
		{"foob", "Zm9vYg=="},
		{"fooba", "Zm9vYmE="},
		{"foobar", "Zm9vYmFy"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Encode([]byte(tc.in)))
	}
}

func TestDecode(t *testing.T) {
	t.Run("Padding", func(t *testing.T) {
		assert.Equal(t, []byte("f"), Decode("Zg=="))
		assert.Equal(t, []byte("fo"), Decode("Zm8="))
		assert.Equal(t, []byte("foo"), Decode("Zm9v"))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, Decode(""))
	})

	t.Run("MissingPadding", func(t *testing.T) {
		assert.Equal(t, []byte("f"), Decode("Zg"))
		assert.Equal(t, []byte("fo"), Decode("Zm8"))
	})

	t.Run("LoneTrailingSymbol", func(t *testing.T) {
		assert.Equal(t, []byte("foo"), Decode("Zm9vY"))
	})

	t.Run("WrappedLines", func(t *testing.T) {
		assert.Equal(t, []byte("foobar"), Decode("Zm9v\r\nYmFy\n"))
	})

	t.Run("InvalidSymbolIsZero", func(t *testing.T) {
		// '*' decodes as 'A' (zero) and keeps the stream aligned
		assert.Equal(t, Decode("AAAA"), Decode("*AAA"))
		assert.Equal(t, []byte("foo"), Decode("AAAAZm9v")[3:])
		assert.Equal(t, []byte("foo"), Decode("!@#$Zm9v")[3:])
	})

	t.Run("ConcatenatedPaddedGroups", func(t *testing.T) {
		assert.Equal(t, []byte("ff"), Decode("Zg==Zg=="))
	})
}

func TestDecodeStrict(t *testing.T) {
	out, err := DecodeStrict("Zm9vYmE=")
	require.NoError(t, err)
	assert.Equal(t, []byte("fooba"), out)

	_, err = DecodeStrict("Zm9*")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestInvalidSentinel(t *testing.T) {
	for c := 0; c < 256; c++ {
		v := decodeTable[c]
		if v != invalid {
			assert.Less(t, v, byte(64))
		}
	}
	assert.Equal(t, byte(invalid), decodeTable['='])
	assert.Equal(t, byte(0), decodeTable['A'])
	assert.Equal(t, byte(63), decodeTable['/'])
}

func TestRoundTrip(t *testing.T) {
	t.Run("SmallLengths", func(t *testing.T) {
		for n := 0; n <= 7; n++ {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(255 - i*37)
			}
			assert.Equal(t, data, Decode(Encode(data)), "length %d", n)
		}
	})

	t.Run("Property", func(t *testing.T) {
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 300
		properties := gopter.NewProperties(parameters)

		properties.Property("decode inverts encode", prop.ForAll(
			func(data []byte) bool {
				return string(Decode(Encode(data))) == string(data)
			},
			gen.SliceOf(gen.UInt8()),
		))

		properties.Property("matches the standard library", prop.ForAll(
			func(data []byte) bool {
				return Encode(data) == base64.StdEncoding.EncodeToString(data)
			},
			gen.SliceOf(gen.UInt8()),
		))

		properties.TestingRun(t)
	})
}
