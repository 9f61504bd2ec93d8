// FILE: alin/src/internal/codec/base64.go
package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// invalid marks a byte outside the alphabet. It is not a legal 6-bit value.
const invalid = 0xFF

var ErrInvalidSymbol = errors.New("invalid base64 symbol")

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var decodeTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = byte(i)
	}
	return t
}()

// Encode returns the padded standard-alphabet encoding of data.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode converts text back to bytes. Symbols outside the alphabet decode
// as zero, ASCII whitespace is skipped, and '=' acts as a zero placeholder
// that suppresses its group's trailing output bytes. A final group missing
// symbols is treated as if padded.
func Decode(text string) []byte {
	out, _ := decode(text, false)
	return out
}

// DecodeStrict is Decode that fails on the first symbol outside the alphabet.
func DecodeStrict(text string) ([]byte, error) {
	return decode(text, true)
}

func decode(text string, strict bool) ([]byte, error) {
	out := make([]byte, 0, len(text)/4*3+3)

	var group [4]byte
	n := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' || c == '\n' || c == '\r' || c == '\t' {
			continue
		}
		if c != '=' && decodeTable[c] == invalid && strict {
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidSymbol, c, i)
		}
		group[n] = c
		n++
		if n == 4 {
			out = appendGroup(out, group)
			n = 0
		}
	}

	// A lone trailing symbol carries fewer than 8 bits and yields nothing
	if n >= 2 {
		for j := n; j < 4; j++ {
			group[j] = '='
		}
		out = appendGroup(out, group)
	}
	return out, nil
}

func appendGroup(out []byte, g [4]byte) []byte {
	var triple uint32
	for _, c := range g {
		triple = triple<<6 | uint32(sextet(c))
	}

	out = append(out, byte(triple>>16))
	if g[2] != '=' {
		out = append(out, byte(triple>>8))
	}
	if g[3] != '=' {
		out = append(out, byte(triple))
	}
	return out
}

// sextet maps a symbol to its 6-bit value; padding and invalid symbols are zero.
func sextet(c byte) byte {
	if c == '=' {
		return 0
	}
	v := decodeTable[c]
	if v == invalid {
		return 0
	}
	return v
}
