// FILE: alin/src/internal/record/scan.go
package record

import (
	"strconv"
	"strings"
)

// FindString returns the string value of the first key named field.
// The second result is false when the key is absent or its value is not a
// quoted string. Nesting is not tracked: a key inside a nested object
// matches the same as a top-level one.
func FindString(rec, field string) (string, bool) {
	pos, ok := valueStart(rec, field)
	if !ok || rec[pos] != '"' {
		return "", false
	}
	return decodeQuoted(rec, pos+1), true
}

// FindInt returns the integer value of the first key named field, or 0.
// Values outside the int64 range saturate.
func FindInt(rec, field string) int64 {
	pos, ok := valueStart(rec, field)
	if !ok {
		return 0
	}

	end := pos
	if rec[end] == '-' {
		end++
	}
	digits := end
	for end < len(rec) && isDigit(rec[end]) {
		end++
	}
	if end == digits {
		return 0
	}

	// ParseInt returns the clamped value together with ErrRange
	n, _ := strconv.ParseInt(rec[pos:end], 10, 64)
	return n
}

// FindFloat returns the numeric value of the first key named field, or 0.
func FindFloat(rec, field string) float64 {
	pos, ok := valueStart(rec, field)
	if !ok {
		return 0
	}
	f, n := parseFloatPrefix(rec[pos:])
	if n == 0 {
		return 0
	}
	return f
}

// valueStart locates the first occurrence of "field" that is used as a key
// and returns the offset of the first byte of its value.
func valueStart(rec, field string) (int, bool) {
	key := `"` + field + `"`
	from := 0
	for from < len(rec) {
		idx := strings.Index(rec[from:], key)
		if idx < 0 {
			return 0, false
		}
		pos := skipSpace(rec, from+idx+len(key))
		if pos < len(rec) && rec[pos] == ':' {
			pos = skipSpace(rec, pos+1)
			if pos >= len(rec) {
				return 0, false
			}
			return pos, true
		}
		// Quoted text equal to the key name but not followed by a colon
		from += idx + 1
	}
	return 0, false
}

// decodeQuoted decodes a quoted value whose opening quote ends just before
// start. An unterminated value runs to the end of rec.
func decodeQuoted(rec string, start int) string {
	end := start
	for end < len(rec) && rec[end] != '"' && rec[end] != '\\' {
		end++
	}
	if end >= len(rec) || rec[end] == '"' {
		return rec[start:end]
	}

	var b strings.Builder
	b.Grow(end - start + 16)
	b.WriteString(rec[start:end])

	for i := end; i < len(rec); i++ {
		c := rec[i]
		if c == '"' {
			break
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(rec) {
			// Dangling backslash at end of buffer
			b.WriteByte(c)
			break
		}
		i++
		b.WriteByte(unescapeByte(rec[i]))
	}
	return b.String()
}

func unescapeByte(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		// Covers \" and \\ as well as unknown escapes such as \/
		return c
	}
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseFloatPrefix parses the longest decimal literal at the start of s and
// returns its value and length. A zero length means no number was found.
func parseFloatPrefix(s string) (float64, int) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	mantissa := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	// Require at least one digit in the mantissa
	if !strings.ContainsAny(s[mantissa:i], "0123456789") {
		return 0, 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		exp := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > exp {
			i = j
		}
	}

	// Out-of-range literals come back as ±Inf or 0 with ErrRange
	f, _ := strconv.ParseFloat(s[:i], 64)
	return f, i
}
