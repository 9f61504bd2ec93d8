// FILE: alin/src/internal/record/numbers.go
package record

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumbers extracts the numeric elements of the first bracketed list in
// rec. Tokens that are not numbers are skipped one byte at a time, and a
// missing closing bracket ends the list at the end of input.
func ParseNumbers(rec string) []float64 {
	start := strings.IndexByte(rec, '[')
	if start < 0 {
		return nil
	}

	var numbers []float64
	s := rec[start+1:]
	for len(s) > 0 {
		s = strings.TrimLeft(s, " ,\t\r\n")
		if s == "" || s[0] == ']' {
			break
		}
		f, n := parseFloatPrefix(s)
		if n == 0 {
			s = s[1:]
			continue
		}
		numbers = append(numbers, f)
		s = s[n:]
	}
	return numbers
}

// ParseNumber parses a leading numeric literal, returning 0 when there is none.
func ParseNumber(s string) float64 {
	f, _ := parseFloatPrefix(strings.TrimLeft(s, " \t\r\n"))
	return f
}

// FormatNumber renders integral values without a fractional part and all
// others with six significant digits.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}

// FormatNumbers renders a list in the "[a, b, c]" form.
func FormatNumbers(numbers []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range numbers {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatNumber(f))
	}
	b.WriteByte(']')
	return b.String()
}
