// FILE: alin/src/internal/record/escape.go
package record

import "strings"

var escaper = strings.NewReplacer(
	`"`, `\"`,
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Escape makes text safe to embed between quotes in a record.
// Bytes outside the escape set, including non-ASCII, are copied unchanged.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Unescape reverses Escape for the body of a quoted value.
func Unescape(body string) string {
	return decodeQuoted(body, 0)
}
