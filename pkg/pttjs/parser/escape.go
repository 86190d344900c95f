package parser

import (
	"fmt"
	"strings"
)

// The escape table is not a bijection: text that already contains one of
// the tokens reads back as the reserved character. Documents in the wild
// rely on this, so it is left as is.
var (
	escaper = strings.NewReplacer(
		"\n", "%5Cn",
		"|", "%7C",
		">", "%3E",
		"<", "%3C",
		"{", "%7B",
		"}", "%7D",
	)
	unescaper = strings.NewReplacer(
		"%5Cn", "\n",
		"%7C", "|",
		"%3E", ">",
		"%3C", "<",
		"%7B", "{",
		"%7D", "}",
	)
)

// EscapeValue replaces the reserved characters of a cell value with their
// percent tokens.
func EscapeValue(value string) string {
	return escaper.Replace(value)
}

// EscapeAny escapes the textual representation of v.
func EscapeAny(v any) string {
	if s, ok := v.(string); ok {
		return EscapeValue(s)
	}
	return EscapeValue(fmt.Sprint(v))
}

// UnescapeValue reverses EscapeValue.
func UnescapeValue(value string) string {
	return unescaper.Replace(value)
}
