package parser

import (
	"strings"

	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
)

// ParseCellAddress parses "x|y" or "page|x|y". A coordinate written as
// "x:x" spans to the end of its axis. Any other shape yields an unset
// address.
func ParseCellAddress(s string) models.CellAddress {
	var addr models.CellAddress

	parts := strings.Split(s, "|")
	var xPart, yPart string
	switch len(parts) {
	case 3:
		addr.Page = parts[0]
		xPart, yPart = parts[1], parts[2]
	case 2:
		xPart, yPart = parts[0], parts[1]
	default:
		return addr
	}

	addr.X, addr.XToEnd = parseCoord(xPart)
	addr.Y, addr.YToEnd = parseCoord(yPart)
	return addr
}

func parseCoord(part string) (string, bool) {
	value, _, toEnd := strings.Cut(part, ":")
	return value, toEnd
}

// ParseScriptAddress parses the address prefix of a script line, including
// its brackets and terminator, e.g. "(@Sheet1,0|0,2:2|3)=>".
func ParseScriptAddress(text string) (models.ScriptAddress, error) {
	var addr models.ScriptAddress

	var suffixLen int
	switch {
	case strings.HasSuffix(text, "=>"), strings.HasSuffix(text, "<="):
		suffixLen = 2
	case strings.HasSuffix(text, "="):
		suffixLen = 1
	default:
		return addr, &AddressError{Text: text, Reason: "unknown terminator"}
	}

	closeAt := len(text) - suffixLen - 1
	if !strings.HasPrefix(text, "(") || closeAt < 1 || text[closeAt] != ')' {
		return addr, &AddressError{Text: text, Reason: "address must be enclosed in parentheses"}
	}
	content := text[1:closeAt]

	parts := strings.Split(content, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if first := parts[0]; strings.HasPrefix(first, "@") && !strings.ContainsAny(first, "|:") {
		addr.Page = first
		parts = parts[1:]
	}

	switch {
	case len(parts) > 0 && parts[0] != "":
		start := ParseCellAddress(parts[0])
		addr.CellStart = &start
	case content == "":
		addr.CellStart = &models.CellAddress{}
	}

	if len(parts) > 1 {
		end := ParseCellAddress(parts[1])
		addr.CellEnd = &end
	}

	return addr, nil
}
