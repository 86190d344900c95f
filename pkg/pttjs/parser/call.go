package parser

import (
	"strings"

	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
)

// ParseFunctionCall parses text of the form NAME(ARGS). Each argument is
// parsed as a nested call when possible and otherwise kept as a literal.
// With cellArgs set, non-call arguments are parsed as cell addresses
// instead of literals.
func ParseFunctionCall(text string, cellArgs bool) (*models.Call, error) {
	original := text
	text = strings.TrimSpace(text)

	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return nil, &GrammarError{Text: original, Reason: `expected "NAME(...)"`}
	}

	name := text[:open]
	if name == "" {
		return nil, &GrammarError{Text: original, Reason: "missing function name"}
	}

	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth < 0 {
			return nil, &GrammarError{Text: original, Reason: "unbalanced parentheses (too many closing)"}
		}
		if depth == 0 && i < len(text)-1 {
			return nil, &GrammarError{Text: original, Reason: "premature closing parenthesis or trailing characters"}
		}
	}
	if depth != 0 {
		return nil, &GrammarError{Text: original, Reason: "unbalanced parentheses (not all closed)"}
	}

	call := &models.Call{Name: name}

	body := text[open+1 : len(text)-1]
	if body == "" {
		return call, nil
	}

	for _, raw := range splitArgs(body) {
		call.Args = append(call.Args, parseArg(strings.TrimSpace(raw), cellArgs))
	}
	return call, nil
}

// splitArgs splits on commas outside nested parentheses.
func splitArgs(body string) []string {
	var args []string
	depth, start := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, body[start:i])
				start = i + 1
			}
		}
	}
	return append(args, body[start:])
}

func parseArg(s string, cellArgs bool) models.Arg {
	if s != "" && strings.ContainsRune(s, '(') {
		if nested, err := ParseFunctionCall(s, cellArgs); err == nil {
			return nested
		}
	}
	if cellArgs {
		return ParseCellAddress(s)
	}
	return models.Literal(s)
}
