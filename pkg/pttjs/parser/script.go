package parser

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
)

type scriptRule struct {
	kind     models.ScriptKind
	re       *regexp.Regexp
	cellArgs bool
}

// Rules are tried in order; the first match wins.
var scriptRules = []scriptRule{
	{
		kind: models.KindTyping,
		re:   regexp.MustCompile(`^\((@[\w\d\s]+,)?(\d+(?::\d+)?\|\d+(?::\d+)?)(,\d+(?::\d+)?\|\d+(?::\d+)?)?\)=>`),
	},
	{
		kind:     models.KindExpression,
		re:       regexp.MustCompile(`^\((@[\w\d]+\|)?\d+\|\d+\)=`),
		cellArgs: true,
	},
	{
		kind: models.KindStyle,
		re:   regexp.MustCompile(`^\((@[\w\d\s]+,)?(\d+(?::\d+)?\|\d+(?::\d+)?)(,\d+(?::\d+)?\|\d+(?::\d+)?)?\)<=`),
	},
}

// Scripts holds the classified entries of a script section.
type Scripts struct {
	Typings     []models.ScriptEntry
	Expressions []models.ScriptEntry
	Styles      []models.ScriptEntry
	// Errors lists the lines that matched a grammar but failed to parse.
	Errors []*ScriptError
}

// ClassifyScriptLines parses script lines into typings, expressions and
// styles. Lines matching no grammar are ignored. Lines that match but fail
// to parse are logged, recorded in Errors and dropped. log may be nil.
func ClassifyScriptLines(lines []string, log *slog.Logger) Scripts {
	scripts := Scripts{
		Typings:     []models.ScriptEntry{},
		Expressions: []models.ScriptEntry{},
		Styles:      []models.ScriptEntry{},
	}

	for _, line := range lines {
		kind, entry, ok, err := ParseScriptLine(line)
		if !ok {
			continue
		}
		if err != nil {
			if log != nil {
				log.Warn("dropping script line",
					"kind", string(err.Kind),
					"line", err.Line,
					"prefix", err.Prefix,
					"call", err.Call,
					"error", err.Err)
			}
			scripts.Errors = append(scripts.Errors, err)
			continue
		}

		switch kind {
		case models.KindTyping:
			scripts.Typings = append(scripts.Typings, entry)
		case models.KindExpression:
			scripts.Expressions = append(scripts.Expressions, entry)
		case models.KindStyle:
			scripts.Styles = append(scripts.Styles, entry)
		}
	}

	return scripts
}

// ParseScriptLine classifies and parses a single script line. ok is false
// when the line matches no grammar.
func ParseScriptLine(line string) (kind models.ScriptKind, entry models.ScriptEntry, ok bool, err *ScriptError) {
	trimmed := strings.TrimSpace(line)
	for _, rule := range scriptRules {
		prefix := rule.re.FindString(trimmed)
		if prefix == "" {
			continue
		}
		rest := trimmed[len(prefix):]
		parsed, perr := parseScriptEntry(prefix, rest, rule.cellArgs)
		if perr != nil {
			return rule.kind, models.ScriptEntry{}, true, &ScriptError{
				Kind:   rule.kind,
				Line:   line,
				Prefix: prefix,
				Call:   strings.TrimSpace(rest),
				Err:    perr,
			}
		}
		return rule.kind, parsed, true, nil
	}
	return "", models.ScriptEntry{}, false, nil
}

func parseScriptEntry(prefix, rest string, cellArgs bool) (models.ScriptEntry, error) {
	addr, err := ParseScriptAddress(prefix)
	if err != nil {
		return models.ScriptEntry{}, err
	}
	call, err := ParseFunctionCall(strings.TrimSpace(rest), cellArgs)
	if err != nil {
		return models.ScriptEntry{}, err
	}
	return models.ScriptEntry{Address: addr, Call: call}, nil
}
