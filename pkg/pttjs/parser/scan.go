// Package parser implements the PTTJS grammar: line scanning, cell lines,
// addresses, function calls and script classification.
package parser

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// VersionPrefix starts the optional format line.
	VersionPrefix = "|PTTJS"
	// ScriptStart opens the script section.
	ScriptStart = ">>>SCRIPT"
	// ScriptEnd closes the script section.
	ScriptEnd = "<<<SCRIPT"
)

var (
	pageStartRe = regexp.MustCompile(`^\|(\((@\w+|[^|(){}\\]+|@\w+\|[^|(){}\\]+)?\))?\{$`)
	pageEndRe   = regexp.MustCompile(`\}\|$`)
	pageMetaRe  = regexp.MustCompile(`\|\(?([^(){}]*)\)?\{`)
	pageIDRe    = regexp.MustCompile(`^@\w+$`)
	cellLineRe  = regexp.MustCompile(`^\|(H)?(\((\[(\d+)\|(\d+)\])?(\d+\|\d+)?(\|)?(@\w+)?\))?>(.*)>?<\|$`)
)

// FindMatchingIndices returns the indices of the lines that pass the
// prefix and suffix checks and match re. With onlyFirst set, it stops at
// the first match.
func FindMatchingIndices(lines []string, re *regexp.Regexp, prefix, suffix string, onlyFirst bool, sched Scheduler) []int {
	var indices []int
	sched.Each(len(lines), func(i int) bool {
		line := lines[i]
		if prefix != "" && !strings.HasPrefix(line, prefix) {
			return true
		}
		if suffix != "" && !strings.HasSuffix(line, suffix) {
			return true
		}
		if re.MatchString(line) {
			indices = append(indices, i)
			return !onlyFirst
		}
		return true
	})
	return indices
}

// FindPageStarts returns the indices of page header lines such as
// "|(@id|Name){".
func FindPageStarts(lines []string, sched Scheduler) []int {
	return FindMatchingIndices(lines, pageStartRe, "|", "{", false, sched)
}

// FindPageEnds returns the index of the first line closing a page ("}|").
func FindPageEnds(lines []string, sched Scheduler) []int {
	return FindMatchingIndices(lines, pageEndRe, "", "}|", true, sched)
}

// FindCellLines returns the indices of lines that carry cells.
func FindCellLines(lines []string, sched Scheduler) []int {
	return FindMatchingIndices(lines, cellLineRe, "|", "<|", false, sched)
}

// IsCellLine reports whether line matches the cell line grammar.
func IsCellLine(line string) bool {
	return strings.HasPrefix(line, "|") && strings.HasSuffix(line, "<|") && cellLineRe.MatchString(line)
}

// FindScriptLines locates the script section. It returns the index of the
// opening line and the lines between the bounds. ok is false when the
// document has no script section.
func FindScriptLines(lines []string) (start int, script []string, ok bool) {
	start = -1
	for i, line := range lines {
		if strings.HasPrefix(line, ScriptStart) {
			start = i
			break
		}
	}
	if start < 0 {
		return -1, nil, false
	}
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], ScriptEnd) {
			return start, lines[start+1 : i], true
		}
	}
	return start, lines[start+1:], true
}

// PageMeta extracts the id and the display name from a page header line.
// Missing parts are returned empty. A single part starting with '@' is
// only an id when it is a word; "@a b" is a name.
func PageMeta(line string) (id, name string) {
	match := pageMetaRe.FindStringSubmatch(line)
	if match == nil || match[1] == "" {
		return "", ""
	}

	first, second, found := strings.Cut(match[1], "|")
	if found {
		if strings.HasPrefix(first, "@") {
			return first, second
		}
		return "", first
	}
	if pageIDRe.MatchString(first) {
		return first, ""
	}
	return "", first
}

// DefaultPageID returns the generated id of the n-th page (1-based).
func DefaultPageID(n int) string {
	return "@page" + strconv.Itoa(n)
}

// DefaultPageTitle returns the generated title of the n-th page (1-based).
func DefaultPageTitle(n int) string {
	return "Page " + strconv.Itoa(n)
}
