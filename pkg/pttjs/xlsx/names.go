package xlsx

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// namePrefix marks defined names that carry cell ids.
const namePrefix = "PTTJS_"

// sheetName derives a valid, unused sheet name from a page title.
func sheetName(title, fallback string, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\', '\'':
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = strings.TrimPrefix(fallback, "@")
	}
	name = truncate(name, maxSheetName)

	candidate := name
	for n := 2; used[strings.ToLower(candidate)] || strings.EqualFold(candidate, MetaSheet); n++ {
		suffix := " (" + strconv.Itoa(n) + ")"
		candidate = truncate(name, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

// pageTitle derives a page title from a sheet name. Characters that the
// page header grammar reserves are replaced with '_'.
func pageTitle(sheet string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '|', '(', ')', '{', '}', '\\':
			return '_'
		}
		return r
	}, sheet)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// definedName converts a cell id ("@total") into a defined name.
func definedName(id string) string {
	return namePrefix + strings.TrimPrefix(id, "@")
}

// cellID converts a defined name back into a cell id. ok is false for
// names not written by this package.
func cellID(name string) (string, bool) {
	if !strings.HasPrefix(name, namePrefix) {
		return "", false
	}
	return "@" + strings.TrimPrefix(name, namePrefix), true
}

// cellReference builds an absolute reference such as 'Sheet 1'!$A$1.
func cellReference(sheet string, col, row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row, true)
	if err != nil {
		return "", err
	}
	return "'" + sheet + "'!" + cell, nil
}

// parseReference parses a reference string.
// Format: 'SheetName'!$A$1 or SheetName!$A$1
func parseReference(ref string) (sheet string, col, row int, ok bool) {
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", 0, 0, false
	}

	// Remove quotes from sheet name
	sheet = strings.Trim(strings.TrimSpace(ref[:idx]), "'")

	// Remove $ signs
	cell := strings.ReplaceAll(ref[idx+1:], "$", "")

	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return "", 0, 0, false
	}
	return sheet, col, row, true
}

// parseRange parses a range such as A1:B2 into 1-based coordinates.
func parseRange(start, end string) (c1, r1, c2, r2 int, ok bool) {
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return 0, 0, 0, 0, false
	}
	c2, r2, err = excelize.CellNameToCoordinates(end)
	if err != nil {
		return 0, 0, 0, 0, false
	}
	return c1, r1, c2, r2, true
}
