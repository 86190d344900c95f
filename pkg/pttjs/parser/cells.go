package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
)

const cellMarker = `\|(H)?(\((\[(\d+)\|(\d+)\])?(\d+\|\d+)?(\|)?(@\w+)?\))?>`

var (
	cellMarkerRe     = regexp.MustCompile(cellMarker)
	cellMarkerOnlyRe = regexp.MustCompile(`^` + cellMarker + `$`)
)

// Submatch groups of cellMarker.
const (
	groupHeader = 1
	groupIndexX = 4
	groupScale  = 6
	groupID     = 8
)

// CellMeta decodes a cell marker such as "|H([1|2]2|1|@c1)>" into a cell
// without a value. indexDefault is used when the marker has no explicit
// index.
func CellMeta(marker string, indexDefault int) models.Cell {
	cell := models.Cell{Index: indexDefault}

	match := cellMarkerOnlyRe.FindStringSubmatch(marker)
	if match == nil {
		return cell
	}
	applyMeta(&cell, match)
	return cell
}

func applyMeta(cell *models.Cell, match []string) {
	cell.IsHeader = match[groupHeader] == "H"

	if x := match[groupIndexX]; x != "" {
		if idx, err := strconv.Atoi(x); err == nil {
			cell.Index = idx
		}
	}

	if s := match[groupScale]; s != "" {
		cols, rows, _ := strings.Cut(s, "|")
		c, errC := strconv.Atoi(cols)
		r, errR := strconv.Atoi(rows)
		if errC == nil && errR == nil {
			cell.Scale = &models.Scale{Cols: c, Rows: r}
		}
	}

	cell.ID = match[groupID]
}

// CellsInLine extracts the cells of a cell line. The line must match the
// cell line grammar; a line without markers yields no cells.
func CellsInLine(line string) []models.Cell {
	clean := strings.TrimSuffix(line, "<|")

	locs := cellMarkerRe.FindAllStringSubmatchIndex(clean, -1)
	if len(locs) == 0 {
		return nil
	}

	cells := make([]models.Cell, len(locs))
	for i, loc := range locs {
		match := make([]string, len(loc)/2)
		for g := range match {
			if loc[2*g] >= 0 {
				match[g] = clean[loc[2*g]:loc[2*g+1]]
			}
		}

		cell := models.Cell{Index: i}
		applyMeta(&cell, match)

		end := len(clean)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		cell.Value = UnescapeValue(clean[loc[1]:end])

		cells[i] = cell
	}

	return cells
}

// ParseRows converts cell lines into rows. Lines yielding no cells are
// skipped.
func ParseRows(lines []string, sched Scheduler) []models.Row {
	rows := make([]models.Row, 0, len(lines))
	sched.Each(len(lines), func(i int) bool {
		if cells := CellsInLine(lines[i]); len(cells) > 0 {
			rows = append(rows, cells)
		}
		return true
	})
	return rows
}
