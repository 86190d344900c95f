package xlsx

import (
	"log/slog"

	"github.com/ukaji3/pttjs-go/pkg/pttjs"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/parser"
	"github.com/xuri/excelize/v2"
)

// cellKey is a 1-based (column, row) pair.
type cellKey struct {
	col, row int
}

// FromWorkbook reads a workbook into a store. Script lines that fail to
// parse are logged to log (if non-nil) and dropped.
func FromWorkbook(f *excelize.File, log *slog.Logger) (*models.Store, error) {
	meta, err := readMeta(f)
	if err != nil {
		return nil, pttjs.NewConversionError("", "scripts", err)
	}

	store := models.NewStore()
	headers := newHeaderDetector(f)

	n := 0
	for _, sheet := range f.GetSheetList() {
		if sheet == MetaSheet {
			continue
		}
		n++

		page := &models.Page{ID: parser.DefaultPageID(n), Title: pageTitle(sheet)}
		if m, ok := meta.pages[sheet]; ok {
			if m.id != "" {
				page.ID = m.id
			}
			if title := pageTitle(m.title); title != "" {
				page.Title = title
			}
		}

		rows, err := readPage(f, sheet, headers)
		if err != nil {
			return nil, pttjs.NewConversionError(page.ID, "cells", err)
		}
		page.Rows = rows
		store.SetPage(page)
	}

	scripts := parser.ClassifyScriptLines(meta.scripts, log)
	store.Typings = scripts.Typings
	store.Expressions = scripts.Expressions
	store.Styles = scripts.Styles

	return store, nil
}

func readPage(f *excelize.File, sheet string, headers *headerDetector) ([]models.Row, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	scales, err := readMerges(f, sheet)
	if err != nil {
		return nil, err
	}
	ids := readNames(f, sheet)

	result := make([]models.Row, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		if len(row) == 0 {
			continue
		}

		cells := make(models.Row, 0, len(row))
		for colIdx, value := range row {
			key := cellKey{col: colIdx + 1, row: rowNum}
			cell := models.Cell{Index: colIdx, Value: value}

			cellName, err := excelize.CoordinatesToCellName(key.col, key.row)
			if err != nil {
				return nil, err
			}
			if cell.IsHeader, err = headers.isHeader(sheet, cellName); err != nil {
				return nil, err
			}
			if scale, ok := scales[key]; ok {
				cell.Scale = &scale
			}
			cell.ID = ids[key]

			cells = append(cells, cell)
		}
		result = append(result, cells)
	}

	return result, nil
}

// readMerges returns the span of every merged range by its top-left cell.
func readMerges(f *excelize.File, sheet string) (map[cellKey]models.Scale, error) {
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}

	scales := make(map[cellKey]models.Scale, len(merges))
	for _, mc := range merges {
		c1, r1, c2, r2, ok := parseRange(mc.GetStartAxis(), mc.GetEndAxis())
		if !ok {
			continue
		}
		scales[cellKey{col: c1, row: r1}] = models.Scale{Cols: c2 - c1 + 1, Rows: r2 - r1 + 1}
	}
	return scales, nil
}

// readNames returns the cell ids defined for a sheet.
func readNames(f *excelize.File, sheet string) map[cellKey]string {
	ids := make(map[cellKey]string)
	for _, dn := range f.GetDefinedName() {
		id, ok := cellID(dn.Name)
		if !ok || dn.Scope != sheet {
			continue
		}
		refSheet, col, row, ok := parseReference(dn.RefersTo)
		if !ok || refSheet != sheet {
			continue
		}
		ids[cellKey{col: col, row: row}] = id
	}
	return ids
}

// headerDetector caches the bold lookup per style index.
type headerDetector struct {
	f     *excelize.File
	cache map[int]bool
}

func newHeaderDetector(f *excelize.File) *headerDetector {
	return &headerDetector{f: f, cache: make(map[int]bool)}
}

func (h *headerDetector) isHeader(sheet, cellName string) (bool, error) {
	styleID, err := h.f.GetCellStyle(sheet, cellName)
	if err != nil {
		return false, err
	}
	if bold, ok := h.cache[styleID]; ok {
		return bold, nil
	}

	style, err := h.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	bold := style != nil && style.Font != nil && style.Font.Bold
	h.cache[styleID] = bold
	return bold, nil
}

// ReadFile reads an xlsx file into a store.
func ReadFile(path string, log *slog.Logger) (*models.Store, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return FromWorkbook(f, log)
}
