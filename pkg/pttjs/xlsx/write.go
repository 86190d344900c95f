package xlsx

import (
	"github.com/ukaji3/pttjs-go/pkg/pttjs"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/output"
	"github.com/xuri/excelize/v2"
)

// ToWorkbook writes a store into a new workbook. The caller owns the
// returned file and must close it.
func ToWorkbook(store *models.Store) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	defaultSheet := f.GetSheetName(0)
	used := make(map[string]bool)
	meta := workbookMeta{pages: make(map[string]pageMeta)}
	order := make([]string, 0, len(store.Pages))

	for i, page := range store.Pages {
		name := sheetName(page.Title, page.ID, used)
		if i == 0 {
			err = f.SetSheetName(defaultSheet, name)
		} else {
			_, err = f.NewSheet(name)
		}
		if err != nil {
			f.Close()
			return nil, pttjs.NewConversionError(page.ID, "sheets", err)
		}

		if err := writePage(f, name, page, headerStyle); err != nil {
			f.Close()
			return nil, err
		}

		meta.pages[name] = pageMeta{id: page.ID, title: page.Title}
		order = append(order, name)
	}

	for _, entry := range store.Typings {
		meta.scripts = append(meta.scripts, output.ScriptEntryText(entry, models.KindTyping))
	}
	for _, entry := range store.Expressions {
		meta.scripts = append(meta.scripts, output.ScriptEntryText(entry, models.KindExpression))
	}
	for _, entry := range store.Styles {
		meta.scripts = append(meta.scripts, output.ScriptEntryText(entry, models.KindStyle))
	}

	if err := writeMeta(f, meta, order); err != nil {
		f.Close()
		return nil, pttjs.NewConversionError("", "scripts", err)
	}
	f.SetActiveSheet(0)

	return f, nil
}

func writePage(f *excelize.File, sheet string, page *models.Page, headerStyle int) error {
	names := make(map[string]bool)

	for rowIdx, row := range page.Rows {
		rowNum := rowIdx + 1 // 1-based row index

		for _, cell := range row {
			col := cell.Index + 1 // 1-based column index
			cellName, err := excelize.CoordinatesToCellName(col, rowNum)
			if err != nil {
				return pttjs.NewConversionError(page.ID, "cells", err)
			}

			if err := f.SetCellStr(sheet, cellName, cell.Value); err != nil {
				return pttjs.NewConversionError(page.ID, "cells", err)
			}

			if cell.IsHeader {
				if err := f.SetCellStyle(sheet, cellName, cellName, headerStyle); err != nil {
					return pttjs.NewConversionError(page.ID, "styles", err)
				}
			}

			if s := cell.Scale; s != nil && (s.Cols > 1 || s.Rows > 1) {
				endName, err := excelize.CoordinatesToCellName(col+max(s.Cols, 1)-1, rowNum+max(s.Rows, 1)-1)
				if err != nil {
					return pttjs.NewConversionError(page.ID, "merges", err)
				}
				if err := f.MergeCell(sheet, cellName, endName); err != nil {
					return pttjs.NewConversionError(page.ID, "merges", err)
				}
			}

			if cell.ID != "" && !names[cell.ID] {
				names[cell.ID] = true
				ref, err := cellReference(sheet, col, rowNum)
				if err != nil {
					return pttjs.NewConversionError(page.ID, "names", err)
				}
				if err := f.SetDefinedName(&excelize.DefinedName{
					Name:     definedName(cell.ID),
					RefersTo: ref,
					Scope:    sheet,
				}); err != nil {
					return pttjs.NewConversionError(page.ID, "names", err)
				}
			}
		}
	}

	return nil
}

// WriteFile writes a store as an xlsx file.
func WriteFile(store *models.Store, path string) error {
	f, err := ToWorkbook(store)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}
