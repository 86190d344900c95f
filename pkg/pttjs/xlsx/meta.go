// Package xlsx converts PTTJS stores to and from Excel workbooks.
//
// Pages become sheets, cell indices become columns and row ordinals become
// rows. Spans are written as merged ranges, header cells are bold and cell
// ids are sheet-scoped defined names. Page ids and the script section are
// kept in a hidden sheet so that a workbook written here reads back into
// the same document.
package xlsx

import (
	"github.com/xuri/excelize/v2"
)

// MetaSheet is the hidden sheet holding page ids and script lines.
const MetaSheet = "_PTTJS"

// Record kinds in column A of the meta sheet.
const (
	recordVersion = "pttjs"
	recordPage    = "page"
	recordScript  = "script"
)

type pageMeta struct {
	id    string
	title string
}

// workbookMeta is the content of the meta sheet.
type workbookMeta struct {
	pages   map[string]pageMeta // by sheet name
	scripts []string
}

func writeMeta(f *excelize.File, meta workbookMeta, order []string) error {
	if _, err := f.NewSheet(MetaSheet); err != nil {
		return err
	}

	rows := [][]string{{recordVersion, "1.0"}}
	for _, sheet := range order {
		p := meta.pages[sheet]
		rows = append(rows, []string{recordPage, sheet, p.id, p.title})
	}
	for _, line := range meta.scripts {
		rows = append(rows, []string{recordScript, line})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(MetaSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetSheetVisible(MetaSheet, false)
}

// readMeta loads the meta sheet. A workbook without one yields empty meta.
func readMeta(f *excelize.File) (workbookMeta, error) {
	meta := workbookMeta{pages: make(map[string]pageMeta)}

	idx, err := f.GetSheetIndex(MetaSheet)
	if err != nil || idx < 0 {
		return meta, err
	}

	rows, err := f.GetRows(MetaSheet)
	if err != nil {
		return meta, err
	}

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		switch row[0] {
		case recordPage:
			p := pageMeta{}
			if len(row) > 2 {
				p.id = row[2]
			}
			if len(row) > 3 {
				p.title = row[3]
			}
			meta.pages[row[1]] = p
		case recordScript:
			meta.scripts = append(meta.scripts, row[1])
		}
	}
	return meta, nil
}
