// Package output renders a Store as PTTJS text and as structured data.
package output

import (
	"strconv"
	"strings"

	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/parser"
)

// VersionLine is the first line of every serialized document.
const VersionLine = "|PTTJS 1.0|"

// ToText serializes a store. showIndex writes the explicit [x|y] index of
// every cell; showPages writes page headers even for a single page.
func ToText(store *models.Store, showIndex, showPages bool, sched parser.Scheduler) string {
	showPage := showPages || len(store.Pages) > 1

	pages := make([]string, len(store.Pages))
	sched.Run(len(store.Pages), func(i int) {
		pages[i] = PageText(store.Pages[i], showIndex, showPage, sched)
	})

	var b strings.Builder
	b.WriteString(VersionLine)
	b.WriteByte('\n')
	b.WriteString(strings.Join(pages, "\n"))

	if store.HasScripts() {
		b.WriteString("\n\n")
		b.WriteString(parser.ScriptStart)
		b.WriteByte('\n')
		writeEntries(&b, store.Typings, models.KindTyping)
		writeEntries(&b, store.Expressions, models.KindExpression)
		writeEntries(&b, store.Styles, models.KindStyle)
		b.WriteString(parser.ScriptEnd)
		b.WriteByte('\n')
	}

	return b.String()
}

func writeEntries(b *strings.Builder, entries []models.ScriptEntry, kind models.ScriptKind) {
	for _, entry := range entries {
		b.WriteString(ScriptEntryText(entry, kind))
		b.WriteByte('\n')
	}
}

// PageText renders one page block. The rows are rendered in batches.
func PageText(page *models.Page, showIndex, showPage bool, sched parser.Scheduler) string {
	lines := make([]string, len(page.Rows))
	sched.Each(len(page.Rows), func(i int) bool {
		lines[i] = RowText(page.Rows[i], showIndex, i)
		return true
	})

	var b strings.Builder
	if showPage {
		b.WriteString("|(" + page.ID + "|" + page.Title + "){\n")
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteByte('\n')
	if showPage {
		b.WriteString("}|\n")
	}
	return b.String()
}

// RowText renders a row as a cell line. rowIndex is written as the y part
// of explicit indices.
func RowText(row models.Row, showIndex bool, rowIndex int) string {
	var b strings.Builder
	for _, cell := range row {
		b.WriteString(CellText(cell, showIndex, rowIndex))
	}
	b.WriteString("<|")
	return b.String()
}

// CellText renders the marker and the escaped value of a cell.
func CellText(cell models.Cell, showIndex bool, rowIndex int) string {
	var b strings.Builder
	b.WriteByte('|')
	if cell.IsHeader {
		b.WriteByte('H')
	}

	hasScale := cell.Scale != nil
	if showIndex || hasScale || cell.ID != "" {
		b.WriteByte('(')
		if showIndex {
			b.WriteString("[" + strconv.Itoa(cell.Index) + "|" + strconv.Itoa(rowIndex) + "]")
		}
		if hasScale {
			b.WriteString(strconv.Itoa(cell.Scale.Cols) + "|" + strconv.Itoa(cell.Scale.Rows))
		}
		if cell.ID != "" {
			if showIndex || hasScale {
				b.WriteByte('|')
			}
			b.WriteString(cell.ID)
		}
		b.WriteByte(')')
	}

	b.WriteByte('>')
	b.WriteString(parser.EscapeValue(cell.Value))
	return b.String()
}

// CellAddressText renders "[page|]x[:x]|y[:y]".
func CellAddressText(addr models.CellAddress) string {
	var b strings.Builder
	if addr.Page != "" {
		b.WriteString(addr.Page + "|")
	}
	b.WriteString(addr.X)
	if addr.XToEnd {
		b.WriteString(":" + addr.X)
	}
	b.WriteByte('|')
	b.WriteString(addr.Y)
	if addr.YToEnd {
		b.WriteString(":" + addr.Y)
	}
	return b.String()
}

// ScriptAddressText renders "[page,]start[,end]".
func ScriptAddressText(addr models.ScriptAddress) string {
	if addr.CellStart == nil {
		return addr.Page
	}

	var b strings.Builder
	if addr.Page != "" {
		b.WriteString(addr.Page + ",")
	}
	b.WriteString(CellAddressText(*addr.CellStart))
	if addr.CellEnd != nil {
		b.WriteString("," + CellAddressText(*addr.CellEnd))
	}
	return b.String()
}

// CallText renders "name(arg1,arg2,...)".
func CallText(call *models.Call) string {
	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		switch v := arg.(type) {
		case *models.Call:
			args[i] = CallText(v)
		case models.CellAddress:
			args[i] = CellAddressText(v)
		case models.Literal:
			args[i] = string(v)
		}
	}
	return call.Name + "(" + strings.Join(args, ",") + ")"
}

// ScriptEntryText renders "(address)<op>call".
func ScriptEntryText(entry models.ScriptEntry, kind models.ScriptKind) string {
	return "(" + ScriptAddressText(entry.Address) + ")" + kind.Operator() + CallText(entry.Call)
}
