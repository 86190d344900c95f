package pttjs

import (
	"strings"

	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/output"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/parser"
)

// Parse reads a PTTJS document in cooperative mode. Malformed structure
// never fails: unrecognized lines are skipped and bad script lines are
// logged and dropped.
func Parse(text string) *models.Store {
	store, _ := ParseWithOptions(text, DefaultOptions())
	return store
}

// ParseSync reads a PTTJS document in direct mode. The result is identical
// to Parse.
func ParseSync(text string) *models.Store {
	store, _ := ParseWithOptions(text, Options{Mode: ModeDirect})
	return store
}

// ParseWithOptions reads a PTTJS document and also returns the script
// lines that were dropped.
func ParseWithOptions(text string, opts Options) (*models.Store, []*ScriptError) {
	sched := opts.Scheduler()
	store := models.NewStore()

	lines := strings.Split(text, "\n")
	if strings.HasPrefix(lines[0], parser.VersionPrefix) {
		lines = lines[1:]
	}

	// The script section and everything after it is not page content.
	var dropped []*ScriptError
	if start, scriptLines, ok := parser.FindScriptLines(lines); ok {
		scripts := parser.ClassifyScriptLines(scriptLines, opts.logger())
		store.Typings = scripts.Typings
		store.Expressions = scripts.Expressions
		store.Styles = scripts.Styles
		dropped = scripts.Errors
		lines = lines[:start]
	}

	return assemblePages(store, lines, sched), dropped
}

type pageBody struct {
	header  string
	content []string
}

func assemblePages(store *models.Store, lines []string, sched parser.Scheduler) *models.Store {
	starts := parser.FindPageStarts(lines, sched)

	if len(starts) == 0 {
		store.SetPage(&models.Page{
			ID:    parser.DefaultPageID(1),
			Title: parser.DefaultPageTitle(1),
			Rows:  parseBody(lines, sched),
		})
		return store
	}

	bodies := splitPages(lines, starts, sched)

	pages := make([]*models.Page, len(bodies))
	sched.Run(len(bodies), func(i int) {
		page := &models.Page{
			ID:    parser.DefaultPageID(i + 1),
			Title: parser.DefaultPageTitle(i + 1),
		}
		id, name := parser.PageMeta(bodies[i].header)
		if id != "" {
			page.ID = id
		}
		if name != "" {
			page.Title = name
		}
		page.Rows = parseBody(bodies[i].content, sched)
		pages[i] = page
	})

	for _, page := range pages {
		store.SetPage(page)
	}
	return store
}

// splitPages cuts the lines into page bodies. A body runs from its header
// to the next header and stops at its first closing line.
func splitPages(lines []string, starts []int, sched parser.Scheduler) []pageBody {
	bodies := make([]pageBody, len(starts))
	sched.Run(len(starts), func(i int) {
		next := len(lines)
		if i+1 < len(starts) {
			next = starts[i+1]
		}
		content := lines[starts[i]+1 : next]
		if ends := parser.FindPageEnds(content, sched); len(ends) > 0 {
			content = content[:ends[0]]
		}
		bodies[i] = pageBody{header: lines[starts[i]], content: content}
	})
	return bodies
}

func parseBody(lines []string, sched parser.Scheduler) []models.Row {
	indices := parser.FindCellLines(lines, sched)
	cellLines := make([]string, len(indices))
	for i, idx := range indices {
		cellLines[i] = lines[idx]
	}
	return parser.ParseRows(cellLines, sched)
}

// Serialize writes a store as PTTJS text in cooperative mode.
func Serialize(store *models.Store, showIndex, showPages bool) string {
	return SerializeWithOptions(store, Options{Mode: ModeCooperative, ShowIndex: &showIndex, ShowPages: &showPages})
}

// SerializeSync writes a store as PTTJS text in direct mode. The output is
// byte-identical to Serialize.
func SerializeSync(store *models.Store, showIndex, showPages bool) string {
	return SerializeWithOptions(store, Options{Mode: ModeDirect, ShowIndex: &showIndex, ShowPages: &showPages})
}

// SerializeWithOptions writes a store as PTTJS text.
func SerializeWithOptions(store *models.Store, opts Options) string {
	return output.ToText(store, opts.ShouldShowIndex(), opts.ShouldShowPages(), opts.Scheduler())
}
