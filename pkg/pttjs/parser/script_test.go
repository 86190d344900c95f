package parser

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
)

func TestClassifyScriptLines(t *testing.T) {
	lines := []string{
		"(0|0)=>TYPE(number)",
		"  (1|1)=SUM(0|0,0:0|1)  ",
		"(@Sheet1,0|0,2:2|3)<=STYLE(bold,color(red))",
		"BADLINE",
		"(0|0)=>broken(",
		"",
	}

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	scripts := ClassifyScriptLines(lines, log)

	wantTypings := []models.ScriptEntry{{
		Address: models.ScriptAddress{CellStart: &models.CellAddress{X: "0", Y: "0"}},
		Call:    models.NewCall("TYPE", models.Literal("number")),
	}}
	wantExpressions := []models.ScriptEntry{{
		Address: models.ScriptAddress{CellStart: &models.CellAddress{X: "1", Y: "1"}},
		Call: models.NewCall("SUM",
			models.CellAddress{X: "0", Y: "0"},
			models.CellAddress{X: "0", Y: "1", XToEnd: true}),
	}}
	wantStyles := []models.ScriptEntry{{
		Address: models.ScriptAddress{
			Page:      "@Sheet1",
			CellStart: &models.CellAddress{X: "0", Y: "0"},
			CellEnd:   &models.CellAddress{X: "2", Y: "3", XToEnd: true},
		},
		Call: models.NewCall("STYLE", models.Literal("bold"), models.NewCall("color", models.Literal("red"))),
	}}

	if diff := cmp.Diff(wantTypings, scripts.Typings); diff != "" {
		t.Errorf("typings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantExpressions, scripts.Expressions); diff != "" {
		t.Errorf("expressions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantStyles, scripts.Styles); diff != "" {
		t.Errorf("styles mismatch (-want +got):\n%s", diff)
	}

	if len(scripts.Errors) != 1 {
		t.Fatalf("expected 1 script error, got %d", len(scripts.Errors))
	}
	serr := scripts.Errors[0]
	if serr.Kind != models.KindTyping || serr.Prefix != "(0|0)=>" || serr.Call != "broken(" {
		t.Errorf("unexpected script error: %+v", serr)
	}
	if !errors.Is(serr, ErrGrammar) {
		t.Errorf("expected wrapped ErrGrammar, got %v", serr.Err)
	}

	logged := buf.String()
	if !strings.Contains(logged, "dropping script line") || !strings.Contains(logged, "broken(") {
		t.Errorf("expected warning for dropped line, got %q", logged)
	}
	if strings.Contains(logged, "BADLINE") {
		t.Errorf("unmatched lines must be dropped silently, got %q", logged)
	}
}

func TestClassifyScriptLinesPrecedence(t *testing.T) {
	// "(1|1)=>" also satisfies the expression prefix; typings win.
	scripts := ClassifyScriptLines([]string{"(1|1)=>X()"}, nil)

	if len(scripts.Typings) != 1 || len(scripts.Expressions) != 0 || len(scripts.Styles) != 0 {
		t.Errorf("expected a single typing, got %d/%d/%d",
			len(scripts.Typings), len(scripts.Expressions), len(scripts.Styles))
	}
}

func TestParseScriptLine(t *testing.T) {
	kind, entry, ok, err := ParseScriptLine("(@p|2|3)=CONCAT(0|0,1|0)")
	if !ok || err != nil {
		t.Fatalf("expected expression, got ok=%v err=%v", ok, err)
	}
	if kind != models.KindExpression {
		t.Errorf("expected expression kind, got %q", kind)
	}
	want := models.ScriptAddress{CellStart: &models.CellAddress{Page: "@p", X: "2", Y: "3"}}
	if diff := cmp.Diff(want, entry.Address); diff != "" {
		t.Errorf("address mismatch (-want +got):\n%s", diff)
	}

	if _, _, ok, _ := ParseScriptLine("BADLINE"); ok {
		t.Error("expected BADLINE to match no grammar")
	}
}
