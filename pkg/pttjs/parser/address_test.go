package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
)

func TestParseCellAddress(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellAddress
	}{
		{"1|2", models.CellAddress{X: "1", Y: "2"}},
		{"2:2|3", models.CellAddress{X: "2", Y: "3", XToEnd: true}},
		{"0|4:4", models.CellAddress{X: "0", Y: "4", YToEnd: true}},
		{"1:|2", models.CellAddress{X: "1", Y: "2", XToEnd: true}},
		{"@p|1|2", models.CellAddress{Page: "@p", X: "1", Y: "2"}},
		{"|", models.CellAddress{}},
		{"|5", models.CellAddress{Y: "5"}},
		{"", models.CellAddress{}},
		{"A1", models.CellAddress{}},
		{"a|b|c|d", models.CellAddress{}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.expected, ParseCellAddress(tt.input)); diff != "" {
			t.Errorf("ParseCellAddress(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseScriptAddress(t *testing.T) {
	tests := []struct {
		input    string
		expected models.ScriptAddress
	}{
		{
			input: "(@Sheet1,0|0,2:2|3)=>",
			expected: models.ScriptAddress{
				Page:      "@Sheet1",
				CellStart: &models.CellAddress{X: "0", Y: "0"},
				CellEnd:   &models.CellAddress{X: "2", Y: "3", XToEnd: true},
			},
		},
		{
			input:    "(1|1)=",
			expected: models.ScriptAddress{CellStart: &models.CellAddress{X: "1", Y: "1"}},
		},
		{
			input:    "(@p|1|2)=",
			expected: models.ScriptAddress{CellStart: &models.CellAddress{Page: "@p", X: "1", Y: "2"}},
		},
		{
			input: "( 0|0 , 1|1 )<=",
			expected: models.ScriptAddress{
				CellStart: &models.CellAddress{X: "0", Y: "0"},
				CellEnd:   &models.CellAddress{X: "1", Y: "1"},
			},
		},
		{
			input:    "()=>",
			expected: models.ScriptAddress{CellStart: &models.CellAddress{}},
		},
		{
			input: "(1|1,)<=",
			expected: models.ScriptAddress{
				CellStart: &models.CellAddress{X: "1", Y: "1"},
				CellEnd:   &models.CellAddress{},
			},
		},
		{
			input:    "(@Only)=>",
			expected: models.ScriptAddress{Page: "@Only"},
		},
	}

	for _, tt := range tests {
		got, err := ParseScriptAddress(tt.input)
		if err != nil {
			t.Errorf("ParseScriptAddress(%q) returned error: %v", tt.input, err)
			continue
		}
		if diff := cmp.Diff(tt.expected, got); diff != "" {
			t.Errorf("ParseScriptAddress(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseScriptAddressRangeDetection(t *testing.T) {
	single, err := ParseScriptAddress("(0|0)=>")
	if err != nil {
		t.Fatal(err)
	}
	if single.IsRange() {
		t.Error("expected single cell address")
	}

	rng, err := ParseScriptAddress("(0|0,1|1)=>")
	if err != nil {
		t.Fatal(err)
	}
	if !rng.IsRange() {
		t.Error("expected range address")
	}
}

func TestParseScriptAddressErrors(t *testing.T) {
	for _, input := range []string{"(1|1)", "(1|1)>", "1|1=>", "(1|1=>", "=", "()"} {
		_, err := ParseScriptAddress(input)
		if !errors.Is(err, ErrAddress) {
			t.Errorf("ParseScriptAddress(%q): expected ErrAddress, got %v", input, err)
		}
	}
}
