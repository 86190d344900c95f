package parser

import "testing"

func TestEscapeValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a|b>c\n", "a%7Cb%3Ec%5Cn"},
		{"<{}>", "%3C%7B%7D%3E"},
		{"plain text", "plain text"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EscapeValue(tt.input); got != tt.expected {
			t.Errorf("EscapeValue(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
		if got := UnescapeValue(tt.expected); got != tt.input {
			t.Errorf("UnescapeValue(%q) = %q, expected %q", tt.expected, got, tt.input)
		}
	}
}

func TestEscapeAny(t *testing.T) {
	if got := EscapeAny(42); got != "42" {
		t.Errorf("EscapeAny(42) = %q", got)
	}
	if got := EscapeAny("x|y"); got != "x%7Cy" {
		t.Errorf("EscapeAny(\"x|y\") = %q", got)
	}
}

func TestUnescapeValueIsLossyForLiteralTokens(t *testing.T) {
	// A value that literally contains a token cannot be told apart from
	// an escaped character.
	if got := UnescapeValue(EscapeValue("100%7C")); got != "100|" {
		t.Errorf("expected literal token to decode, got %q", got)
	}
}
