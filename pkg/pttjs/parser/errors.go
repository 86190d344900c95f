package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
)

// ErrGrammar indicates malformed function call syntax.
var ErrGrammar = errors.New("malformed function call")

// ErrAddress indicates a malformed script address.
var ErrAddress = errors.New("malformed script address")

// GrammarError reports a function call that cannot be parsed.
type GrammarError struct {
	Text   string
	Reason string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("parse function call %q: %s", e.Text, e.Reason)
}

func (e *GrammarError) Unwrap() error {
	return ErrGrammar
}

// AddressError reports a script address with bad brackets or an unknown
// terminator.
type AddressError struct {
	Text   string
	Reason string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("parse script address %q: %s", e.Text, e.Reason)
}

func (e *AddressError) Unwrap() error {
	return ErrAddress
}

// ScriptError describes a script line that matched a classifier grammar
// but could not be parsed. The line is dropped.
type ScriptError struct {
	Kind   models.ScriptKind
	Line   string
	Prefix string
	Call   string
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s line %q (address %q, call %q): %v", e.Kind, e.Line, e.Prefix, e.Call, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
