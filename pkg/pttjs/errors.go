package pttjs

import (
	"errors"
	"fmt"

	"github.com/ukaji3/pttjs-go/pkg/pttjs/parser"
)

// ErrUnsupportedFormat indicates an input or output format that cannot be handled.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ScriptError describes a dropped script line.
type ScriptError = parser.ScriptError

// ConversionError represents an error while converting a page to or from
// another table format.
type ConversionError struct {
	Page      string
	Component string // "cells", "merges", "styles", "names", "scripts"
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error in page %q (%s): %v", e.Page, e.Component, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(page, component string, err error) *ConversionError {
	return &ConversionError{
		Page:      page,
		Component: component,
		Err:       err,
	}
}
