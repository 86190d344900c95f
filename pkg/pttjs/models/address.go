package models

// CellAddress addresses a cell or one corner of a range.
// Empty coordinates are unset and match the whole axis.
type CellAddress struct {
	// Page is the page id, only set for the "page|x|y" form.
	Page string `json:"page,omitempty" yaml:"page,omitempty" cbor:"page,omitempty"`
	// X is the column coordinate.
	X string `json:"x,omitempty" yaml:"x,omitempty" cbor:"x,omitempty"`
	// Y is the row coordinate.
	Y string `json:"y,omitempty" yaml:"y,omitempty" cbor:"y,omitempty"`
	// XToEnd extends the column axis from X to the end of the table.
	// False and absent are the same; false is omitted from the output.
	XToEnd bool `json:"x_to_end,omitempty" yaml:"x_to_end,omitempty" cbor:"x_to_end,omitempty"`
	// YToEnd extends the row axis from Y to the end of the table.
	// False and absent are the same; false is omitted from the output.
	YToEnd bool `json:"y_to_end,omitempty" yaml:"y_to_end,omitempty" cbor:"y_to_end,omitempty"`
}

// IsUnset reports whether no field of the address is set.
func (a CellAddress) IsUnset() bool {
	return a == CellAddress{}
}

// ScriptAddress is the target of a script entry: a whole page, a single
// cell, or a rectangular range.
type ScriptAddress struct {
	// Page is the page qualifier.
	Page string `json:"page,omitempty" yaml:"page,omitempty" cbor:"page,omitempty"`
	// CellStart is the addressed cell or the first corner of a range (nil for a whole page).
	CellStart *CellAddress `json:"cell_start,omitempty" yaml:"cell_start,omitempty" cbor:"cell_start,omitempty"`
	// CellEnd is the second corner of a range (nil for a single cell).
	CellEnd *CellAddress `json:"cell_end,omitempty" yaml:"cell_end,omitempty" cbor:"cell_end,omitempty"`
}

// IsRange reports whether the address spans a rectangular range.
func (a ScriptAddress) IsRange() bool {
	return a.CellEnd != nil
}
