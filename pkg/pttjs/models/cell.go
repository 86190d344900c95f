// Package models defines the in-memory document model for PTTJS tables.
package models

// Scale is the span of a cell in columns and rows.
type Scale struct {
	// Cols is the number of columns the cell covers.
	Cols int `json:"cols" yaml:"cols" cbor:"cols"`
	// Rows is the number of rows the cell covers.
	Rows int `json:"rows" yaml:"rows" cbor:"rows"`
}

// Cell represents a single table cell with its structural metadata.
type Cell struct {
	// IsHeader marks the cell as a header cell. False and absent are the
	// same; false is omitted from the output.
	IsHeader bool `json:"is_header,omitempty" yaml:"is_header,omitempty" cbor:"is_header,omitempty"`
	// Index is the column position of the cell. When the source does not
	// carry an explicit index it is the ordinal of the cell on its line.
	Index int `json:"index" yaml:"index" cbor:"index"`
	// Scale is the column/row span (nil if not specified).
	Scale *Scale `json:"scale,omitempty" yaml:"scale,omitempty" cbor:"scale,omitempty"`
	// ID is the stable identifier of the cell, always starting with '@' (empty if not specified).
	ID string `json:"id,omitempty" yaml:"id,omitempty" cbor:"id,omitempty"`
	// Value is the unescaped text content.
	Value string `json:"value" yaml:"value" cbor:"value"`
}

// Row is an ordered sequence of cells.
type Row []Cell
