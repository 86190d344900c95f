package models

// Page represents one table of a document.
type Page struct {
	// ID is the page identifier, always starting with '@'.
	ID string `json:"id" yaml:"id" cbor:"id"`
	// Title is the display name of the page.
	Title string `json:"title" yaml:"title" cbor:"title"`
	// Rows contains the rows of the page in source order.
	Rows []Row `json:"rows" yaml:"rows" cbor:"rows"`
}

// CellCount returns the total number of cells on the page.
func (p *Page) CellCount() int {
	n := 0
	for _, row := range p.Rows {
		n += len(row)
	}
	return n
}
