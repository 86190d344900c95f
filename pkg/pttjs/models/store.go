package models

// Store is the document root produced by parsing and consumed by serialization.
// Pages are kept in insertion order; page IDs are unique.
type Store struct {
	// Pages contains the document pages in order.
	Pages []*Page `json:"pages" yaml:"pages" cbor:"pages"`
	// Typings contains entries terminated by "=>".
	Typings []ScriptEntry `json:"typings" yaml:"typings" cbor:"typings"`
	// Expressions contains entries terminated by "=".
	Expressions []ScriptEntry `json:"expressions" yaml:"expressions" cbor:"expressions"`
	// Styles contains entries terminated by "<=".
	Styles []ScriptEntry `json:"styles" yaml:"styles" cbor:"styles"`
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		Typings:     []ScriptEntry{},
		Expressions: []ScriptEntry{},
		Styles:      []ScriptEntry{},
	}
}

// Page returns the page with the given id, or nil.
func (s *Store) Page(id string) *Page {
	for _, p := range s.Pages {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// SetPage adds a page to the store. A page with the same id is replaced
// in place, keeping its original position.
func (s *Store) SetPage(page *Page) {
	for i, p := range s.Pages {
		if p.ID == page.ID {
			s.Pages[i] = page
			return
		}
	}
	s.Pages = append(s.Pages, page)
}

// HasScripts reports whether any script collection is non-empty.
func (s *Store) HasScripts() bool {
	return len(s.Typings) > 0 || len(s.Expressions) > 0 || len(s.Styles) > 0
}
