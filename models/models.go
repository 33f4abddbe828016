package models

// Source is a named syndication feed offered in the menu
type Source struct {
	Name string
	URL  string
}

// Record is the simplified news entry printed to the terminal.
// All fields are always set, missing source fields carry fallback text.
type Record struct {
	Title       string
	Description string
	Link        string
}
