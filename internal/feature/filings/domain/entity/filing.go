// Package entity defines the prospectus filing records.
package entity

// RawCell is one <td> of the listing table.
type RawCell struct {
	Text string
	Href string // href of the first link, verbatim
	URL  string // Href resolved against the page URL
}

// RawRow is one <tr> of the listing table.
type RawRow struct {
	Cells []RawCell
}

// Filing is one normalized prospectus row.
type Filing struct {
	Title         string
	Date          string
	PrimaryLink   string
	SecondaryLink string
	FileSizeMB    *float64 // nil when the size is unknown
}
