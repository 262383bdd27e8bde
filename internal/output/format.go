package output

import (
	"fmt"

	"artspace/internal/catalog"
)

// PanelKind selects what the panel under the artwork shows.
type PanelKind string

const (
	PanelInfo        PanelKind = "info"
	PanelDescription PanelKind = "description"
)

// UI/view-model types (no printing here)
type Panel struct {
	Kind        PanelKind `json:"kind"`
	Title       string    `json:"title,omitempty"`
	Author      string    `json:"author,omitempty"`
	Year        string    `json:"year,omitempty"`
	Description string    `json:"description,omitempty"`
}

// BuildPanel picks the info or the description fields of a.
func BuildPanel(a catalog.Assets, infoVisible bool) Panel {
	if !infoVisible {
		return Panel{Kind: PanelDescription, Description: a.Description}
	}
	return Panel{
		Kind:   PanelInfo,
		Title:  a.Title,
		Author: a.Author,
		Year:   a.Year,
	}
}

// Byline is the author followed by the year in parentheses.
func (p Panel) Byline() string {
	return p.Author + "  " + ParenYear(p.Year)
}

// ParenYear formats a year the way the info panel shows it.
func ParenYear(year string) string {
	return "(" + year + ")"
}

type Row struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
}

type Listing struct {
	Name string `json:"name"`
	Rows []Row  `json:"artworks"`
}

// BuildListing converts the catalog into rows in index order.
func BuildListing(c *catalog.Catalog) Listing {
	all := c.All()
	rows := make([]Row, 0, len(all))
	for _, a := range all {
		rows = append(rows, Row{
			Index:  a.Index,
			Title:  a.Title,
			Author: a.Author,
			Year:   a.Year,
		})
	}
	return Listing{Name: c.Name(), Rows: rows}
}

// RowByIndex returns the row for index, or nil.
func (l Listing) RowByIndex(index int) *Row {
	for i := range l.Rows {
		if l.Rows[i].Index == index {
			return &l.Rows[i]
		}
	}
	return nil
}

// Position renders a 1-based "n / N" counter.
func Position(index, size int) string {
	return fmt.Sprintf("%d / %d", index+1, size)
}
