package ui

import (
	"github.com/five82/salesgrid/internal/export"
	"github.com/five82/salesgrid/internal/sheet"
)

// Column describes one grid column.
type Column struct {
	Field    string
	Title    string
	Width    int
	Numeric  bool
	Editable bool
}

// Columns is the fixed grid layout.
var Columns = []Column{
	{Field: sheet.FieldRowNumber, Title: "#", Width: 6},
	{Field: sheet.FieldProduct, Title: "product", Width: 24, Editable: true},
	{Field: "2020", Title: "2020", Width: 14, Numeric: true, Editable: true},
	{Field: "2021", Title: "2021", Width: 14, Numeric: true, Editable: true},
	{Field: "2022", Title: "2022", Width: 14, Numeric: true, Editable: true},
	{Field: "2023", Title: "2023", Width: 14, Numeric: true, Editable: true},
}

// PaletteColor is a named cell colour.
type PaletteColor struct {
	Name  string
	Value string
}

// Palette lists the colours the colour key cycles through.
var Palette = []PaletteColor{
	{Name: "Black", Value: "#000000"},
	{Name: "Red", Value: "#FF0000"},
	{Name: "Green", Value: "#008000"},
	{Name: "Blue", Value: "#0000FF"},
	{Name: "Orange", Value: "#FFA500"},
}

// ExportColumns returns Columns in the shape the xlsx writer takes.
func ExportColumns() []export.Column {
	out := make([]export.Column, 0, len(Columns))
	for _, col := range Columns {
		out = append(out, export.Column{Field: col.Field, Title: col.Title})
	}
	return out
}

// nextColor returns the palette entry after current. Unknown or empty
// colours start at fallback when it is in the palette, else at the first entry.
func nextColor(current, fallback string) PaletteColor {
	if current == "" {
		if i := paletteIndex(fallback); i >= 0 {
			return Palette[i]
		}
		return Palette[0]
	}
	i := paletteIndex(current)
	if i < 0 {
		return Palette[0]
	}
	return Palette[(i+1)%len(Palette)]
}

func paletteIndex(value string) int {
	for i, c := range Palette {
		if c.Value == value {
			return i
		}
	}
	return -1
}

// colorName returns the palette name for value, or value itself.
func colorName(value string) string {
	if i := paletteIndex(value); i >= 0 {
		return Palette[i].Name
	}
	return value
}
