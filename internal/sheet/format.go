package sheet

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Align is a cell's horizontal alignment. The zero value means the default (left).
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParseAlign validates an alignment name.
func ParseAlign(s string) (Align, error) {
	switch a := Align(strings.ToLower(strings.TrimSpace(s))); a {
	case AlignLeft, AlignCenter, AlignRight:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAlign, s)
}

// Attribute names a boolean formatting flag.
type Attribute string

const (
	Bold      Attribute = "bold"
	Italic    Attribute = "italic"
	Underline Attribute = "underline"
)

// CellFormat holds the formatting of one cell. Zero fields mean "not set".
type CellFormat struct {
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Color     string `json:"color,omitempty"`
	Align     Align  `json:"align,omitempty"`
}

// Toggled returns the format with attr flipped.
func (f CellFormat) Toggled(attr Attribute) (CellFormat, error) {
	switch attr {
	case Bold:
		f.Bold = !f.Bold
	case Italic:
		f.Italic = !f.Italic
	case Underline:
		f.Underline = !f.Underline
	default:
		return f, fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}
	return f, nil
}

// Has reports whether attr is set.
func (f CellFormat) Has(attr Attribute) bool {
	switch attr {
	case Bold:
		return f.Bold
	case Italic:
		return f.Italic
	case Underline:
		return f.Underline
	}
	return false
}

// EffectiveAlign returns the alignment to render with.
func (f CellFormat) EffectiveAlign() Align {
	if f.Align == "" {
		return AlignLeft
	}
	return f.Align
}

// FormatMap maps a cell key to that cell's format. Entries are created on the
// first formatting action against a cell.
type FormatMap map[string]CellFormat

// CellKey returns the format map key for a cell: "<rowID>_<field>".
func CellKey(rowID int, field string) string {
	return strconv.Itoa(rowID) + "_" + field
}

// Clone returns a copy of the map. A nil map clones to an empty one.
func (m FormatMap) Clone() FormatMap {
	if m == nil {
		return FormatMap{}
	}
	return maps.Clone(m)
}

// Equal reports whether both maps hold the same entries.
func (m FormatMap) Equal(other FormatMap) bool {
	return maps.Equal(m, other)
}
