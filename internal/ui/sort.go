package ui

import (
	"cmp"
	"slices"
	"strings"

	"github.com/five82/salesgrid/internal/sheet"
)

type sortDir int

const (
	sortNone sortDir = iota
	sortAsc
	sortDesc
)

// sortState orders the grid for display only; the sheet keeps its own order.
type sortState struct {
	col int
	dir sortDir
}

// next advances asc, desc, off for col. Picking another column starts at asc.
func (s sortState) next(col int) sortState {
	if col != s.col || s.dir == sortNone {
		return sortState{col: col, dir: sortAsc}
	}
	if s.dir == sortAsc {
		return sortState{col: col, dir: sortDesc}
	}
	return sortState{col: col}
}

func (s sortState) arrow() string {
	if s.dir == sortDesc {
		return "↓"
	}
	return "↑"
}

func (s sortState) label() string {
	if s.dir == sortNone || s.col < 0 || s.col >= len(Columns) {
		return ""
	}
	return Columns[s.col].Title + " " + s.arrow()
}

// apply returns rows in display order. Cells without a value sort last in
// both directions.
func (s sortState) apply(rows []sheet.Row) []sheet.Row {
	if s.dir == sortNone || s.col < 0 || s.col >= len(Columns) {
		return rows
	}
	field := Columns[s.col].Field
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b sheet.Row) int {
		c, ok := compareField(a, b, field)
		if !ok {
			return c
		}
		if s.dir == sortDesc {
			return -c
		}
		return c
	})
	return out
}

// compareField compares one field of two rows. ok is false when the result
// only reflects missing values and must not be reversed.
func compareField(a, b sheet.Row, field string) (int, bool) {
	switch field {
	case sheet.FieldRowNumber:
		return cmp.Compare(a.RowNumber, b.RowNumber), true
	case sheet.FieldProduct:
		return cmp.Compare(strings.ToLower(a.Product), strings.ToLower(b.Product)), true
	}
	da, okA := a.Number(field)
	db, okB := b.Number(field)
	switch {
	case okA && okB:
		return da.Cmp(db), true
	case okA:
		return -1, false
	case okB:
		return 1, false
	}
	return cmp.Compare(a.Text(field), b.Text(field)), true
}
