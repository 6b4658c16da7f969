package sheet

import (
	"fmt"
	"slices"
)

// Snapshot is the full editable state at one point in time. It is the
// persisted layout and the unit of undo/redo history.
type Snapshot struct {
	Rows        []Row     `json:"rows"`
	CellFormats FormatMap `json:"cellFormats"`
}

// Clone returns a deep copy that shares nothing with s.
func (s Snapshot) Clone() Snapshot {
	rows := make([]Row, len(s.Rows))
	for i, r := range s.Rows {
		rows[i] = r.Clone()
	}
	return Snapshot{Rows: rows, CellFormats: s.CellFormats.Clone()}
}

// Equal reports whether both snapshots hold the same rows, in order, and formats.
func (s Snapshot) Equal(other Snapshot) bool {
	return rowsEqual(s.Rows, other.Rows) && s.CellFormats.Equal(other.CellFormats)
}

// Validate checks the invariants a stored snapshot must satisfy.
func (s Snapshot) Validate() error {
	seen := make(map[int]struct{}, len(s.Rows))
	for i, r := range s.Rows {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: row %d reuses id %d", ErrDuplicateID, i, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

func rowsEqual(a, b []Row) bool {
	return slices.EqualFunc(a, b, Row.Equal)
}
