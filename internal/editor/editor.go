// Package editor turns user gestures into undoable sheet changes. Every
// change first pushes the current snapshot onto the history, then calls the
// matching sheet primitive; undo and redo put a whole snapshot back.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/salesgrid/internal/history"
	"github.com/five82/salesgrid/internal/sheet"
)

var (
	// ErrUnknownRow is returned when an edit names a row id the sheet does not hold.
	ErrUnknownRow = errors.New("unknown row")

	// ErrNotNumber is returned when a year cell edit is not numeric.
	ErrNotNumber = errors.New("value is not a number")
)

// Editor wires a Sheet to its undo history.
type Editor struct {
	sheet   *sheet.Sheet
	history history.History[sheet.Snapshot]
}

// New returns an Editor over s with empty history.
func New(s *sheet.Sheet) *Editor {
	return &Editor{sheet: s}
}

// Sheet returns the underlying sheet.
func (e *Editor) Sheet() *sheet.Sheet {
	return e.sheet
}

func (e *Editor) checkpoint() {
	e.history.Push(e.sheet.Snapshot())
}

// ToggleFormat flips bold, italic, or underline on one cell.
func (e *Editor) ToggleFormat(rowID int, field string, attr sheet.Attribute) error {
	if _, err := (sheet.CellFormat{}).Toggled(attr); err != nil {
		return err
	}
	e.checkpoint()
	return e.sheet.ToggleFormat(rowID, field, attr)
}

// SetColor sets one cell's colour.
func (e *Editor) SetColor(rowID int, field, color string) {
	e.checkpoint()
	e.sheet.SetColor(rowID, field, color)
}

// SetAlign sets one cell's alignment.
func (e *Editor) SetAlign(rowID int, field string, align sheet.Align) error {
	if _, err := sheet.ParseAlign(string(align)); err != nil {
		return err
	}
	e.checkpoint()
	return e.sheet.SetAlign(rowID, field, align)
}

// EditCell replaces one cell's value with text. The product column takes any
// text; year columns take numbers only. Rejected edits leave no history entry.
func (e *Editor) EditCell(rowID int, field, text string) error {
	prior, ok := e.sheet.Row(rowID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownRow, rowID)
	}

	var value any = text
	if field != sheet.FieldProduct {
		value = sheet.ParseValue(text)
		if _, isText := value.(string); isText {
			return fmt.Errorf("%w: %q", ErrNotNumber, strings.TrimSpace(text))
		}
	}
	updated, err := prior.With(field, value)
	if err != nil {
		return err
	}
	if updated.Equal(prior) {
		return nil
	}
	e.checkpoint()
	e.sheet.UpdateRow(updated, prior)
	return nil
}

// Undo restores the previous snapshot. It reports false when there is
// nothing to undo.
func (e *Editor) Undo() (bool, error) {
	previous, ok := e.history.Undo(e.sheet.Snapshot())
	if !ok {
		return false, nil
	}
	if err := e.sheet.Restore(previous); err != nil {
		return false, err
	}
	return true, nil
}

// Redo restores the next snapshot. It reports false when there is nothing
// to redo.
func (e *Editor) Redo() (bool, error) {
	next, ok := e.history.Redo(e.sheet.Snapshot())
	if !ok {
		return false, nil
	}
	if err := e.sheet.Restore(next); err != nil {
		return false, err
	}
	return true, nil
}

// CanUndo reports whether Undo would change anything.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would change anything.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }
