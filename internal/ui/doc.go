// Package ui provides the terminal spreadsheet for salesgrid.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds presentation state only
// (cursor, paging, sort order, theme, the visible notice); the rows and
// cell formats live in sheet.Sheet and every change goes through
// editor.Editor so it can be undone.
//
// # Package Structure
//
//   - app.go: Model, Update loop, messages and the Run entry point
//   - table.go: grid rendering, per-cell format styles, column totals
//   - header.go: title bar with load state and undo/redo availability
//   - status.go: snackbar notices and the command bar
//   - columns.go: static column layout and colour palette
//   - edit.go: cell edit prompt (a Modal)
//   - sort.go: view-only ordering of rows
//   - keys.go, help.go: key bindings and the help overlay
//
// # Event Flow
//
//  1. Init starts the spinner and runs Sheet.Load in a command
//  2. Notices from the sheet arrive on a channel and become noticeMsg
//  3. Keys call Editor operations; the model re-reads the sheet snapshot
//  4. A notice hides itself after NoticeTimeout
//
// # Key Bindings
//
//   - hjkl / arrows: Move the cell cursor
//   - pgup/pgdown: Previous/next page; z cycles the page size
//   - b / i / u: Toggle bold, italic, underline
//   - c: Apply the next palette colour; C clears it
//   - [ / = / ]: Align left, center, right
//   - ctrl+z or U: Undo; ctrl+y or R: Redo
//   - enter: Edit the selected cell
//   - s: Sort by the selected column (asc, desc, off)
//   - x: Export to xlsx
//   - T: Cycle theme; ?: Help
//   - q or ctrl+c: Quit
//
// Editing keys are ignored while the sheet is still loading.
package ui
