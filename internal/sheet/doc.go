// Package sheet is the spreadsheet state core: the row and cell-format data
// model plus the Sheet that owns the live state.
//
// # Loading
//
// Sheet.Load runs once per session:
//
//  1. Read the snapshot stored under the sheet's key.
//  2. If it has rows, adopt them (a missing cellFormats becomes an empty map).
//  3. If the stored value cannot be read or is malformed, report
//     MsgLoadFailed and continue with step 4.
//  4. Otherwise fetch the remote dataset. Item i becomes a row with id i and
//     rowNumber i+1. A failed fetch reports MsgFetchFailed and leaves no rows.
//  5. Loading() turns false.
//
// # Write-through
//
// Every change to rows or formats is announced to subscribers with a copy of
// the new state. New installs the first subscriber, which saves the snapshot
// whenever there is at least one row. A failed save reports MsgSaveFailed and
// leaves the in-memory state alone. Operations that leave the state
// structurally unchanged announce nothing, so they write nothing.
//
// # Mutations
//
// ToggleFormat, SetColor, and SetAlign edit one entry of the format map keyed
// by CellKey. UpdateRow swaps one row in place. None of them touch undo
// history; callers push a snapshot first (see package editor).
package sheet
