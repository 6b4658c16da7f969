// Package history provides a linear undo/redo stack over whole-state snapshots.
//
// # Model
//
// A History holds two stacks:
//
//	past:   s1 s2 s3      (Undo pops from the right)
//	future: f1 f2         (Redo pops from the left)
//
// Transitions:
//
//   - Push(s):     past+1, future cleared
//   - Undo(cur):   past-1, future+1 (cur becomes the first redo entry)
//   - Redo(cur):   past+1 (cur appended), future-1
//
// History never inspects or diffs its values. It is generic so the spreadsheet
// data model stays out of it, and it is not safe for concurrent use; the
// editor drives it from the single UI update loop.
package history
