package history

// History is a linear undo/redo history over immutable snapshots of type T.
// Callers own the snapshots and must not mutate a value after handing it to
// Push, Undo, or Redo.
//
// The zero value is an empty history ready to use.
type History[T any] struct {
	past   []T // most recent last
	future []T // next redo first
}

// Push records snapshot as the newest undo entry and discards any redo branch.
func (h *History[T]) Push(snapshot T) {
	h.past = append(h.past, snapshot)
	h.future = nil
}

// Undo pops the newest undo entry and returns it. current is stored at the
// front of the redo stack so a following Redo can return to it. The boolean
// is false, and nothing changes, when there is nothing to undo.
func (h *History[T]) Undo(current T) (T, bool) {
	if len(h.past) == 0 {
		var zero T
		return zero, false
	}
	last := len(h.past) - 1
	previous := h.past[last]

	var zero T
	h.past[last] = zero
	h.past = h.past[:last]
	h.future = append([]T{current}, h.future...)
	return previous, true
}

// Redo pops the next redo entry and returns it, appending current to the undo
// stack. The boolean is false, and nothing changes, when there is nothing to
// redo.
func (h *History[T]) Redo(current T) (T, bool) {
	if len(h.future) == 0 {
		var zero T
		return zero, false
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, current)
	return next, true
}

// CanUndo reports whether Undo would return a snapshot.
func (h *History[T]) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether Redo would return a snapshot.
func (h *History[T]) CanRedo() bool {
	return len(h.future) > 0
}

// Len returns the sizes of the undo and redo stacks.
func (h *History[T]) Len() (past, future int) {
	return len(h.past), len(h.future)
}

// Reset drops all history.
func (h *History[T]) Reset() {
	h.past = nil
	h.future = nil
}
