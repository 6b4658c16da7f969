package history

import (
	"fmt"
	"testing"
)

func TestHistory_ZeroValueIsEmpty(t *testing.T) {
	var h History[string]
	if h.CanUndo() || h.CanRedo() {
		t.Fatalf("CanUndo=%v CanRedo=%v, want both false", h.CanUndo(), h.CanRedo())
	}
}

func TestHistory_UndoReturnsSnapshotsInReverseOrder(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for k := 0; k <= n; k++ {
			t.Run(fmt.Sprintf("n=%d k=%d", n, k), func(t *testing.T) {
				var h History[int]
				for i := 1; i <= n; i++ {
					h.Push(i)
				}
				for i := 1; i <= k; i++ {
					got, ok := h.Undo(100 + i)
					if !ok {
						t.Fatalf("undo %d returned ok=false", i)
					}
					if want := n - i + 1; got != want {
						t.Fatalf("undo %d = %d, want %d", i, got, want)
					}
				}
				if want := n-k > 0; h.CanUndo() != want {
					t.Fatalf("CanUndo = %v, want %v", h.CanUndo(), want)
				}
			})
		}
	}
}

func TestHistory_UndoOnEmptyIsNoop(t *testing.T) {
	var h History[string]
	got, ok := h.Undo("current")
	if ok || got != "" {
		t.Fatalf("Undo = (%q, %v), want (\"\", false)", got, ok)
	}
	if h.CanUndo() || h.CanRedo() {
		t.Fatalf("state changed: CanUndo=%v CanRedo=%v", h.CanUndo(), h.CanRedo())
	}
}

func TestHistory_RedoOnEmptyFutureIsNoop(t *testing.T) {
	var h History[string]
	h.Push("a")

	got, ok := h.Redo("current")
	if ok || got != "" {
		t.Fatalf("Redo = (%q, %v), want (\"\", false)", got, ok)
	}
	if !h.CanUndo() || h.CanRedo() {
		t.Fatalf("state changed: CanUndo=%v CanRedo=%v", h.CanUndo(), h.CanRedo())
	}
	if past, future := h.Len(); past != 1 || future != 0 {
		t.Fatalf("Len = (%d, %d), want (1, 0)", past, future)
	}
}

func TestHistory_PushClearsFuture(t *testing.T) {
	var h History[string]
	h.Push("a")
	h.Push("b")
	h.Undo("c")
	h.Undo("b")
	if !h.CanRedo() {
		t.Fatalf("CanRedo = false after undo, want true")
	}

	h.Push("x")
	if h.CanRedo() {
		t.Fatalf("CanRedo = true after push, want false")
	}
	if past, future := h.Len(); past != 1 || future != 0 {
		t.Fatalf("Len = (%d, %d), want (1, 0)", past, future)
	}
}

func TestHistory_RedoAfterUndoRoundTrips(t *testing.T) {
	var h History[string]
	h.Push("before")
	current := "after"

	previous, ok := h.Undo(current)
	if !ok || previous != "before" {
		t.Fatalf("Undo = (%q, %v), want (before, true)", previous, ok)
	}

	next, ok := h.Redo(previous)
	if !ok || next != current {
		t.Fatalf("Redo = (%q, %v), want (%q, true)", next, ok, current)
	}
	if !h.CanUndo() || h.CanRedo() {
		t.Fatalf("CanUndo=%v CanRedo=%v, want true/false", h.CanUndo(), h.CanRedo())
	}

	again, ok := h.Undo(next)
	if !ok || again != "before" {
		t.Fatalf("second Undo = (%q, %v), want (before, true)", again, ok)
	}
}

func TestHistory_RedoOrderAcrossMultipleUndos(t *testing.T) {
	var h History[int]
	h.Push(1)
	h.Push(2)
	h.Push(3)

	cur := 4
	for cur > 1 {
		prev, ok := h.Undo(cur)
		if !ok {
			t.Fatalf("Undo(%d) ok=false", cur)
		}
		cur = prev
	}
	for want := 2; want <= 4; want++ {
		next, ok := h.Redo(cur)
		if !ok || next != want {
			t.Fatalf("Redo(%d) = (%d, %v), want (%d, true)", cur, next, ok, want)
		}
		cur = next
	}
	if h.CanRedo() {
		t.Fatalf("CanRedo = true after replaying everything")
	}
}

func TestHistory_Reset(t *testing.T) {
	var h History[int]
	h.Push(1)
	h.Push(2)
	h.Undo(3)
	h.Reset()
	if h.CanUndo() || h.CanRedo() {
		t.Fatalf("CanUndo=%v CanRedo=%v after Reset, want false", h.CanUndo(), h.CanRedo())
	}
}
