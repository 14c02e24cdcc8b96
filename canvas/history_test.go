package canvas

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func step(texts ...string) HistoryStep {
	var els []Element
	for _, s := range texts {
		els = append(els, NewText(s, Style{}))
	}
	return HistoryStep{Elements: els, Caret: len(els) - 1}
}

func TestHistoryUndoRedo(t *testing.T) {
	var applied []HistoryStep
	h := NewHistoryManager(0, func(s HistoryStep) { applied = append(applied, s) })

	h.Execute(step("a"))
	if h.CanUndo() {
		t.Error("CanUndo true with only the baseline recorded")
	}

	h.Execute(step("a", "b"))
	h.Execute(step("a", "b", "c"))
	if !h.CanUndo() {
		t.Fatal("CanUndo false after three steps")
	}

	if !h.Undo() {
		t.Fatal("Undo failed")
	}
	if !h.Undo() {
		t.Fatal("second Undo failed")
	}
	if h.Undo() {
		t.Error("Undo past the baseline succeeded")
	}

	if !h.Redo() {
		t.Fatal("Redo failed")
	}

	want := []HistoryStep{step("a", "b"), step("a"), step("a", "b")}
	if diff := cmp.Diff(want, applied); diff != "" {
		t.Errorf("applied steps (-want +got):\n%s", diff)
	}
}

func TestHistoryExecuteClearsRedo(t *testing.T) {
	h := NewHistoryManager(0, func(HistoryStep) {})
	h.Execute(step("a"))
	h.Execute(step("a", "b"))
	h.Undo()
	if !h.CanRedo() {
		t.Fatal("CanRedo false after Undo")
	}
	h.Execute(step("x"))
	if h.CanRedo() {
		t.Error("redo stack not cleared by Execute")
	}
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistoryManager(3, func(HistoryStep) {})
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		h.Execute(step(s))
	}
	if got := len(h.undoStack); got != 3 {
		t.Fatalf("undo stack length %d, want 3", got)
	}
	// The oldest steps fall off; the surviving bottom is "c".
	if got := h.undoStack[0].Elements[0].Text; got != "c" {
		t.Errorf("stack bottom %q, want %q", got, "c")
	}
}

func TestHistorySnapshotIsolation(t *testing.T) {
	var applied HistoryStep
	h := NewHistoryManager(0, func(s HistoryStep) { applied = s })

	live := []Element{NewText("before", Style{})}
	h.Execute(HistoryStep{Elements: cloneElements(live)})
	h.Execute(HistoryStep{Elements: []Element{NewText("after", Style{})}})

	live[0].Text = "mutated"
	h.Undo()
	if applied.Elements[0].Text != "before" {
		t.Errorf("snapshot shares state with live sequence: got %q", applied.Elements[0].Text)
	}
}
