package canvas

// DefaultHistoryLimit bounds the undo stack. Each step deep-copies the
// whole element sequence, so an unbounded stack would grow without limit
// over a long editing session; the oldest steps are discarded beyond the
// limit.
const DefaultHistoryLimit = 500

// HistoryStep is a tagged restore command: the element sequence and
// selection at a point in time, plus the caret index to restore. The
// snapshot never aliases the live sequence.
type HistoryStep struct {
	Elements []Element
	Range    Range
	Caret    int
}

// HistoryManager keeps undo and redo stacks of restore steps and hands
// them to an interpreter supplied by the owner. The interpreter re-renders
// with history capture suppressed, so applying a step records nothing.
//
// The bottom of the undo stack is the baseline state seeded by the first
// render; Undo never pops past it. Executing a new step clears the redo
// stack.
type HistoryManager struct {
	undoStack []HistoryStep
	redoStack []HistoryStep
	limit     int
	apply     func(HistoryStep)
}

// NewHistoryManager returns a manager with the given step limit (0 means
// DefaultHistoryLimit) and restore interpreter.
func NewHistoryManager(limit int, apply func(HistoryStep)) *HistoryManager {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryManager{limit: limit, apply: apply}
}

// Execute appends a reversible step and clears the redo stack.
func (h *HistoryManager) Execute(step HistoryStep) {
	h.redoStack = h.redoStack[:0]
	h.undoStack = append(h.undoStack, step)
	if len(h.undoStack) > h.limit {
		n := len(h.undoStack) - h.limit
		h.undoStack = append(h.undoStack[:0], h.undoStack[n:]...)
	}
}

// CanUndo reports whether a state before the current one is available.
func (h *HistoryManager) CanUndo() bool { return len(h.undoStack) > 1 }

// CanRedo reports whether an undone state is available.
func (h *HistoryManager) CanRedo() bool { return len(h.redoStack) > 0 }

// Undo moves the current state onto the redo stack and applies the
// previous one. Returns false when only the baseline state remains.
func (h *HistoryManager) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	top := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, top)
	h.apply(h.undoStack[len(h.undoStack)-1])
	return true
}

// Redo re-applies the most recently undone step.
func (h *HistoryManager) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	step := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, step)
	h.apply(step)
	return true
}
