package domain

import "slices"

// DefaultHistoryDepth is the number of snapshots kept on each stack
const DefaultHistoryDepth = 50

// History holds bounded undo and redo stacks of deep-copied states.
// When a stack is full the oldest entry is discarded.
type History struct {
	depth int
	redo  []*SessionState
	undo  []*SessionState
}

// NewHistory creates a history with the given depth (DefaultHistoryDepth
// when depth <= 0)
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Snapshot records a copy of state as the newest undo point and discards
// the redo branch
func (h *History) Snapshot(state *SessionState) {
	h.undo = h.push(h.undo, state.Clone())
	h.redo = nil
}

// Undo returns the previous state, recording current for redo. It reports
// false when there is nothing to undo.
func (h *History) Undo(current *SessionState) (*SessionState, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = h.push(h.redo, current.Clone())
	return prev.Clone(), true
}

// Redo returns the next state, recording current for undo. It reports false
// when there is nothing to redo.
func (h *History) Redo(current *SessionState) (*SessionState, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = h.push(h.undo, current.Clone())
	return next.Clone(), true
}

// CanUndo reports whether an undo point exists
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo point exists
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depths returns the current sizes of the undo and redo stacks
func (h *History) Depths() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

// Clear drops both stacks
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

func (h *History) push(stack []*SessionState, s *SessionState) []*SessionState {
	stack = append(stack, s)
	if len(stack) > h.depth {
		stack = slices.Delete(stack, 0, len(stack)-h.depth)
	}
	return stack
}
