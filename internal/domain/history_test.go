package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_UndoRedoRoundTrip(t *testing.T) {
	idx := testIndex(t)
	h := NewHistory(0)
	live := NewSessionState()
	require.NoError(t, live.ToggleSection(idx, "Calculus", "TP2"))
	pre := live.Clone()

	h.Snapshot(live)
	require.NoError(t, live.ToggleSection(idx, "Algorithms", "PL1"))
	post := live.Clone()

	restored, ok := h.Undo(live)
	require.True(t, ok)
	assert.True(t, pre.Equal(restored))

	redone, ok := h.Redo(restored)
	require.True(t, ok)
	assert.True(t, post.Equal(redone))
}

func TestHistory_EmptyStacksAreNoops(t *testing.T) {
	h := NewHistory(5)

	_, ok := h.Undo(NewSessionState())
	assert.False(t, ok)
	_, ok = h.Redo(NewSessionState())
	assert.False(t, ok)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistory_SnapshotClearsRedo(t *testing.T) {
	h := NewHistory(5)
	s := NewSessionState()

	h.Snapshot(s)
	_, ok := h.Undo(s)
	require.True(t, ok)
	require.True(t, h.CanRedo())

	h.Snapshot(s)
	assert.False(t, h.CanRedo())
}

func TestHistory_SnapshotIsIsolatedFromLiveState(t *testing.T) {
	idx := testIndex(t)
	h := NewHistory(5)
	live := NewSessionState()
	require.NoError(t, live.ToggleSection(idx, "Algorithms", "PL1"))

	h.Snapshot(live)
	live.Selected["Algorithms"][0] = "PL2"
	live.Colors["Algorithms"] = "#000"

	restored, ok := h.Undo(live)
	require.True(t, ok)
	assert.Equal(t, []string{"PL1"}, restored.Selected["Algorithms"])
	assert.Empty(t, restored.Colors)
}

func TestHistory_DropsOldestOnOverflow(t *testing.T) {
	h := NewHistory(DefaultHistoryDepth)
	for i := range DefaultHistoryDepth + 10 {
		s := NewSessionState()
		s.Colors["marker"] = fmt.Sprint(i)
		h.Snapshot(s)
	}

	undo, redo := h.Depths()
	assert.Equal(t, DefaultHistoryDepth, undo)
	assert.Zero(t, redo)

	current := NewSessionState()
	var last *SessionState
	for h.CanUndo() {
		prev, ok := h.Undo(current)
		require.True(t, ok)
		current, last = prev, prev
	}
	assert.Equal(t, "10", last.Colors["marker"])

	_, redo = h.Depths()
	assert.Equal(t, DefaultHistoryDepth, redo)
}
