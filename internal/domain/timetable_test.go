package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimetable_MutationsRecordHistory(t *testing.T) {
	tt := NewTimetable(testIndex(t), nil, 0)

	changed, err := tt.ToggleSection("Algorithms", "PL1")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, tt.History().CanUndo())

	require.True(t, tt.Undo())
	assert.Empty(t, tt.State().Selected)
	assert.Empty(t, tt.State().Colors)

	require.True(t, tt.Redo())
	assert.True(t, tt.State().IsSelected("Algorithms", "PL1"))
	assert.Equal(t, DefaultPalette[0], tt.State().Colors["Algorithms"])
}

func TestTimetable_NoopDoesNotRecord(t *testing.T) {
	tt := NewTimetable(testIndex(t), nil, 0)

	assert.False(t, tt.ToggleLock("Algorithms", "PL1"))
	changed, err := tt.ToggleSection("Physics", "TP1")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.False(t, tt.History().CanUndo())
}

func TestTimetable_LockedToggleKeepsStateAndHistory(t *testing.T) {
	tt := NewTimetable(testIndex(t), nil, 0)
	_, err := tt.ToggleSection("Algorithms", "PL1")
	require.NoError(t, err)
	require.True(t, tt.ToggleLock("Algorithms", "PL1"))
	undo, _ := tt.History().Depths()

	changed, err := tt.ToggleSection("Algorithms", "PL1")

	assert.ErrorIs(t, err, ErrLockedSection)
	assert.False(t, changed)
	assert.True(t, tt.State().IsSelected("Algorithms", "PL1"))
	after, _ := tt.History().Depths()
	assert.Equal(t, undo, after)
}

func TestTimetable_NewActionDiscardsRedo(t *testing.T) {
	tt := NewTimetable(testIndex(t), nil, 0)
	tt.SelectAll()
	require.True(t, tt.Undo())
	require.True(t, tt.History().CanRedo())

	tt.ToggleByType(TypePractical)

	assert.False(t, tt.History().CanRedo())
}

func TestTimetable_AssignsDistinctColors(t *testing.T) {
	tt := NewTimetable(testIndex(t), []string{"red", "blue"}, 0)
	tt.SelectAll()

	colors := tt.State().Colors
	assert.Equal(t, "red", colors["Algorithms"])
	assert.Equal(t, "blue", colors["Calculus"])

	require.True(t, tt.SetColor("Calculus", "green"))
	assert.Equal(t, "green", tt.State().Colors["Calculus"])
}

func TestTimetable_ReplaceSanitizesAndRecords(t *testing.T) {
	tt := NewTimetable(testIndex(t), nil, 0)
	loaded := &SessionState{
		Selected: map[string][]string{"Calculus": {"TP1", "ZZ"}, "Ghost": {"A"}},
		Colors:   map[string]string{"Calculus": "#111111"},
	}

	require.True(t, tt.Replace(loaded))

	state := tt.State()
	assert.Equal(t, map[string][]string{"Calculus": {"TP1"}}, state.Selected)
	assert.Equal(t, "#111111", state.Colors["Calculus"])
	require.True(t, tt.Undo())
	assert.Empty(t, tt.State().Selected)
}

func TestTimetable_StateIsACopy(t *testing.T) {
	tt := NewTimetable(testIndex(t), nil, 0)
	tt.SelectAll()

	s := tt.State()
	s.Selected["Algorithms"] = nil

	assert.Len(t, tt.State().Selected["Algorithms"], 3)
}

func TestTimetable_ViewAndExport(t *testing.T) {
	tt := NewTimetable(testIndex(t), nil, 0)
	for _, p := range [][2]string{{"Algorithms", "PL1"}, {"Algorithms", "TP1"}, {"Calculus", "TP1"}, {"Calculus", "T1"}} {
		_, err := tt.ToggleSection(p[0], p[1])
		require.NoError(t, err)
	}

	view := tt.View(DefaultGridConfig(), true)
	assert.True(t, view.HasConflicts)
	assert.Equal(t, 2, len(view.Cell(Tuesday, "09:00-11:00").Occupants))
	assert.True(t, view.Complete)

	out, err := tt.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, "CLASS,PL,TP,T,T/TP\n101,1,1,,\n202,,1,1,\n", out)
}

func TestTimetable_DetachIsIndependent(t *testing.T) {
	tt := NewTimetable(testIndex(t), nil, 0)
	tt.SelectAll()

	detached := tt.Detach()
	tt.ClearAll()

	assert.Len(t, detached.State().Selected["Algorithms"], 3)
	assert.False(t, detached.History().CanUndo())
	assert.Empty(t, tt.State().Selected)
}

func TestTimetable_CycleColor(t *testing.T) {
	tt := NewTimetable(testIndex(t), []string{"red", "blue"}, 0)

	assert.Equal(t, "red", tt.CycleColor("Algorithms"))

	_, err := tt.ToggleSection("Algorithms", "PL1")
	require.NoError(t, err)
	assert.Equal(t, "blue", tt.CycleColor("Algorithms"))

	require.True(t, tt.SetColor("Algorithms", "blue"))
	assert.Equal(t, "red", tt.CycleColor("Algorithms"))
}
