package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildView_ConflictAcrossDisciplines(t *testing.T) {
	idx := testIndex(t)
	s := NewSessionState()
	require.NoError(t, s.ToggleSection(idx, "Algorithms", "PL1"))
	require.NoError(t, s.ToggleSection(idx, "Algorithms", "TP1"))
	require.NoError(t, s.ToggleSection(idx, "Calculus", "TP1"))

	view := BuildView(idx, s, DefaultGridConfig(), false)

	assert.True(t, view.HasConflicts)
	cell := view.Cell(Tuesday, "09:00-11:00")
	assert.True(t, cell.Conflict())
	require.Len(t, cell.Occupants, 2)
	assert.Equal(t, "Algorithms", cell.Occupants[0].Discipline)
	assert.Equal(t, "Calculus", cell.Occupants[1].Discipline)
	assert.False(t, view.Cell(Monday, "09:00-11:00").Conflict())
	assert.Equal(t, 1, view.ConflictCount())
	assert.Equal(t, "conflicts", view.Status())
}

func TestBuildView_SameDisciplineStillConflicts(t *testing.T) {
	idx := testIndex(t)
	s := NewSessionState()
	require.NoError(t, s.ToggleSection(idx, "Algorithms", "PL1"))
	require.NoError(t, s.ToggleSection(idx, "Algorithms", "PL2"))

	view := BuildView(idx, s, DefaultGridConfig(), false)

	assert.True(t, view.HasConflicts)
	assert.Len(t, view.Cell(Monday, "09:00-11:00").Occupants, 2)
}

func TestBuildView_NoConflicts(t *testing.T) {
	idx := testIndex(t)
	s := NewSessionState()
	require.NoError(t, s.ToggleSection(idx, "Algorithms", "PL1"))
	require.NoError(t, s.ToggleSection(idx, "Algorithms", "TP1"))
	require.NoError(t, s.ToggleSection(idx, "Calculus", "TP2"))
	s.ToggleLock(idx, "Calculus", "TP2")

	view := BuildView(idx, s, DefaultGridConfig(), false)

	assert.False(t, view.HasConflicts)
	assert.Equal(t, "no conflicts", view.Status())
	occ := view.Cell(Wednesday, "14:00-16:00").Occupants
	require.Len(t, occ, 1)
	assert.True(t, occ[0].Locked)
	assert.Equal(t, "C", occ[0].Acronym)
	assert.True(t, view.Complete, "completeness disabled means vacuously complete")
	assert.Empty(t, view.Issues)
}

func TestBuildView_EmptySelection(t *testing.T) {
	view := BuildView(testIndex(t), NewSessionState(), DefaultGridConfig(), true)

	assert.True(t, view.Empty)
	assert.False(t, view.HasConflicts)
	assert.Equal(t, "no selection", view.Status())
	assert.False(t, view.Complete)
}

func TestBuildView_OffGridMeetings(t *testing.T) {
	idx, err := BuildIndex([]RawCourse{
		{Name: "Weekend", Shifts: []RawShift{{Code: "PL1", Meetings: []RawMeeting{
			meeting("sábado", "09:00", "11:00"),
			meeting("segunda", "07:00", "09:00"),
			meeting("segunda", "09:00", "11:00"),
		}}}},
	})
	require.NoError(t, err)
	s := NewSessionState()
	require.NoError(t, s.ToggleSection(idx, "Weekend", "PL1"))

	view := BuildView(idx, s, DefaultGridConfig(), false)

	assert.Equal(t, 2, view.OffGrid)
	assert.Len(t, view.Cells, 1)
}

func TestBuildView_CustomGrid(t *testing.T) {
	idx := testIndex(t)
	s := NewSessionState()
	require.NoError(t, s.ToggleSection(idx, "Calculus", "T1"))
	grid := GridConfig{Days: []Weekday{Friday}, Slots: []string{"11:00-13:00"}}

	view := BuildView(idx, s, grid, false)

	assert.Zero(t, view.OffGrid)
	assert.Len(t, view.Cell(Friday, "11:00-13:00").Occupants, 1)
}
