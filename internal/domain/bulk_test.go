package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAllAndClearAll(t *testing.T) {
	idx := testIndex(t)
	s := NewSessionState()

	s.SelectAll(idx)
	assert.True(t, s.AllSelected(idx))
	assert.Equal(t, 6, s.SelectedCount())

	s.ToggleLock(idx, "Calculus", "T1")
	s.TogglePriority(idx, "Algorithms", "PL1")
	s.ClearAll(idx)

	assert.Equal(t, map[string][]string{"Calculus": {"T1"}}, s.Selected)
	assert.Empty(t, s.Priorities)
	assertInvariants(t, idx, s)
}

func TestToggleByType(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(s *SessionState, idx *ScheduleIndex)
		typ      SectionType
		expected map[string][]string
	}{
		{
			name:  "selects all when some are missing",
			setup: func(s *SessionState, idx *ScheduleIndex) { _ = s.ToggleSection(idx, "Calculus", "TP2") },
			typ:   TypeTheoretical,
			expected: map[string][]string{
				"Algorithms": {"TP1"},
				"Calculus":   {"TP2", "TP1"},
			},
		},
		{
			name: "deselects all when all are selected",
			setup: func(s *SessionState, idx *ScheduleIndex) {
				s.SetDisciplineAll(idx, "Algorithms", true)
				s.SetDisciplineAll(idx, "Calculus", true)
			},
			typ: TypeTheoretical,
			expected: map[string][]string{
				"Algorithms": {"PL1", "PL2"},
				"Calculus":   {"T1"},
			},
		},
		{
			name: "keeps locked sections when deselecting",
			setup: func(s *SessionState, idx *ScheduleIndex) {
				s.SetDisciplineAll(idx, "Algorithms", true)
				s.ToggleLock(idx, "Algorithms", "PL2")
			},
			typ: TypePractical,
			expected: map[string][]string{
				"Algorithms": {"PL2", "TP1"},
			},
		},
		{
			name:     "no matching sections",
			setup:    func(*SessionState, *ScheduleIndex) {},
			typ:      TypeOther,
			expected: map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := testIndex(t)
			s := NewSessionState()
			tt.setup(s, idx)

			s.ToggleByType(idx, OfType(tt.typ))

			assert.Equal(t, tt.expected, s.Selected)
			assertInvariants(t, idx, s)
		})
	}
}

func TestToggleByType_PrunesPriorities(t *testing.T) {
	idx := testIndex(t)
	s := NewSessionState()
	s.SetDisciplineAll(idx, "Calculus", true)
	s.SetDisciplineAll(idx, "Algorithms", true)
	s.TogglePriority(idx, "Calculus", "TP1")

	s.ToggleByType(idx, OfType(TypeTheoretical))

	assert.Empty(t, s.Priorities)
}

func TestAllSelected_UsesSetEquality(t *testing.T) {
	idx := testIndex(t)
	s := NewSessionState()
	s.SetDisciplineAll(idx, "Calculus", true)
	s.Selected["Algorithms"] = []string{"PL1", "PL2", "XX9"}

	alg, _ := idx.Discipline("Algorithms")
	assert.False(t, s.DisciplineFullySelected(alg))
	assert.False(t, s.AllSelected(idx))
}

func TestToggleAll(t *testing.T) {
	idx := testIndex(t)
	s := NewSessionState()
	require.NoError(t, s.ToggleSection(idx, "Algorithms", "PL1"))

	s.ToggleAll(idx)
	assert.True(t, s.AllSelected(idx))

	s.ToggleAll(idx)
	assert.Empty(t, s.Selected)
}

func TestToggleDiscipline(t *testing.T) {
	idx := testIndex(t)
	s := NewSessionState()

	s.ToggleDiscipline(idx, "Calculus")
	assert.Equal(t, []string{"TP1", "TP2", "T1"}, s.Selected["Calculus"])

	s.ToggleDiscipline(idx, "Calculus")
	assert.NotContains(t, s.Selected, "Calculus")
}
