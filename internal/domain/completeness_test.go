package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCompleteness(t *testing.T) {
	tests := []struct {
		name     string
		toggles  [][2]string
		ranks    [][2]string
		expected []Issue
	}{
		{
			name:    "one of each type",
			toggles: [][2]string{{"Algorithms", "PL1"}, {"Algorithms", "TP1"}, {"Calculus", "TP2"}, {"Calculus", "T1"}},
		},
		{
			name:    "missing types",
			toggles: [][2]string{{"Algorithms", "PL1"}},
			expected: []Issue{
				{Discipline: "Algorithms", Kind: IssueMissing, Type: TypeTheoretical},
				{Discipline: "Calculus", Kind: IssueMissing, Type: TypeTheoretical},
				{Discipline: "Calculus", Kind: IssueMissing, Type: TypeLecture},
			},
		},
		{
			name:    "two PL without priority",
			toggles: [][2]string{{"Algorithms", "PL1"}, {"Algorithms", "PL2"}, {"Algorithms", "TP1"}, {"Calculus", "TP2"}, {"Calculus", "T1"}},
			expected: []Issue{
				{Discipline: "Algorithms", Kind: IssueAmbiguousPriority, Type: TypePractical},
			},
		},
		{
			name:    "two PL partially ranked",
			toggles: [][2]string{{"Algorithms", "PL1"}, {"Algorithms", "PL2"}, {"Algorithms", "TP1"}, {"Calculus", "TP2"}, {"Calculus", "T1"}},
			ranks:   [][2]string{{"Algorithms", "PL2"}},
			expected: []Issue{
				{Discipline: "Algorithms", Kind: IssueAmbiguousPriority, Type: TypePractical},
			},
		},
		{
			name:    "two PL fully ranked",
			toggles: [][2]string{{"Algorithms", "PL1"}, {"Algorithms", "PL2"}, {"Algorithms", "TP1"}, {"Calculus", "TP2"}, {"Calculus", "T1"}},
			ranks:   [][2]string{{"Algorithms", "PL2"}, {"Algorithms", "PL1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := testIndex(t)
			s := NewSessionState()
			for _, p := range tt.toggles {
				require.NoError(t, s.ToggleSection(idx, p[0], p[1]))
			}
			for _, p := range tt.ranks {
				s.TogglePriority(idx, p[0], p[1])
			}

			assert.Equal(t, tt.expected, CheckCompleteness(idx, s))
		})
	}
}

func TestCheckCompleteness_UnclassifiedNeverRequired(t *testing.T) {
	idx, err := BuildIndex([]RawCourse{
		{Name: "Seminar", Shifts: []RawShift{{Code: "S1", Meetings: []RawMeeting{meeting("segunda", "09:00", "11:00")}}}},
	})
	require.NoError(t, err)

	assert.Empty(t, CheckCompleteness(idx, NewSessionState()))
}

func TestIssueString(t *testing.T) {
	assert.Equal(t, "Algorithms: missing TP", Issue{Discipline: "Algorithms", Kind: IssueMissing, Type: TypeTheoretical}.String())
	assert.Equal(t, "Algorithms: ambiguous PL priority", Issue{Discipline: "Algorithms", Kind: IssueAmbiguousPriority, Type: TypePractical}.String())
}
