package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	idx := testIndex(t)

	assert.Equal(t, []string{"Algorithms", "Calculus"}, idx.Names())

	alg, ok := idx.Discipline("Algorithms")
	require.True(t, ok)
	assert.Equal(t, "101", alg.ClassID)
	assert.Equal(t, []string{"PL1", "PL2", "TP1"}, alg.Codes())
	assert.Equal(t, []SectionType{TypePractical, TypeTheoretical}, alg.Types())

	pl1, ok := alg.Section("PL1")
	require.True(t, ok)
	assert.Equal(t, TypePractical, pl1.Type)
	assert.Equal(t, 20, *pl1.Capacity)
	assert.Equal(t, Monday, pl1.Meetings[0].Day)
	assert.Equal(t, "09:00-11:00", pl1.Meetings[0].Slot.String())

	t1, ok := idx.Section("Calculus", "T1")
	require.True(t, ok)
	assert.Equal(t, TypeLecture, t1.Type)

	_, ok = idx.Section("Calculus", "PL9")
	assert.False(t, ok)
	_, ok = idx.Discipline("Physics")
	assert.False(t, ok)
}

func TestBuildIndex_DropsEmptySectionsAndDisciplines(t *testing.T) {
	courses := []RawCourse{
		{Name: "Empty", Shifts: []RawShift{{Code: "TP1"}}},
		{Name: "Partial", Shifts: []RawShift{
			{Code: "TP1"},
			{Code: "TP2", Meetings: []RawMeeting{meeting("quinta-feira", "16:00", "18:00")}},
		}},
	}

	idx, err := BuildIndex(courses)
	require.NoError(t, err)

	assert.Equal(t, []string{"Partial"}, idx.Names())
	d, _ := idx.Discipline("Partial")
	assert.Equal(t, []string{"TP2"}, d.Codes())

	for _, d := range idx.Disciplines() {
		assert.NotZero(t, d.Len())
		for _, s := range d.Sections() {
			assert.NotEmpty(t, s.Meetings)
		}
	}
}

func TestBuildIndex_MissingIDDoesNotBlock(t *testing.T) {
	idx, err := BuildIndex([]RawCourse{
		{Name: "NoID", Shifts: []RawShift{{Code: "PL1", Meetings: []RawMeeting{meeting("sexta", "09:00", "11:00")}}}},
	})
	require.NoError(t, err)

	d, ok := idx.Discipline("NoID")
	require.True(t, ok)
	assert.Empty(t, d.ClassID)
}

func TestBuildIndex_UnknownDayPassesThrough(t *testing.T) {
	idx, err := BuildIndex([]RawCourse{
		{Name: "Weekend", Shifts: []RawShift{{Code: "PL1", Meetings: []RawMeeting{meeting("Sábado", "09:00", "11:00")}}}},
	})
	require.NoError(t, err)

	s, ok := idx.Section("Weekend", "PL1")
	require.True(t, ok)
	assert.Equal(t, Weekday("sábado"), s.Meetings[0].Day)
}

func TestBuildIndex_MalformedRecords(t *testing.T) {
	courses := []RawCourse{
		{ID: "1", Shifts: []RawShift{{Code: "TP1", Meetings: []RawMeeting{meeting("segunda", "09:00", "11:00")}}}},
		{Name: "Good", Shifts: []RawShift{
			{Meetings: []RawMeeting{meeting("segunda", "09:00", "11:00")}},
			{Code: "TP1", Meetings: []RawMeeting{
				{Weekday: "terça", Start: "09:00"},
				meeting("terça", "11:00", "13:00"),
			}},
			{Code: "TP1", Meetings: []RawMeeting{meeting("quarta", "11:00", "13:00")}},
		}},
		{Name: "Good", Shifts: []RawShift{{Code: "PL1", Meetings: []RawMeeting{meeting("segunda", "09:00", "11:00")}}}},
	}

	idx, err := BuildIndex(courses)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedData))

	var malformed *MalformedDataError
	require.True(t, errors.As(err, &malformed))
	assert.Len(t, malformed.Problems, 5)

	require.NotNil(t, idx)
	assert.Equal(t, []string{"Good"}, idx.Names())
	s, ok := idx.Section("Good", "TP1")
	require.True(t, ok)
	require.Len(t, s.Meetings, 1)
	assert.Equal(t, "11:00-13:00", s.Meetings[0].Slot.String())
}
