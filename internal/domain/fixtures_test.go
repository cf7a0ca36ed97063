package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func meeting(day, start, end string) RawMeeting {
	return RawMeeting{Weekday: day, Start: start, End: end}
}

// testCourses models two disciplines that clash on Tuesday morning
func testCourses() []RawCourse {
	return []RawCourse{
		{
			ID:   "101",
			Name: "Algorithms",
			Shifts: []RawShift{
				{Code: "PL1", Vacancies: intPtr(20), Meetings: []RawMeeting{meeting("Segunda-feira", "09:00", "11:00")}},
				{Code: "PL2", Meetings: []RawMeeting{meeting("segunda", "09:00", "11:00")}},
				{Code: "TP1", Meetings: []RawMeeting{meeting("Terça-feira", "09:00", "11:00")}},
			},
		},
		{
			ID:   "202",
			Name: "Calculus",
			Shifts: []RawShift{
				{Code: "TP1", Meetings: []RawMeeting{meeting("terca-feira", "09:00", "11:00")}},
				{Code: "TP2", Meetings: []RawMeeting{meeting("quarta-feira", "14:00", "16:00")}},
				{Code: "T1", Type: "T", Meetings: []RawMeeting{meeting("sexta-feira", "11:00", "13:00")}},
			},
		},
	}
}

func testIndex(t *testing.T) *ScheduleIndex {
	t.Helper()
	idx, err := BuildIndex(testCourses())
	require.NoError(t, err)
	return idx
}
