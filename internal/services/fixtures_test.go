package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"turmas/internal/domain"
)

const catalogJSON = `[
  {"id": 101, "name": "Algorithms", "shifts": [
    {"code": "PL1", "vacancies": 20, "meetings": [{"weekday": "segunda-feira", "start": "09:00", "end": "11:00", "room": "L1"}]},
    {"code": "TP1", "meetings": [{"weekday": "terça-feira", "start": "09:00", "end": "11:00"}]}
  ]},
  {"id": "202", "name": "Calculus", "shifts": [
    {"code": "TP1", "meetings": [{"weekday": "quarta-feira", "start": "14:00", "end": "16:00"}]}
  ]}
]`

func testIndex(t *testing.T) *domain.ScheduleIndex {
	t.Helper()
	courses, err := domain.DecodeCatalog([]byte(catalogJSON))
	require.NoError(t, err)
	idx, err := domain.BuildIndex(courses)
	require.NoError(t, err)
	return idx
}

func newTimetableService(t *testing.T) *TimetableService {
	t.Helper()
	tt := domain.NewTimetable(testIndex(t), nil, 0)
	return NewTimetableService(tt, domain.DefaultGridConfig())
}

// completeService returns a session whose selection exports cleanly
func completeService(t *testing.T) *TimetableService {
	t.Helper()
	svc := newTimetableService(t)
	for _, p := range [][2]string{{"Algorithms", "PL1"}, {"Algorithms", "TP1"}, {"Calculus", "TP1"}} {
		_, err := svc.Apply(ActionRequest{Name: "toggle", Discipline: p[0], Section: p[1]})
		require.NoError(t, err)
	}
	return svc
}
