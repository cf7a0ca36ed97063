package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turmas/internal/domain"
	"turmas/internal/ports"
	portsmocks "turmas/internal/ports/mocks"
)

var fixedNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newSlotService(repo ports.SlotRepository) *SlotService {
	s := NewSlotService(repo)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestSlotKey(t *testing.T) {
	key, err := SlotKey(3)
	require.NoError(t, err)
	assert.Equal(t, "slot-3", key)

	for _, n := range []int{0, 6, -1} {
		_, err := SlotKey(n)
		assert.ErrorIs(t, err, domain.ErrInvalidSlot)
	}
}

func TestSlotSave(t *testing.T) {
	repo := portsmocks.NewMockSlotRepository(t)
	svc := completeService(t)

	var stored string
	repo.EXPECT().Set(mock.Anything, "slot-2", mock.Anything).
		Run(func(_ context.Context, _ string, value string) { stored = value }).
		Return(nil)

	err := newSlotService(repo).Save(context.Background(), 2, svc.Timetable().State())
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(stored), &payload))
	assert.Equal(t, float64(1), payload["version"])
	assert.Equal(t, "2026-03-02T10:00:00Z", payload["saved_at"])
	assert.Contains(t, payload, "state")
}

func TestSlotSave_Failure(t *testing.T) {
	repo := portsmocks.NewMockSlotRepository(t)
	repo.EXPECT().Set(mock.Anything, "slot-1", mock.Anything).Return(errors.New("disk full"))

	err := newSlotService(repo).Save(context.Background(), 1, domain.NewSessionState())

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSlotSave_InvalidSlotTouchesNothing(t *testing.T) {
	repo := portsmocks.NewMockSlotRepository(t)

	err := newSlotService(repo).Save(context.Background(), 9, domain.NewSessionState())

	assert.ErrorIs(t, err, domain.ErrInvalidSlot)
}

func TestSlotRoundTrip(t *testing.T) {
	repo := portsmocks.NewMockSlotRepository(t)
	source := completeService(t)
	_, err := source.Apply(ActionRequest{Name: "lock", Discipline: "Algorithms", Section: "PL1"})
	require.NoError(t, err)

	var stored string
	repo.EXPECT().Set(mock.Anything, "slot-1", mock.Anything).
		Run(func(_ context.Context, _ string, value string) { stored = value }).
		Return(nil)
	repo.EXPECT().Get(mock.Anything, "slot-1").RunAndReturn(func(context.Context, string) (string, error) {
		return stored, nil
	})

	slots := newSlotService(repo)
	require.NoError(t, slots.Save(context.Background(), 1, source.Timetable().State()))

	target := newTimetableService(t)
	changed, err := slots.LoadInto(context.Background(), 1, target.Timetable())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, target.Timetable().Peek().Equal(source.Timetable().Peek()))
	assert.True(t, target.Timetable().History().CanUndo())
}

func TestSlotLoad_Empty(t *testing.T) {
	repo := portsmocks.NewMockSlotRepository(t)
	repo.EXPECT().Get(mock.Anything, "slot-4").Return("", domain.ErrSlotEmpty)
	tt := newTimetableService(t).Timetable()

	changed, err := newSlotService(repo).LoadInto(context.Background(), 4, tt)

	assert.False(t, changed)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
	assert.False(t, tt.History().CanUndo())
}

func TestSlotLoad_Corrupt(t *testing.T) {
	repo := portsmocks.NewMockSlotRepository(t)
	repo.EXPECT().Get(mock.Anything, "slot-1").Return("{not json", nil)

	_, err := newSlotService(repo).Load(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestSlotLoad_BareState(t *testing.T) {
	repo := portsmocks.NewMockSlotRepository(t)
	repo.EXPECT().Get(mock.Anything, "slot-1").
		Return(`{"selected": {"Calculus": ["TP1"]}, "colors": {"Calculus": "#123456"}}`, nil)

	state, err := newSlotService(repo).Load(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"TP1"}, state.Selected["Calculus"])
	assert.Equal(t, "#123456", state.Colors["Calculus"])
}

func TestSlotLoad_SanitizesAgainstIndex(t *testing.T) {
	repo := portsmocks.NewMockSlotRepository(t)
	repo.EXPECT().Get(mock.Anything, "slot-1").
		Return(`{"version": 1, "state": {"selected": {"Calculus": ["TP1", "TP9"], "Ghost": ["X"]}, "locked": {"Calculus": ["TP9"]}}}`, nil)
	tt := newTimetableService(t).Timetable()

	_, err := newSlotService(repo).LoadInto(context.Background(), 1, tt)

	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"Calculus": {"TP1"}}, tt.Peek().Selected)
	assert.Empty(t, tt.Peek().Locked)
}

func TestSlotDelete(t *testing.T) {
	repo := portsmocks.NewMockSlotRepository(t)
	repo.EXPECT().Delete(mock.Anything, "slot-5").Return(nil).Once()
	repo.EXPECT().Delete(mock.Anything, "slot-5").Return(domain.ErrSlotEmpty).Once()

	slots := newSlotService(repo)

	require.NoError(t, slots.Delete(context.Background(), 5))
	err := slots.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestSlotList(t *testing.T) {
	repo := portsmocks.NewMockSlotRepository(t)
	updated := fixedNow.Add(-time.Hour)
	repo.EXPECT().List(mock.Anything).Return([]ports.SlotRecord{
		{Key: "slot-1", Revision: "r1", UpdatedAt: updated, Value: `{"version": 1, "saved_at": "2026-03-01T09:00:00Z", "state": {"selected": {"A": ["x"], "B": ["y"]}}}`},
		{Key: "slot-3", Revision: "r3", UpdatedAt: updated, Value: "garbage"},
		{Key: "other", Value: "{}"},
	}, nil)

	infos, err := newSlotService(repo).List(context.Background())

	require.NoError(t, err)
	require.Len(t, infos, SlotCount)
	assert.Equal(t, 1, infos[0].Number)
	assert.True(t, infos[0].Occupied)
	assert.Equal(t, 2, infos[0].Disciplines)
	assert.Equal(t, "r1", infos[0].Revision)
	assert.True(t, infos[0].SavedAt.Equal(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
	assert.False(t, infos[1].Occupied)
	assert.True(t, infos[2].Occupied)
	assert.Equal(t, updated, infos[2].SavedAt)
	assert.Equal(t, 5, infos[4].Number)
}

func TestSlotList_Failure(t *testing.T) {
	repo := portsmocks.NewMockSlotRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("locked"))

	_, err := newSlotService(repo).List(context.Background())

	assert.ErrorIs(t, err, domain.ErrPersistence)
}
