package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turmas/internal/domain"
)

func newTestList(t *testing.T) *DisciplineList {
	t.Helper()
	keys := NewKeyMap(nil)
	dl := NewDisciplineList(testIndex(t), &keys)
	dl.SetSize(60, 20)
	return dl
}

func listTarget(dl *DisciplineList) [2]string {
	d, s := dl.Target()
	return [2]string{d, s}
}

func TestDisciplineList_Navigation(t *testing.T) {
	dl := newTestList(t)
	assert.Equal(t, [2]string{"Algorithms", ""}, listTarget(dl))

	tests := []struct {
		key      string
		expected [2]string
	}{
		{"down", [2]string{"Algorithms", "PL1"}},
		{"j", [2]string{"Algorithms", "TP1"}},
		{"tab", [2]string{"Calculus", ""}},
		{"tab", [2]string{"Física Aplicada", ""}},
		{"tab", [2]string{"Física Aplicada", ""}},
		{"shift+tab", [2]string{"Calculus", ""}},
		{"G", [2]string{"Física Aplicada", "T1"}},
		{"down", [2]string{"Física Aplicada", "T1"}},
		{"g", [2]string{"Algorithms", ""}},
		{"up", [2]string{"Algorithms", ""}},
	}
	for _, tt := range tests {
		consumed, _ := dl.Update(keyMsg(tt.key))
		assert.True(t, consumed, tt.key)
		assert.Equal(t, tt.expected, listTarget(dl), "after %s", tt.key)
	}
}

func TestDisciplineList_IgnoresOtherKeys(t *testing.T) {
	dl := newTestList(t)

	consumed, _ := dl.Update(keyMsg("l"))
	assert.False(t, consumed)

	// esc only clears an active filter
	consumed, _ = dl.Update(keyMsg("esc"))
	assert.False(t, consumed)
}

func TestDisciplineList_Filter(t *testing.T) {
	dl := newTestList(t)

	dl.Update(keyMsg("/"))
	require.True(t, dl.Filtering())
	for _, r := range "calc" {
		dl.Update(keyMsg(string(r)))
	}
	dl.Update(keyMsg("enter"))

	assert.False(t, dl.Filtering())
	assert.Len(t, dl.rows, 2)
	assert.Equal(t, [2]string{"Calculus", ""}, listTarget(dl))

	consumed, _ := dl.Update(keyMsg("esc"))
	assert.True(t, consumed)
	assert.Len(t, dl.rows, 8)
	assert.Equal(t, [2]string{"Calculus", ""}, listTarget(dl))
}

func TestDisciplineList_FilterIgnoresAccentsAndMatchesAcronyms(t *testing.T) {
	tests := []struct {
		query    string
		expected string
	}{
		{"fisica", "Física Aplicada"},
		{"FÍSICA", "Física Aplicada"},
		{"fa", "Física Aplicada"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			dl := newTestList(t)
			dl.Update(keyMsg("/"))
			for _, r := range tt.query {
				dl.Update(keyMsg(string(r)))
			}

			require.NotEmpty(t, dl.rows)
			assert.Equal(t, tt.expected, dl.rows[0].discipline)
		})
	}
}

func TestDisciplineList_EscCancelsFilter(t *testing.T) {
	dl := newTestList(t)
	dl.Update(keyMsg("/"))
	dl.Update(keyMsg("x"))
	assert.Empty(t, dl.rows)

	dl.Update(keyMsg("esc"))

	assert.False(t, dl.Filtering())
	assert.Len(t, dl.rows, 8)
}

func TestDisciplineList_ViewMarkers(t *testing.T) {
	dl := newTestList(t)
	idx := testIndex(t)
	state := domain.NewSessionState()
	require.NoError(t, state.ToggleSection(idx, "Algorithms", "TP1"))
	require.NoError(t, state.ToggleSection(idx, "Algorithms", "TP2"))
	state.ToggleLock(idx, "Algorithms", "TP1")
	state.TogglePriority(idx, "Algorithms", "TP2")

	out := dl.View(state, []domain.Issue{{Discipline: "Algorithms", Kind: domain.IssueMissing, Type: domain.TypePractical}}, domain.DefaultDisplayOptions())

	assert.Contains(t, out, "●")
	assert.Contains(t, out, "○")
	assert.Contains(t, out, "locked")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "no PL")
	assert.Contains(t, out, "Seg 09:00-11:00 L1")
}

func TestMeetingSummary(t *testing.T) {
	capacity := 20
	sec := &domain.Section{
		Capacity: &capacity,
		Code:     "PL1",
		Meetings: []domain.Meeting{
			{Day: domain.Monday, Room: "L1", Slot: domain.ParseTimeSlot("09:00-11:00")},
			{Day: domain.Tuesday, Slot: domain.ParseTimeSlot("14:00-16:00")},
		},
	}

	assert.Equal(t, "Seg 09:00-11:00, Ter 14:00-16:00", meetingSummary(sec, domain.DisplayOptions{}))
	assert.Equal(t, "Seg 09:00-11:00 L1, Ter 14:00-16:00 (20)",
		meetingSummary(sec, domain.DisplayOptions{ShowCapacity: true, ShowRoom: true}))
}
