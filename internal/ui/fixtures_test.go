package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"turmas/internal/domain"
	"turmas/internal/services"
)

// Algorithms TP2 clashes with Calculus TP1 on Wednesday afternoon
const catalogJSON = `[
  {"id": 101, "name": "Algorithms", "shifts": [
    {"code": "PL1", "vacancies": 20, "meetings": [{"weekday": "segunda-feira", "start": "09:00", "end": "11:00", "room": "L1"}]},
    {"code": "TP1", "meetings": [{"weekday": "terça-feira", "start": "09:00", "end": "11:00"}]},
    {"code": "TP2", "meetings": [{"weekday": "quarta-feira", "start": "14:00", "end": "16:00"}]}
  ]},
  {"id": "202", "name": "Calculus", "shifts": [
    {"code": "TP1", "meetings": [{"weekday": "quarta-feira", "start": "14:00", "end": "16:00"}]}
  ]},
  {"id": 303, "name": "Física Aplicada", "shifts": [
    {"code": "T1", "type": "T", "meetings": [{"weekday": "quinta-feira", "start": "11:00", "end": "13:00"}]}
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

func newTestModel(t *testing.T, slots *services.SlotService, export *services.ExportService) *Model {
	t.Helper()
	tt := domain.NewTimetable(testIndex(t), nil, 0)
	svc := services.NewTimetableService(tt, domain.DefaultGridConfig())
	m := NewModel(svc, slots, export, ModelOptions{Display: domain.DefaultDisplayOptions()})
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 60})
	return m
}

// keyMsg builds the key message bubbletea sends for k
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends keys to the model one by one and returns the last command
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func typeText(m tea.Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
