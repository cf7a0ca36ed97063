package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turmas/internal/domain"
)

func testView(t *testing.T) *domain.ScheduleView {
	t.Helper()
	idx, err := domain.BuildIndex([]domain.RawCourse{
		{ID: "1", Name: "Algoritmos e Estruturas de Dados", Shifts: []domain.RawShift{
			{Code: "TP1", Meetings: []domain.RawMeeting{{Weekday: "segunda", Start: "09:00", End: "11:00", Room: "A1"}}},
		}},
		{ID: "2", Name: "Cálculo", Shifts: []domain.RawShift{
			{Code: "TP1", Meetings: []domain.RawMeeting{{Weekday: "segunda", Start: "09:00", End: "11:00"}}},
		}},
	})
	require.NoError(t, err)
	tt := domain.NewTimetable(idx, nil, 0)
	tt.SelectAll()
	return tt.View(domain.DefaultGridConfig(), false)
}

func TestGGRenderer_RenderPNG(t *testing.T) {
	view := testView(t)
	require.True(t, view.HasConflicts)

	data, err := NewGGRenderer().RenderPNG(view, map[string]string{"Cálculo": "#E15759"}, domain.DefaultDisplayOptions())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, leftLabelsWidth+5*cellWidth, bounds.Dx())
	assert.Equal(t, headerHeight+5*cellHeight+footerHeight, bounds.Dy())
}

func TestGGRenderer_EmptyGrid(t *testing.T) {
	view := testView(t)
	view.Grid = domain.GridConfig{}

	_, err := NewGGRenderer().RenderPNG(view, nil, domain.DisplayOptions{})
	assert.Error(t, err)

	_, err = NewGGRenderer().RenderPNG(nil, nil, domain.DisplayOptions{})
	assert.Error(t, err)
}

func TestParseColorAndTruncate(t *testing.T) {
	assert.Equal(t, fallbackColor, parseColor("not-a-color"))
	r, g, b, _ := parseColor("#ff0000").RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)

	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
}
