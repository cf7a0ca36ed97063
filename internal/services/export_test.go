package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turmas/internal/domain"
	portsmocks "turmas/internal/ports/mocks"
)

const completeCSV = "CLASS,PL,TP,T,T/TP\n101,1,1,,\n202,,1,,\n"

type exportMocks struct {
	clipboard *portsmocks.MockClipboard
	files     *portsmocks.MockFileWriter
	renderer  *portsmocks.MockGridRenderer
}

func newExportService(t *testing.T) (*ExportService, exportMocks) {
	m := exportMocks{
		clipboard: portsmocks.NewMockClipboard(t),
		files:     portsmocks.NewMockFileWriter(t),
		renderer:  portsmocks.NewMockGridRenderer(t),
	}
	return NewExportService(m.renderer, m.clipboard, m.files), m
}

func TestExportCSV_ToFile(t *testing.T) {
	service, m := newExportService(t)
	m.files.EXPECT().WriteFile("turmas.csv", []byte(completeCSV)).Return("/exports/turmas.csv", nil)

	results, err := service.Export(context.Background(), completeService(t), ExportParams{Format: ExportCSV})

	require.NoError(t, err)
	assert.Equal(t, []ExportResult{{Format: ExportCSV, Path: "/exports/turmas.csv"}}, results)
}

func TestExportCSV_ToClipboard(t *testing.T) {
	service, m := newExportService(t)
	m.clipboard.EXPECT().WriteText(completeCSV).Return(nil)

	results, err := service.Export(context.Background(), completeService(t), ExportParams{Format: ExportCSV, Clipboard: true})

	require.NoError(t, err)
	assert.Equal(t, []ExportResult{{Clipboard: true, Format: ExportCSV}}, results)
}

func TestExportCSV_BlockedWritesNothing(t *testing.T) {
	service, _ := newExportService(t)
	svc := newTimetableService(t)
	_, err := svc.Apply(ActionRequest{Name: "toggle", Discipline: "Algorithms", Section: "PL1"})
	require.NoError(t, err)

	_, err = service.Export(context.Background(), svc, ExportParams{Format: ExportCSV})

	var blocked *domain.ExportBlockedError
	require.True(t, errors.As(err, &blocked))
	assert.Equal(t, []domain.Issue{
		{Discipline: "Algorithms", Kind: domain.IssueMissing, Type: domain.TypeTheoretical},
		{Discipline: "Calculus", Kind: domain.IssueMissing, Type: domain.TypeTheoretical},
	}, blocked.Issues)
}

func TestExportCSV_WriteFailure(t *testing.T) {
	service, m := newExportService(t)
	m.files.EXPECT().WriteFile(mock.Anything, mock.Anything).Return("", errors.New("read-only"))

	_, err := service.Export(context.Background(), completeService(t), ExportParams{Format: ExportCSV, BaseName: "plan"})

	assert.ErrorIs(t, err, domain.ErrExportIO)
}

func TestExportImage(t *testing.T) {
	service, m := newExportService(t)
	opts := domain.DisplayOptions{ShowRoom: true}
	m.renderer.EXPECT().RenderPNG(mock.Anything, mock.Anything, opts).
		RunAndReturn(func(view *domain.ScheduleView, colors map[string]string, _ domain.DisplayOptions) ([]byte, error) {
			assert.False(t, view.Empty)
			assert.Len(t, colors, 2)
			return []byte("png"), nil
		})
	m.files.EXPECT().WriteFile("plan.png", []byte("png")).Return("/exports/plan.png", nil)

	results, err := service.Export(context.Background(), completeService(t), ExportParams{Format: ExportImage, BaseName: "plan", Display: opts})

	require.NoError(t, err)
	assert.Equal(t, "/exports/plan.png", results[0].Path)
}

func TestExportImage_ClipboardFailure(t *testing.T) {
	service, m := newExportService(t)
	m.renderer.EXPECT().RenderPNG(mock.Anything, mock.Anything, mock.Anything).Return([]byte("png"), nil)
	m.clipboard.EXPECT().WriteImage([]byte("png")).Return(errors.New("no display"))

	_, err := service.Export(context.Background(), newTimetableService(t), ExportParams{Format: ExportImage, Clipboard: true})

	assert.ErrorIs(t, err, domain.ErrExportIO)
	assert.Contains(t, err.Error(), "no display")
}

func TestExportImage_RenderFailure(t *testing.T) {
	service, m := newExportService(t)
	m.renderer.EXPECT().RenderPNG(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("grid has no cells"))

	_, err := service.Export(context.Background(), completeService(t), ExportParams{Format: ExportImage})

	assert.ErrorIs(t, err, domain.ErrExportIO)
}

func TestExportAll(t *testing.T) {
	service, m := newExportService(t)
	m.renderer.EXPECT().RenderPNG(mock.Anything, mock.Anything, mock.Anything).Return([]byte("png"), nil)
	m.files.EXPECT().WriteFile("turmas.csv", mock.Anything).Return("/x/turmas.csv", nil)
	m.files.EXPECT().WriteFile("turmas.png", mock.Anything).Return("/x/turmas.png", nil)

	results, err := service.Export(context.Background(), completeService(t), ExportParams{Format: ExportAll})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, ExportCSV, results[0].Format)
	assert.Equal(t, ExportImage, results[1].Format)
}

func TestExportAll_BlockedRendersNothing(t *testing.T) {
	service, _ := newExportService(t)

	_, err := service.Export(context.Background(), newTimetableService(t), ExportParams{Format: ExportAll})

	assert.ErrorIs(t, err, domain.ErrExportBlocked)
}

func TestExport_RejectsBadParams(t *testing.T) {
	service, _ := newExportService(t)

	_, err := service.Export(context.Background(), completeService(t), ExportParams{Format: "pdf"})
	assert.Error(t, err)

	_, err = service.Export(context.Background(), completeService(t), ExportParams{Format: ExportAll, Clipboard: true})
	assert.Error(t, err)
}
