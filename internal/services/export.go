package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"turmas/internal/domain"
	"turmas/internal/logging"
	"turmas/internal/ports"
)

// DefaultExportBaseName names export files when no base name is given
const DefaultExportBaseName = "turmas"

// ExportService produces the CSV and the grid image and hands them to a file
// or the clipboard
type ExportService struct {
	clipboard ports.Clipboard
	files     ports.FileWriter
	renderer  ports.GridRenderer
}

// NewExportService creates a new ExportService
func NewExportService(
	renderer ports.GridRenderer,
	clipboard ports.Clipboard,
	files ports.FileWriter,
) *ExportService {
	return &ExportService{
		clipboard: clipboard,
		files:     files,
		renderer:  renderer,
	}
}

// Export runs the export described by params against the timetable of svc.
// The CSV is validated before anything is written: a blocked export returns
// *domain.ExportBlockedError and produces nothing. Write failures wrap
// domain.ErrExportIO.
func (s *ExportService) Export(ctx context.Context, svc *TimetableService, params ExportParams) ([]ExportResult, error) {
	if params.BaseName == "" {
		params.BaseName = DefaultExportBaseName
	}
	logging.Logger.Debug("Exporting", "format", params.Format, "clipboard", params.Clipboard)

	switch params.Format {
	case ExportCSV:
		res, err := s.exportCSV(svc.Timetable(), params)
		if err != nil {
			return nil, err
		}
		return []ExportResult{res}, nil
	case ExportImage:
		res, err := s.exportImage(svc, params)
		if err != nil {
			return nil, err
		}
		return []ExportResult{res}, nil
	case ExportAll:
		if params.Clipboard {
			return nil, fmt.Errorf("the clipboard holds a single item: export csv or image")
		}
		return s.exportAll(ctx, svc, params)
	}
	return nil, fmt.Errorf("unknown export format %q", params.Format)
}

func (s *ExportService) exportCSV(tt *domain.Timetable, params ExportParams) (ExportResult, error) {
	text, err := tt.ExportCSV()
	if err != nil {
		logging.Logger.Info("CSV export blocked", "error", err)
		return ExportResult{}, err
	}
	return s.deliver(ExportCSV, params, []byte(text), func() error {
		return s.clipboard.WriteText(text)
	})
}

func (s *ExportService) exportImage(svc *TimetableService, params ExportParams) (ExportResult, error) {
	view := svc.View(params.Display.ShowExportTools)
	colors := svc.Timetable().Peek().Colors

	png, err := s.renderer.RenderPNG(view, colors, params.Display)
	if err != nil {
		logging.Logger.Error("Failed to render grid", "error", err)
		return ExportResult{}, fmt.Errorf("%w: failed to render grid: %w", domain.ErrExportIO, err)
	}
	return s.deliver(ExportImage, params, png, func() error {
		return s.clipboard.WriteImage(png)
	})
}

// exportAll produces the CSV and the image concurrently. The CSV is checked
// first so a blocked export writes neither.
func (s *ExportService) exportAll(ctx context.Context, svc *TimetableService, params ExportParams) ([]ExportResult, error) {
	if _, err := svc.Timetable().ExportCSV(); err != nil {
		logging.Logger.Info("Export blocked", "error", err)
		return nil, err
	}

	var mu sync.Mutex
	results := make([]ExportResult, 0, 2)
	collect := func(res ExportResult) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, res)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if gctx.Err() != nil {
			return gctx.Err()
		}
		res, err := s.exportCSV(svc.Timetable(), params)
		if err != nil {
			return err
		}
		collect(res)
		return nil
	})
	g.Go(func() error {
		if gctx.Err() != nil {
			return gctx.Err()
		}
		res, err := s.exportImage(svc, params)
		if err != nil {
			return err
		}
		collect(res)
		return nil
	})
	if err := g.Wait(); err != nil {
		return results, err
	}

	// csv first, regardless of which finished first
	if len(results) == 2 && results[0].Format != ExportCSV {
		results[0], results[1] = results[1], results[0]
	}
	return results, nil
}

// deliver writes data to a file, or to the clipboard when requested
func (s *ExportService) deliver(format ExportFormat, params ExportParams, data []byte, toClipboard func() error) (ExportResult, error) {
	if params.Clipboard {
		if err := toClipboard(); err != nil {
			logging.Logger.Warn("Clipboard export failed", "format", format, "error", err)
			return ExportResult{}, fmt.Errorf("%w: failed to copy %s to clipboard: %w", domain.ErrExportIO, format, err)
		}
		logging.Logger.Info("Exported to clipboard", "format", format)
		return ExportResult{Clipboard: true, Format: format}, nil
	}

	path, err := s.files.WriteFile(params.BaseName+extension(format), data)
	if err != nil {
		logging.Logger.Warn("File export failed", "format", format, "error", err)
		return ExportResult{}, fmt.Errorf("%w: failed to write %s: %w", domain.ErrExportIO, format, err)
	}
	logging.Logger.Info("Exported to file", "format", format, "path", path)
	return ExportResult{Format: format, Path: path}, nil
}

func extension(format ExportFormat) string {
	if format == ExportImage {
		return ".png"
	}
	return ".csv"
}
