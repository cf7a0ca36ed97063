package ports

import "turmas/internal/domain"

// GridRenderer draws the weekly grid as a raster image
type GridRenderer interface {
	RenderPNG(view *domain.ScheduleView, colors map[string]string, opts domain.DisplayOptions) ([]byte, error)
}

// Clipboard copies export results to the system clipboard
type Clipboard interface {
	WriteImage(png []byte) error
	WriteText(text string) error
}

// FileWriter stores export files and returns the written path
type FileWriter interface {
	WriteFile(name string, data []byte) (string, error)
}
