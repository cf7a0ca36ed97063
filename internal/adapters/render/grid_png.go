package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"turmas/internal/domain"
	"turmas/internal/ports"
)

// Layout
const (
	cellHeight      = 110
	cellPadding     = 6
	cellWidth       = 230
	headerHeight    = 50
	leftLabelsWidth = 120
	lineHeight      = 15
	footerHeight    = 40
	maxLabelLength  = 30
	occupantRadius  = 5.0
)

// Color scheme
var (
	bgColor       = color.RGBA{245, 246, 248, 255}
	conflictColor = color.RGBA{225, 87, 89, 255}
	evenRowColor  = color.NRGBA{240, 240, 240, 255}
	fallbackColor = color.RGBA{186, 176, 172, 255}
	gridLineColor = color.NRGBA{150, 150, 150, 255}
	oddRowColor   = color.NRGBA{228, 228, 228, 255}
	occupantText  = color.RGBA{20, 24, 28, 230}
	statusOKColor = color.RGBA{89, 161, 79, 255}
	textColor     = color.RGBA{80, 85, 90, 220}
	lockedBorder  = color.RGBA{40, 40, 40, 255}
	shadowColor   = color.RGBA{0, 0, 0, 20}
)

// GGRenderer draws the weekly grid with fogleman/gg
type GGRenderer struct{}

var _ ports.GridRenderer = (*GGRenderer)(nil)

// NewGGRenderer creates a renderer
func NewGGRenderer() *GGRenderer {
	return &GGRenderer{}
}

// RenderPNG draws days as columns and time slots as rows. Each occupant is a
// colored box labelled according to opts; conflicting cells get a red frame.
func (r *GGRenderer) RenderPNG(view *domain.ScheduleView, colors map[string]string, opts domain.DisplayOptions) ([]byte, error) {
	if view == nil {
		return nil, fmt.Errorf("nothing to render")
	}
	days, slots := view.Grid.Days, view.Grid.Slots
	if len(days) == 0 || len(slots) == 0 {
		return nil, fmt.Errorf("grid has no cells")
	}

	width := leftLabelsWidth + len(days)*cellWidth
	height := headerHeight + len(slots)*cellHeight + footerHeight

	dc := gg.NewContext(width, height)
	dc.SetColor(bgColor)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	drawDayHeaders(dc, days)
	for row, slot := range slots {
		y := float64(headerHeight + row*cellHeight)
		drawRowBackground(dc, row, y, width)

		dc.SetColor(textColor)
		dc.DrawStringAnchored(slot, float64(leftLabelsWidth)-10, y+cellHeight/2, 1, 0.5)

		for col, day := range days {
			x := float64(leftLabelsWidth + col*cellWidth)
			drawCell(dc, view.Cell(day, slot), x, y, colors, opts)
		}
	}
	drawGridLines(dc, len(days), len(slots))
	drawStatus(dc, view, float64(height-footerHeight))

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawDayHeaders(dc *gg.Context, days []domain.Weekday) {
	dc.SetColor(textColor)
	for i, day := range days {
		x := float64(leftLabelsWidth+i*cellWidth) + cellWidth/2
		dc.DrawStringAnchored(day.Label(), x, headerHeight/2, 0.5, 0.5)
	}
}

func drawRowBackground(dc *gg.Context, row int, y float64, width int) {
	if row%2 == 0 {
		dc.SetColor(evenRowColor)
	} else {
		dc.SetColor(oddRowColor)
	}
	dc.DrawRectangle(float64(leftLabelsWidth), y, float64(width-leftLabelsWidth), cellHeight)
	dc.Fill()
}

func drawGridLines(dc *gg.Context, cols, rows int) {
	dc.SetLineWidth(0.5)
	dc.SetColor(gridLineColor)
	bottom := float64(headerHeight + rows*cellHeight)
	right := float64(leftLabelsWidth + cols*cellWidth)
	for c := 0; c <= cols; c++ {
		x := float64(leftLabelsWidth + c*cellWidth)
		dc.DrawLine(x, headerHeight, x, bottom)
		dc.Stroke()
	}
	for r := 0; r <= rows; r++ {
		y := float64(headerHeight + r*cellHeight)
		dc.DrawLine(leftLabelsWidth, y, right, y)
		dc.Stroke()
	}
}

func drawCell(dc *gg.Context, cell domain.Cell, x, y float64, colors map[string]string, opts domain.DisplayOptions) {
	n := len(cell.Occupants)
	if n == 0 {
		return
	}

	boxHeight := (cellHeight - cellPadding*float64(n+1)) / float64(n)
	boxWidth := float64(cellWidth - 2*cellPadding)
	for i, occ := range cell.Occupants {
		by := y + cellPadding + float64(i)*(boxHeight+cellPadding)
		bx := x + cellPadding
		fill := parseColor(colors[occ.Discipline])

		dc.SetColor(shadowColor)
		dc.DrawRoundedRectangle(bx+2, by+2, boxWidth, boxHeight, occupantRadius)
		dc.Fill()

		dc.SetColor(fill)
		dc.DrawRoundedRectangle(bx, by, boxWidth, boxHeight, occupantRadius)
		dc.Fill()

		if occ.Locked {
			dc.SetColor(lockedBorder)
			dc.SetLineWidth(2)
			dc.DrawRoundedRectangle(bx, by, boxWidth, boxHeight, occupantRadius)
			dc.Stroke()
		}

		dc.SetColor(occupantText)
		lines := []string{truncate(opts.Label(occ), maxLabelLength)}
		if details := opts.Details(occ); details != "" && boxHeight > 2*lineHeight {
			lines = append(lines, truncate(details, maxLabelLength))
		}
		for li, line := range lines {
			dc.DrawString(line, bx+6, by+lineHeight+float64(li*lineHeight))
		}
	}

	if cell.Conflict() {
		dc.SetColor(conflictColor)
		dc.SetLineWidth(3)
		dc.DrawRectangle(x+1.5, y+1.5, cellWidth-3, cellHeight-3)
		dc.Stroke()
	}
}

func drawStatus(dc *gg.Context, view *domain.ScheduleView, y float64) {
	status := view.Status()
	if view.HasConflicts {
		dc.SetColor(conflictColor)
		status = fmt.Sprintf("%s (%d)", status, view.ConflictCount())
	} else {
		dc.SetColor(statusOKColor)
	}
	if view.OffGrid > 0 {
		status = fmt.Sprintf("%s, %d meetings outside the grid", status, view.OffGrid)
	}
	dc.DrawStringAnchored(status, leftLabelsWidth, y+footerHeight/2, 0, 0.5)
}

// parseColor accepts "#RRGGBB"; anything else falls back to a neutral color
func parseColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackColor
	}
	return c
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
