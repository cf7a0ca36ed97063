package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Dim style for background when overlay is shown
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// dimBackground strips the styling of every background line, dims it and pads
// it to width. The result has at least height lines.
func dimBackground(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		dimmed := dimStyle.Render(ansi.Strip(line))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// compositeOverlay renders an overlay centered on top of a dimmed background.
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}
	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	leftPad := dimStyle.Render(strings.Repeat(" ", startX))
	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := dimStyle.Render(strings.Repeat(" ", max(width-startX-lipgloss.Width(line), 0)))
		bgLines[y] = leftPad + line + rightPad
	}
	return strings.Join(bgLines, "\n")
}

// bottomAnchoredOverlay renders an overlay anchored to the bottom of a dimmed
// background.
func bottomAnchoredOverlay(background, overlay string, width, height int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	startY := max(height-len(overlayLines), 0)
	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}
	return strings.Join(bgLines, "\n")
}
