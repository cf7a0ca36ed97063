package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"turmas/internal/domain"
	"turmas/internal/theme"
)

// renderGrid draws the weekly grid: one column per day, one row per time
// slot. Cells list their occupants in discipline colors; over-occupied cells
// use the conflict style.
func renderGrid(view *domain.ScheduleView, colors map[string]string, opts domain.DisplayOptions, width int) string {
	days, slots := view.Grid.Days, view.Grid.Slots
	if len(days) == 0 || len(slots) == 0 {
		return theme.MutedStyle.Render("grid has no cells")
	}

	// width left for each day column after the slot labels and borders
	cellWidth := 0
	if width > 0 {
		cellWidth = max((width-13-len(days))/len(days)-2, 6)
	}

	headers := make([]string, 0, len(days)+1)
	headers = append(headers, "")
	for _, day := range days {
		headers = append(headers, day.Label())
	}

	conflicts := make(map[[2]int]bool)
	rows := make([][]string, 0, len(slots))
	for r, slot := range slots {
		row := make([]string, 0, len(days)+1)
		row = append(row, slot)
		for c, day := range days {
			cell := view.Cell(day, slot)
			if cell.Conflict() {
				conflicts[[2]int{r, c + 1}] = true
			}
			row = append(row, renderCell(cell, colors, opts, cellWidth))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.GridBorderStyle).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.GridHeaderStyle
			case col == 0:
				return theme.GridSlotStyle
			case conflicts[[2]int{row, col}]:
				return theme.GridConflictStyle
			default:
				return theme.GridCellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	return t.Render()
}

func renderCell(cell domain.Cell, colors map[string]string, opts domain.DisplayOptions, width int) string {
	if len(cell.Occupants) == 0 {
		return ""
	}

	lines := make([]string, 0, len(cell.Occupants))
	for _, occ := range cell.Occupants {
		label := opts.Label(occ)
		if details := opts.Details(occ); details != "" {
			label += " " + details
		}
		if occ.Locked {
			label += " *"
		}
		if width > 0 {
			label = truncateRunes(label, width)
		}
		lines = append(lines, theme.DisciplineColorStyle(colors[occ.Discipline]).Render(label))
	}
	if cell.Conflict() {
		lines = append(lines, fmt.Sprintf("! %d clash", len(cell.Occupants)))
	}
	return strings.Join(lines, "\n")
}

// renderStatus renders the one-line conflict summary of the view
func renderStatus(view *domain.ScheduleView) string {
	var status string
	switch {
	case view.Empty:
		status = theme.NoSelectionStatusStyle.Render(view.Status())
	case view.HasConflicts:
		status = theme.ConflictStatusStyle.Render(fmt.Sprintf("%s (%d)", view.Status(), view.ConflictCount()))
	default:
		status = theme.NoConflictStatusStyle.Render(view.Status())
	}
	if view.OffGrid > 0 {
		status += theme.MutedStyle.Render(fmt.Sprintf("  %d meetings outside the grid", view.OffGrid))
	}
	return status
}

// renderIssues lists completeness issues, or confirms the export is ready
func renderIssues(view *domain.ScheduleView) string {
	if view.Empty {
		return ""
	}
	if view.Complete {
		return theme.NoConflictStatusStyle.Render("ready to export")
	}
	parts := make([]string, 0, len(view.Issues))
	for _, issue := range view.Issues {
		parts = append(parts, issue.String())
	}
	return theme.WarningStyle.Render(strings.Join(parts, "; "))
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
