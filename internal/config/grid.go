package config

import (
	"strings"

	"turmas/internal/domain"
)

// NewGridConfig builds the grid from comma-separated day labels and time
// slots. Empty inputs fall back to the default 5x5 grid.
func NewGridConfig(days, slots string) domain.GridConfig {
	return gridFromLists(parseList(days), parseList(slots))
}

func gridFromLists(days, slots []string) domain.GridConfig {
	grid := domain.DefaultGridConfig()
	if len(days) > 0 {
		grid.Days = make([]domain.Weekday, 0, len(days))
		for _, d := range days {
			grid.Days = append(grid.Days, domain.NormalizeWeekday(d))
		}
	}
	if len(slots) > 0 {
		grid.Slots = make([]string, 0, len(slots))
		for _, s := range slots {
			grid.Slots = append(grid.Slots, domain.ParseTimeSlot(s).String())
		}
	}
	return grid
}

// parseList splits a comma-separated string and trims whitespace
func parseList(input string) []string {
	if input == "" {
		return []string{}
	}

	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
