package domain

import "slices"

// DefaultTimeSlots are the five two-hour teaching windows
var DefaultTimeSlots = []string{"09:00-11:00", "11:00-13:00", "14:00-16:00", "16:00-18:00", "18:00-20:00"}

// GridConfig is the day by time-slot matrix the view is built on
type GridConfig struct {
	Days  []Weekday
	Slots []string
}

// DefaultGridConfig returns the 5x5 weekday grid
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Days:  slices.Clone(Weekdays),
		Slots: slices.Clone(DefaultTimeSlots),
	}
}

// Contains reports whether the cell is part of the grid
func (g GridConfig) Contains(key CellKey) bool {
	return slices.Contains(g.Days, key.Day) && slices.Contains(g.Slots, key.Slot)
}

// CellKey identifies a grid cell
type CellKey struct {
	Day  Weekday
	Slot string
}

// Occupant is one selected section meeting in a cell
type Occupant struct {
	Acronym    string
	Capacity   *int
	Code       string
	Discipline string
	Locked     bool
	Room       string
	Type       SectionType
}

// Cell is the ordered list of occupants of a grid cell
type Cell struct {
	Occupants []Occupant
}

// Conflict reports whether two or more sections share the cell
func (c Cell) Conflict() bool {
	return len(c.Occupants) >= 2
}

// ScheduleView is the derived picture of the current selection
type ScheduleView struct {
	Cells        map[CellKey]*Cell
	Complete     bool
	Empty        bool
	Grid         GridConfig
	HasConflicts bool
	Issues       []Issue
	// OffGrid counts selected meetings whose cell is outside the grid
	OffGrid int
}

// Cell returns the cell at (day, slot); missing cells are empty
func (v *ScheduleView) Cell(day Weekday, slot string) Cell {
	if c, ok := v.Cells[CellKey{Day: day, Slot: slot}]; ok {
		return *c
	}
	return Cell{}
}

// ConflictCount returns the number of over-occupied cells
func (v *ScheduleView) ConflictCount() int {
	n := 0
	for _, c := range v.Cells {
		if c.Conflict() {
			n++
		}
	}
	return n
}

// BuildView computes grid occupancy and, when checkCompleteness is set, the
// completeness issues. Occupants are ordered by catalog discipline order,
// then selection order within a discipline, then meeting order.
func BuildView(idx *ScheduleIndex, state *SessionState, grid GridConfig, checkCompleteness bool) *ScheduleView {
	view := &ScheduleView{
		Cells:    make(map[CellKey]*Cell),
		Complete: true,
		Empty:    state.SelectedCount() == 0,
		Grid:     grid,
	}

	for _, d := range idx.Disciplines() {
		acronym := d.Acronym()
		for _, code := range state.Selected[d.Name] {
			sec, ok := d.Section(code)
			if !ok {
				continue
			}
			for _, m := range sec.Meetings {
				key := CellKey{Day: m.Day, Slot: m.Slot.String()}
				if !grid.Contains(key) {
					view.OffGrid++
					continue
				}
				cell, ok := view.Cells[key]
				if !ok {
					cell = &Cell{}
					view.Cells[key] = cell
				}
				cell.Occupants = append(cell.Occupants, Occupant{
					Acronym:    acronym,
					Capacity:   sec.Capacity,
					Code:       code,
					Discipline: d.Name,
					Locked:     state.IsLocked(d.Name, code),
					Room:       m.Room,
					Type:       sec.Type,
				})
				if cell.Conflict() {
					view.HasConflicts = true
				}
			}
		}
	}

	if checkCompleteness {
		view.Issues = CheckCompleteness(idx, state)
		view.Complete = len(view.Issues) == 0
	}
	return view
}

// Status summarizes the view for the status line
func (v *ScheduleView) Status() string {
	switch {
	case v.Empty:
		return "no selection"
	case v.HasConflicts:
		return "conflicts"
	default:
		return "no conflicts"
	}
}
