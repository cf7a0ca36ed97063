package domain

import "slices"

// DefaultPalette is the color cycle assigned to disciplines on first selection
var DefaultPalette = []string{
	"#4E79A7", "#F28E2B", "#E15759", "#76B7B2", "#59A14F",
	"#EDC948", "#B07AA1", "#FF9DA7", "#9C755F", "#BAB0AC",
}

// Timetable is one scheduling session: the read-only index, the live state
// and its history. It is not safe for concurrent use; each user session owns
// its own Timetable.
type Timetable struct {
	history *History
	index   *ScheduleIndex
	palette []string
	state   *SessionState
}

// NewTimetable creates a session over idx with an empty selection
func NewTimetable(idx *ScheduleIndex, palette []string, historyDepth int) *Timetable {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Timetable{
		history: NewHistory(historyDepth),
		index:   idx,
		palette: slices.Clone(palette),
		state:   NewSessionState(),
	}
}

// Index returns the schedule index
func (t *Timetable) Index() *ScheduleIndex { return t.index }

// History returns the undo/redo history
func (t *Timetable) History() *History { return t.history }

// State returns a copy of the live state
func (t *Timetable) State() *SessionState { return t.state.Clone() }

// Peek returns the live state without copying. Callers must not modify it.
func (t *Timetable) Peek() *SessionState { return t.state }

// Detach returns a copy of the session with the current state and an empty
// history, for readers that run outside the owning goroutine
func (t *Timetable) Detach() *Timetable {
	return &Timetable{
		history: NewHistory(1),
		index:   t.index,
		palette: t.palette,
		state:   t.state.Clone(),
	}
}

// CycleColor returns the palette color after the current color of discipline
func (t *Timetable) CycleColor(discipline string) string {
	current := t.state.Colors[discipline]
	i := slices.Index(t.palette, current)
	return t.palette[(i+1)%len(t.palette)]
}

// Do applies fn to a working copy of the state. When the state changed, the
// previous state becomes an undo point. It reports whether anything changed.
func (t *Timetable) Do(fn func(s *SessionState, idx *ScheduleIndex) error) (bool, error) {
	before := t.state
	working := before.Clone()
	if err := fn(working, t.index); err != nil {
		return false, err
	}
	t.assignColors(working)
	if working.Equal(before) {
		return false, nil
	}
	t.history.Snapshot(before)
	t.state = working
	return true, nil
}

// Replace swaps the whole state (e.g. loading a save slot), sanitized against
// the index, recording an undo point
func (t *Timetable) Replace(state *SessionState) bool {
	changed, _ := t.Do(func(s *SessionState, idx *ScheduleIndex) error {
		*s = *state.Sanitize(idx)
		return nil
	})
	return changed
}

// Undo restores the previous state. It reports false when there is nothing
// to undo.
func (t *Timetable) Undo() bool {
	prev, ok := t.history.Undo(t.state)
	if !ok {
		return false
	}
	t.state = prev
	return true
}

// Redo re-applies the last undone state
func (t *Timetable) Redo() bool {
	next, ok := t.history.Redo(t.state)
	if !ok {
		return false
	}
	t.state = next
	return true
}

// ToggleSection selects or deselects a section
func (t *Timetable) ToggleSection(discipline, code string) (bool, error) {
	return t.Do(func(s *SessionState, idx *ScheduleIndex) error {
		return s.ToggleSection(idx, discipline, code)
	})
}

// RemoveSection deselects a section unless it is locked
func (t *Timetable) RemoveSection(discipline, code string) (bool, error) {
	return t.Do(func(s *SessionState, idx *ScheduleIndex) error {
		return s.RemoveSection(idx, discipline, code)
	})
}

// SetDisciplineAll selects or clears a whole discipline
func (t *Timetable) SetDisciplineAll(discipline string, on bool) bool {
	return t.apply(func(s *SessionState, idx *ScheduleIndex) { s.SetDisciplineAll(idx, discipline, on) })
}

// ToggleDiscipline selects a discipline fully or clears it
func (t *Timetable) ToggleDiscipline(discipline string) bool {
	return t.apply(func(s *SessionState, idx *ScheduleIndex) { s.ToggleDiscipline(idx, discipline) })
}

// ToggleLock flips the lock of a selected section
func (t *Timetable) ToggleLock(discipline, code string) bool {
	return t.apply(func(s *SessionState, idx *ScheduleIndex) { s.ToggleLock(idx, discipline, code) })
}

// TogglePriority ranks or unranks a section within its type
func (t *Timetable) TogglePriority(discipline, code string) bool {
	return t.apply(func(s *SessionState, idx *ScheduleIndex) { s.TogglePriority(idx, discipline, code) })
}

// SelectAll selects every section
func (t *Timetable) SelectAll() bool {
	return t.apply(func(s *SessionState, idx *ScheduleIndex) { s.SelectAll(idx) })
}

// ClearAll clears every unlocked section
func (t *Timetable) ClearAll() bool {
	return t.apply(func(s *SessionState, idx *ScheduleIndex) { s.ClearAll(idx) })
}

// ToggleAll selects everything, or clears everything when all is selected
func (t *Timetable) ToggleAll() bool {
	return t.apply(func(s *SessionState, idx *ScheduleIndex) { s.ToggleAll(idx) })
}

// ToggleByType toggles every section of a type across all disciplines
func (t *Timetable) ToggleByType(st SectionType) bool {
	return t.apply(func(s *SessionState, idx *ScheduleIndex) { s.ToggleByType(idx, OfType(st)) })
}

// SetColor overrides a discipline color
func (t *Timetable) SetColor(discipline, color string) bool {
	return t.apply(func(s *SessionState, idx *ScheduleIndex) { s.SetColor(idx, discipline, color) })
}

// MoveDisciplinePriority moves a discipline in the export order
func (t *Timetable) MoveDisciplinePriority(discipline string, delta int) bool {
	return t.apply(func(s *SessionState, idx *ScheduleIndex) { s.MoveDisciplinePriority(idx, discipline, delta) })
}

// View builds the grid view of the live state
func (t *Timetable) View(grid GridConfig, checkCompleteness bool) *ScheduleView {
	return BuildView(t.index, t.state, grid, checkCompleteness)
}

// ExportCSV formats the live state as CSV
func (t *Timetable) ExportCSV() (string, error) {
	return FormatCSV(t.index, t.state)
}

func (t *Timetable) apply(fn func(s *SessionState, idx *ScheduleIndex)) bool {
	changed, _ := t.Do(func(s *SessionState, idx *ScheduleIndex) error {
		fn(s, idx)
		return nil
	})
	return changed
}

// assignColors gives every selected discipline without a color the next
// palette entry, skipping colors already in use where possible
func (t *Timetable) assignColors(s *SessionState) {
	for _, name := range t.index.Names() {
		if _, selected := s.Selected[name]; !selected {
			continue
		}
		if _, colored := s.Colors[name]; colored {
			continue
		}
		s.Colors[name] = t.nextColor(s)
	}
}

func (t *Timetable) nextColor(s *SessionState) string {
	used := make(map[string]bool, len(s.Colors))
	for _, c := range s.Colors {
		used[c] = true
	}
	for _, c := range t.palette {
		if !used[c] {
			return c
		}
	}
	return t.palette[len(s.Colors)%len(t.palette)]
}
