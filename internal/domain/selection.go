package domain

import (
	"slices"
	"sort"
)

// Selection primitives. They never record history; Timetable wraps them with
// snapshots. References to disciplines or sections unknown to the index are
// ignored.

// ToggleSection selects code when unselected and deselects it otherwise.
// Deselecting a locked section fails with ErrLockedSection and leaves the
// state unchanged.
func (s *SessionState) ToggleSection(idx *ScheduleIndex, discipline, code string) error {
	sec, ok := idx.Section(discipline, code)
	if !ok {
		return nil
	}
	if !s.IsSelected(discipline, code) {
		s.selectCode(discipline, code)
		return nil
	}
	if s.IsLocked(discipline, code) {
		return ErrLockedSection
	}
	s.deselectCode(discipline, code, sec.Type)
	return nil
}

// RemoveSection deselects code if it is selected. Locked sections are
// refused with ErrLockedSection.
func (s *SessionState) RemoveSection(idx *ScheduleIndex, discipline, code string) error {
	sec, ok := idx.Section(discipline, code)
	if !ok || !s.IsSelected(discipline, code) {
		return nil
	}
	if s.IsLocked(discipline, code) {
		return ErrLockedSection
	}
	s.deselectCode(discipline, code, sec.Type)
	return nil
}

// SetDisciplineAll selects every section of the discipline when on is true.
// Otherwise only locked sections stay selected and the discipline's
// priorities are cleared.
func (s *SessionState) SetDisciplineAll(idx *ScheduleIndex, discipline string, on bool) {
	d, ok := idx.Discipline(discipline)
	if !ok {
		return
	}
	if on {
		for _, code := range d.Codes() {
			s.selectCode(discipline, code)
		}
		return
	}
	s.clearDiscipline(discipline)
}

func (s *SessionState) clearDiscipline(discipline string) {
	var kept []string
	for _, code := range s.Selected[discipline] {
		if s.IsLocked(discipline, code) {
			kept = append(kept, code)
		}
	}
	if len(kept) == 0 {
		delete(s.Selected, discipline)
	} else {
		s.Selected[discipline] = kept
	}
	delete(s.Priorities, discipline)
}

// ToggleLock flips the lock of a selected section. Unselected sections cannot
// be locked.
func (s *SessionState) ToggleLock(idx *ScheduleIndex, discipline, code string) {
	if _, ok := idx.Section(discipline, code); !ok || !s.IsSelected(discipline, code) {
		return
	}
	if s.IsLocked(discipline, code) {
		s.unlockCode(discipline, code)
		return
	}
	s.lockCode(discipline, code)
}

// TogglePriority appends code to its type's priority list, or removes it when
// already ranked. Position 0 is the highest priority. It only applies when
// more than one section of that type is selected.
func (s *SessionState) TogglePriority(idx *ScheduleIndex, discipline, code string) {
	d, ok := idx.Discipline(discipline)
	if !ok {
		return
	}
	sec, ok := d.Section(code)
	if !ok || !s.IsSelected(discipline, code) || sec.Type == TypeUnclassified {
		return
	}
	if len(s.SelectedOfType(d, sec.Type)) <= 1 {
		return
	}
	if s.PriorityRank(discipline, sec.Type, code) >= 0 {
		s.prunePriority(discipline, sec.Type, code)
		return
	}
	if s.Priorities[discipline] == nil {
		s.Priorities[discipline] = make(map[SectionType][]string)
	}
	s.Priorities[discipline][sec.Type] = append(s.Priorities[discipline][sec.Type], code)
}

// SetColor overrides the display color of a discipline. An empty color
// removes it.
func (s *SessionState) SetColor(idx *ScheduleIndex, discipline, color string) {
	if _, ok := idx.Discipline(discipline); !ok {
		return
	}
	if color == "" {
		delete(s.Colors, discipline)
		return
	}
	s.Colors[discipline] = color
}

// MoveDisciplinePriority shifts a discipline within the export order by delta
// positions (negative moves it up). The order is first completed with every
// selected discipline not yet listed, sorted by name.
func (s *SessionState) MoveDisciplinePriority(idx *ScheduleIndex, discipline string, delta int) {
	if _, ok := idx.Discipline(discipline); !ok {
		return
	}
	s.DisciplinePriority = s.completedPriority(discipline)

	from := slices.Index(s.DisciplinePriority, discipline)
	to := min(max(from+delta, 0), len(s.DisciplinePriority)-1)
	if from == to {
		return
	}
	s.DisciplinePriority = slices.Delete(s.DisciplinePriority, from, from+1)
	s.DisciplinePriority = slices.Insert(s.DisciplinePriority, to, discipline)
}

func (s *SessionState) completedPriority(extra string) []string {
	order := slices.Clone(s.DisciplinePriority)
	var missing []string
	for name := range s.Selected {
		if !slices.Contains(order, name) {
			missing = append(missing, name)
		}
	}
	if extra != "" && !slices.Contains(order, extra) && !slices.Contains(missing, extra) {
		missing = append(missing, extra)
	}
	sort.Strings(missing)
	return append(order, missing...)
}
