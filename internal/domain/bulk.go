package domain

import (
	"slices"
	"sort"
)

// SectionPredicate selects the sections a bulk operation applies to
type SectionPredicate func(d *Discipline, s *Section) bool

// OfType matches sections of the given type
func OfType(t SectionType) SectionPredicate {
	return func(_ *Discipline, s *Section) bool {
		return s.Type == t
	}
}

// InDiscipline matches every section of one discipline
func InDiscipline(name string) SectionPredicate {
	return func(d *Discipline, _ *Section) bool {
		return d.Name == name
	}
}

// SelectAll selects every section of every discipline
func (s *SessionState) SelectAll(idx *ScheduleIndex) {
	for _, name := range idx.Names() {
		s.SetDisciplineAll(idx, name, true)
	}
}

// ClearAll deselects everything except locked sections and drops the
// priorities of every cleared discipline
func (s *SessionState) ClearAll(idx *ScheduleIndex) {
	names := make([]string, 0, len(s.Selected)+len(s.Priorities))
	for name := range s.Selected {
		names = append(names, name)
	}
	for name := range s.Priorities {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		s.clearDiscipline(name)
	}
}

// ToggleByType is all-or-nothing over the sections matching pred across the
// whole index: when all of them are selected, the unlocked ones are
// deselected; otherwise all of them are selected. Locked sections are never
// deselected.
func (s *SessionState) ToggleByType(idx *ScheduleIndex, pred SectionPredicate) {
	type pair struct {
		d   *Discipline
		sec *Section
	}
	var matches []pair
	allSelected := true
	for _, d := range idx.Disciplines() {
		for _, sec := range d.Sections() {
			if !pred(d, sec) {
				continue
			}
			matches = append(matches, pair{d, sec})
			if !s.IsSelected(d.Name, sec.Code) {
				allSelected = false
			}
		}
	}
	if len(matches) == 0 {
		return
	}
	for _, m := range matches {
		if !allSelected {
			s.selectCode(m.d.Name, m.sec.Code)
			continue
		}
		if !s.IsLocked(m.d.Name, m.sec.Code) {
			s.deselectCode(m.d.Name, m.sec.Code, m.sec.Type)
		}
	}
}

// DisciplineFullySelected reports whether every catalog section of the
// discipline is selected. The selected set must equal the catalog set, not
// just match its size. A discipline without sections is vacuously complete.
func (s *SessionState) DisciplineFullySelected(d *Discipline) bool {
	selected := s.Selected[d.Name]
	if len(selected) != d.Len() {
		return false
	}
	for _, code := range d.Codes() {
		if !slices.Contains(selected, code) {
			return false
		}
	}
	return true
}

// AllSelected reports whether every discipline in the index is fully
// selected
func (s *SessionState) AllSelected(idx *ScheduleIndex) bool {
	for _, d := range idx.Disciplines() {
		if !s.DisciplineFullySelected(d) {
			return false
		}
	}
	return true
}

// ToggleAll clears everything when every discipline is fully selected and
// selects everything otherwise
func (s *SessionState) ToggleAll(idx *ScheduleIndex) {
	if s.AllSelected(idx) {
		s.ClearAll(idx)
		return
	}
	s.SelectAll(idx)
}

// ToggleDiscipline is SetDisciplineAll driven by the discipline's current
// state
func (s *SessionState) ToggleDiscipline(idx *ScheduleIndex, discipline string) {
	d, ok := idx.Discipline(discipline)
	if !ok {
		return
	}
	s.SetDisciplineAll(idx, discipline, !s.DisciplineFullySelected(d))
}
