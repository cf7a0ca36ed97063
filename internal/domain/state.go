package domain

import (
	"maps"
	"slices"
)

// SessionState is the user's whole arrangement: selection, locks,
// priorities, colors and discipline order. It is the unit captured by
// history snapshots and save slots.
//
// Invariants kept by every mutation:
//   - selected codes are unique per discipline
//   - locked[d] is a subset of selected[d]
//   - priorities[d][t] only holds selected codes of type t
//   - empty entries are removed
type SessionState struct {
	Colors             map[string]string                   `json:"colors,omitempty"`
	DisciplinePriority []string                            `json:"discipline_priority,omitempty"`
	Locked             map[string][]string                 `json:"locked,omitempty"`
	Priorities         map[string]map[SectionType][]string `json:"priorities,omitempty"`
	Selected           map[string][]string                 `json:"selected,omitempty"`
}

// NewSessionState returns an empty state
func NewSessionState() *SessionState {
	return &SessionState{
		Colors:     make(map[string]string),
		Locked:     make(map[string][]string),
		Priorities: make(map[string]map[SectionType][]string),
		Selected:   make(map[string][]string),
	}
}

// Clone returns a deep copy that shares no memory with s
func (s *SessionState) Clone() *SessionState {
	out := NewSessionState()
	if s == nil {
		return out
	}
	maps.Copy(out.Colors, s.Colors)
	for d, codes := range s.Selected {
		out.Selected[d] = slices.Clone(codes)
	}
	for d, codes := range s.Locked {
		out.Locked[d] = slices.Clone(codes)
	}
	for d, byType := range s.Priorities {
		inner := make(map[SectionType][]string, len(byType))
		for t, codes := range byType {
			inner[t] = slices.Clone(codes)
		}
		out.Priorities[d] = inner
	}
	out.DisciplinePriority = slices.Clone(s.DisciplinePriority)
	return out
}

// Equal reports whether two states describe the same arrangement. Nil and
// empty collections compare equal.
func (s *SessionState) Equal(other *SessionState) bool {
	a, b := s.Clone(), other.Clone()
	a.normalize()
	b.normalize()
	if !maps.Equal(a.Colors, b.Colors) || !slices.Equal(a.DisciplinePriority, b.DisciplinePriority) {
		return false
	}
	if !maps.EqualFunc(a.Selected, b.Selected, slices.Equal) || !maps.EqualFunc(a.Locked, b.Locked, slices.Equal) {
		return false
	}
	return maps.EqualFunc(a.Priorities, b.Priorities, func(x, y map[SectionType][]string) bool {
		return maps.EqualFunc(x, y, slices.Equal)
	})
}

// IsSelected reports whether the section is selected
func (s *SessionState) IsSelected(discipline, code string) bool {
	return slices.Contains(s.Selected[discipline], code)
}

// IsLocked reports whether the section is locked
func (s *SessionState) IsLocked(discipline, code string) bool {
	return slices.Contains(s.Locked[discipline], code)
}

// PriorityRank returns the 0-based rank of the code among its type, or -1
func (s *SessionState) PriorityRank(discipline string, t SectionType, code string) int {
	return slices.Index(s.Priorities[discipline][t], code)
}

// SelectedCount returns the number of selected sections over all disciplines
func (s *SessionState) SelectedCount() int {
	n := 0
	for _, codes := range s.Selected {
		n += len(codes)
	}
	return n
}

// SelectedOfType returns the selected codes of discipline d whose type is t,
// in selection order
func (s *SessionState) SelectedOfType(d *Discipline, t SectionType) []string {
	var out []string
	for _, code := range s.Selected[d.Name] {
		if sec, ok := d.Section(code); ok && sec.Type == t {
			out = append(out, code)
		}
	}
	return out
}

func (s *SessionState) selectCode(discipline, code string) bool {
	if s.IsSelected(discipline, code) {
		return false
	}
	s.Selected[discipline] = append(s.Selected[discipline], code)
	return true
}

func (s *SessionState) deselectCode(discipline, code string, t SectionType) {
	s.Selected[discipline] = removeCode(s.Selected[discipline], code)
	if len(s.Selected[discipline]) == 0 {
		delete(s.Selected, discipline)
	}
	s.unlockCode(discipline, code)
	s.prunePriority(discipline, t, code)
}

func (s *SessionState) lockCode(discipline, code string) {
	if !s.IsLocked(discipline, code) {
		s.Locked[discipline] = append(s.Locked[discipline], code)
	}
}

func (s *SessionState) unlockCode(discipline, code string) {
	s.Locked[discipline] = removeCode(s.Locked[discipline], code)
	if len(s.Locked[discipline]) == 0 {
		delete(s.Locked, discipline)
	}
}

func (s *SessionState) prunePriority(discipline string, t SectionType, code string) {
	byType, ok := s.Priorities[discipline]
	if !ok {
		return
	}
	byType[t] = removeCode(byType[t], code)
	if len(byType[t]) == 0 {
		delete(byType, t)
	}
	if len(byType) == 0 {
		delete(s.Priorities, discipline)
	}
}

// Sanitize returns a copy of s restricted to what exists in idx: unknown
// disciplines and sections are dropped, duplicate codes collapsed, stale
// locks and priorities pruned.
func (s *SessionState) Sanitize(idx *ScheduleIndex) *SessionState {
	out := NewSessionState()
	if s == nil {
		return out
	}
	for _, d := range idx.Disciplines() {
		for _, code := range s.Selected[d.Name] {
			if _, ok := d.Section(code); ok {
				out.selectCode(d.Name, code)
			}
		}
		for _, code := range s.Locked[d.Name] {
			if out.IsSelected(d.Name, code) {
				out.lockCode(d.Name, code)
			}
		}
		for t, codes := range s.Priorities[d.Name] {
			for _, code := range codes {
				sec, ok := d.Section(code)
				if !ok || sec.Type != t || !out.IsSelected(d.Name, code) {
					continue
				}
				if out.PriorityRank(d.Name, t, code) >= 0 {
					continue
				}
				if out.Priorities[d.Name] == nil {
					out.Priorities[d.Name] = make(map[SectionType][]string)
				}
				out.Priorities[d.Name][t] = append(out.Priorities[d.Name][t], code)
			}
		}
		if color, ok := s.Colors[d.Name]; ok && color != "" {
			out.Colors[d.Name] = color
		}
	}
	for _, name := range s.DisciplinePriority {
		if _, ok := idx.Discipline(name); ok && !slices.Contains(out.DisciplinePriority, name) {
			out.DisciplinePriority = append(out.DisciplinePriority, name)
		}
	}
	return out
}

// normalize removes empty entries so structurally equal states compare equal
func (s *SessionState) normalize() {
	for d, codes := range s.Selected {
		if len(codes) == 0 {
			delete(s.Selected, d)
		}
	}
	for d, codes := range s.Locked {
		if len(codes) == 0 {
			delete(s.Locked, d)
		}
	}
	for d, byType := range s.Priorities {
		for t, codes := range byType {
			if len(codes) == 0 {
				delete(byType, t)
			}
		}
		if len(byType) == 0 {
			delete(s.Priorities, d)
		}
	}
	for d, c := range s.Colors {
		if c == "" {
			delete(s.Colors, d)
		}
	}
	if len(s.DisciplinePriority) == 0 {
		s.DisciplinePriority = nil
	}
}

func removeCode(codes []string, code string) []string {
	return slices.DeleteFunc(codes, func(c string) bool { return c == code })
}
