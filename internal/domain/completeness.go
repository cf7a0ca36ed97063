package domain

import "fmt"

// IssueKind classifies a completeness issue
type IssueKind string

const (
	IssueAmbiguousPriority IssueKind = "ambiguous_priority"
	IssueMissing           IssueKind = "missing"
)

// Issue is one reason the selection is not complete
type Issue struct {
	Discipline string
	Kind       IssueKind
	Type       SectionType
}

func (i Issue) String() string {
	if i.Kind == IssueAmbiguousPriority {
		return fmt.Sprintf("%s: ambiguous %s priority", i.Discipline, i.Type)
	}
	return fmt.Sprintf("%s: missing %s", i.Discipline, i.Type)
}

// CheckCompleteness verifies every discipline in the index: each section type
// in its catalog needs exactly one selected section, or several selected
// sections all ranked in the type's priority list. Unclassified sections are
// never required.
func CheckCompleteness(idx *ScheduleIndex, state *SessionState) []Issue {
	var issues []Issue
	for _, d := range idx.Disciplines() {
		issues = append(issues, disciplineIssues(d, state)...)
	}
	return issues
}

func disciplineIssues(d *Discipline, state *SessionState) []Issue {
	var issues []Issue
	for _, t := range d.Types() {
		selected := state.SelectedOfType(d, t)
		switch {
		case len(selected) == 0:
			issues = append(issues, Issue{Discipline: d.Name, Kind: IssueMissing, Type: t})
		case len(selected) > 1:
			for _, code := range selected {
				if state.PriorityRank(d.Name, t, code) < 0 {
					issues = append(issues, Issue{Discipline: d.Name, Kind: IssueAmbiguousPriority, Type: t})
					break
				}
			}
		}
	}
	return issues
}
