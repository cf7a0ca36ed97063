package domain

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// CSVHeader is the fixed column layout of the export
var CSVHeader = []string{"CLASS", "PL", "TP", "T", "T/TP"}

// CodeSeparator joins several section numbers in one CSV cell
const CodeSeparator = " # "

// csvColumn maps a section type to its column; OT shares the T/TP column
var csvColumn = map[SectionType]int{
	TypePractical:   1,
	TypeTheoretical: 2,
	TypeLecture:     3,
	TypeLectureOrTP: 4,
	TypeOther:       4,
}

// FormatCSV renders one row per selected discipline with a class id, ordered
// by the discipline priority list and then by name. It fails with an
// *ExportBlockedError when nothing is selected or the selection is
// incomplete.
func FormatCSV(idx *ScheduleIndex, state *SessionState) (string, error) {
	if state.SelectedCount() == 0 {
		return "", &ExportBlockedError{NoSelection: true}
	}
	if issues := CheckCompleteness(idx, state); len(issues) > 0 {
		return "", &ExportBlockedError{Issues: issues}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportIO, err)
	}
	for _, name := range ExportOrder(state) {
		d, ok := idx.Discipline(name)
		if !ok || d.ClassID == "" {
			continue
		}
		if err := w.Write(exportRow(d, state)); err != nil {
			return "", fmt.Errorf("%w: %w", ErrExportIO, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportIO, err)
	}
	return buf.String(), nil
}

// ExportOrder returns the selected disciplines sorted by their position in
// the discipline priority list; unlisted ones follow in name order
func ExportOrder(state *SessionState) []string {
	names := make([]string, 0, len(state.Selected))
	for name := range state.Selected {
		names = append(names, name)
	}
	rank := func(name string) int {
		if i := slices.Index(state.DisciplinePriority, name); i >= 0 {
			return i
		}
		return len(state.DisciplinePriority)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	return names
}

func exportRow(d *Discipline, state *SessionState) []string {
	row := make([]string, len(CSVHeader))
	row[0] = d.ClassID

	columns := make([][]string, len(CSVHeader))
	for _, t := range exportTypes(d, state) {
		col, ok := csvColumn[t]
		if !ok {
			continue
		}
		for _, code := range rankedCodes(d, state, t) {
			columns[col] = append(columns[col], SectionNumber(code))
		}
	}
	for col := 1; col < len(row); col++ {
		row[col] = strings.Join(columns[col], CodeSeparator)
	}
	return row
}

// exportTypes lists the types of the selected sections in a fixed order so
// a shared column is filled deterministically
func exportTypes(d *Discipline, state *SessionState) []SectionType {
	order := []SectionType{TypePractical, TypeTheoretical, TypeLecture, TypeLectureOrTP, TypeOther}
	var out []SectionType
	for _, t := range order {
		if len(state.SelectedOfType(d, t)) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// rankedCodes orders the selected codes of a type by priority rank; codes
// without a rank come first in selection order
func rankedCodes(d *Discipline, state *SessionState, t SectionType) []string {
	codes := state.SelectedOfType(d, t)
	sort.SliceStable(codes, func(i, j int) bool {
		return state.PriorityRank(d.Name, t, codes[i]) < state.PriorityRank(d.Name, t, codes[j])
	})
	return codes
}
