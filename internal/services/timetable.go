package services

import (
	"fmt"

	"turmas/internal/domain"
	"turmas/internal/logging"
)

// TimetableService runs named actions against one scheduling session
type TimetableService struct {
	grid      domain.GridConfig
	timetable *domain.Timetable
}

// NewTimetableService creates a new TimetableService
func NewTimetableService(timetable *domain.Timetable, grid domain.GridConfig) *TimetableService {
	return &TimetableService{
		grid:      grid,
		timetable: timetable,
	}
}

// Timetable returns the underlying session
func (s *TimetableService) Timetable() *domain.Timetable {
	return s.timetable
}

// Grid returns the configured grid
func (s *TimetableService) Grid() domain.GridConfig {
	return s.grid
}

// Snapshot returns a service over a detached copy of the current state,
// safe to hand to a background export
func (s *TimetableService) Snapshot() *TimetableService {
	return NewTimetableService(s.timetable.Detach(), s.grid)
}

// View builds the grid view of the current state
func (s *TimetableService) View(checkCompleteness bool) *domain.ScheduleView {
	return s.timetable.View(s.grid, checkCompleteness)
}

// Apply runs the action named in req. It reports whether the state changed.
// References to unknown disciplines or sections are no-ops; deselecting a
// locked section returns domain.ErrLockedSection.
func (s *TimetableService) Apply(req ActionRequest) (bool, error) {
	action := domain.GetActionByName(req.Name)
	if action == nil {
		return false, fmt.Errorf("unknown action %q", req.Name)
	}
	if err := checkTarget(action, req); err != nil {
		return false, err
	}

	logging.Logger.Debug("Applying action",
		"action", req.Name,
		"discipline", req.Discipline,
		"section", req.Section)

	changed, err := s.apply(req)
	if err != nil {
		logging.Logger.Warn("Action refused", "action", req.Name, "discipline", req.Discipline, "section", req.Section, "error", err)
		return false, err
	}

	if changed {
		logging.Logger.Info("Action applied", "action", req.Name, "discipline", req.Discipline, "section", req.Section)
	} else {
		logging.Logger.Debug("Action had no effect", "action", req.Name)
	}
	return changed, nil
}

func (s *TimetableService) apply(req ActionRequest) (bool, error) {
	tt := s.timetable
	switch req.Name {
	case "clear_all":
		return tt.ClearAll(), nil
	case "color":
		return tt.SetColor(req.Discipline, req.Color), nil
	case "lock":
		return tt.ToggleLock(req.Discipline, req.Section), nil
	case "move":
		return tt.MoveDisciplinePriority(req.Discipline, req.Delta), nil
	case "priority":
		return tt.TogglePriority(req.Discipline, req.Section), nil
	case "redo":
		return tt.Redo(), nil
	case "remove":
		return tt.RemoveSection(req.Discipline, req.Section)
	case "select_all":
		return tt.SelectAll(), nil
	case "toggle":
		return tt.ToggleSection(req.Discipline, req.Section)
	case "toggle_all":
		return tt.ToggleAll(), nil
	case "toggle_discipline":
		return tt.ToggleDiscipline(req.Discipline), nil
	case "toggle_type":
		return tt.ToggleByType(req.Type), nil
	case "undo":
		return tt.Undo(), nil
	}
	return false, fmt.Errorf("action %q is not implemented", req.Name)
}

func checkTarget(action *domain.Action, req ActionRequest) error {
	switch action.Target {
	case domain.TargetSection:
		if req.Discipline == "" || req.Section == "" {
			return fmt.Errorf("action %q needs a discipline and a section", action.Name)
		}
	case domain.TargetDiscipline:
		if req.Discipline == "" {
			return fmt.Errorf("action %q needs a discipline", action.Name)
		}
	case domain.TargetType:
		if req.Type == domain.TypeUnclassified {
			return fmt.Errorf("action %q needs a section type", action.Name)
		}
	}
	switch action.Argument {
	case "color":
		if req.Color == "" {
			return fmt.Errorf("action %q needs a color", action.Name)
		}
	case "delta":
		if req.Delta == 0 {
			return fmt.Errorf("action %q needs a non-zero delta", action.Name)
		}
	}
	return nil
}
