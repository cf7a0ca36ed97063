package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"turmas/internal/domain"
	"turmas/internal/logging"
	"turmas/internal/services"
)

// PlanCmd applies one timetable action to a save slot
type PlanCmd struct {
	Action     string `arg:"" help:"Action to apply (toggle, remove, lock, priority, toggle-discipline, toggle-type, toggle-all, select-all, clear-all, color, move)"`
	Discipline string `arg:"" optional:"" help:"Discipline name"`
	Section    string `arg:"" optional:"" help:"Section code (e.g. TP1)"`

	Color string `help:"Color for the color action (e.g. #4E79A7)"`
	Delta int    `help:"Positions to move a discipline in the export order (negative moves it earlier)"`
	Slot  int    `help:"Save slot to change (1-5)" default:"1"`
	Type  string `help:"Section type for toggle-type (T, TP, PL, T/TP, OT)"`
}

// Run executes the plan command
func (p *PlanCmd) Run(cli *CLI) error {
	name := strings.ReplaceAll(p.Action, "-", "_")
	action := domain.GetActionByName(name)
	if action == nil || action.Interactive {
		return fmt.Errorf("unknown action '%s'. Valid actions: %s", p.Action, strings.Join(headlessActionNames(), ", "))
	}

	ctx := context.Background()
	timetable, _, err := cli.loadTimetable(ctx)
	if err != nil {
		return err
	}

	slots := cli.Container.SlotService
	if _, err := slots.LoadInto(ctx, p.Slot, timetable.Timetable()); err != nil && !errors.Is(err, domain.ErrSlotEmpty) {
		return err
	}

	logging.Logger.Debug("Planning", "action", name, "slot", p.Slot)
	changed, err := timetable.Apply(services.ActionRequest{
		Color:      p.Color,
		Delta:      p.Delta,
		Discipline: p.Discipline,
		Name:       name,
		Section:    p.Section,
		Type:       domain.SectionType(strings.ToUpper(p.Type)),
	})
	if err != nil {
		return err
	}

	if !changed {
		fmt.Printf("Slot %d: nothing changed\n", p.Slot)
		return nil
	}

	if err := slots.Save(ctx, p.Slot, timetable.Timetable().State()); err != nil {
		return err
	}

	fmt.Printf("Slot %d: %s applied\n\n", p.Slot, strings.ReplaceAll(name, "_", "-"))
	printTimetable(os.Stdout, timetable)
	return nil
}

func headlessActionNames() []string {
	actions := domain.GetHeadlessActions()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = strings.ReplaceAll(a.Name, "_", "-")
	}
	return names
}

// printTimetable writes the selection, the conflict status and the
// completeness issues of the session
func printTimetable(w io.Writer, svc *services.TimetableService) {
	tt := svc.Timetable()
	state := tt.Peek()

	for _, name := range domain.ExportOrder(state) {
		codes := state.Selected[name]
		line := fmt.Sprintf("  %s: %s", name, strings.Join(codes, ", "))
		var locked []string
		for _, code := range codes {
			if state.IsLocked(name, code) {
				locked = append(locked, code)
			}
		}
		if len(locked) > 0 {
			line += " (locked: " + strings.Join(locked, ", ") + ")"
		}
		fmt.Fprintln(w, line)
	}

	view := svc.View(true)
	status := view.Status()
	if view.HasConflicts {
		status = fmt.Sprintf("%s (%d)", status, view.ConflictCount())
	}
	fmt.Fprintf(w, "\nStatus: %s\n", status)
	if view.OffGrid > 0 {
		fmt.Fprintf(w, "Outside the grid: %d meetings\n", view.OffGrid)
	}

	switch {
	case view.Empty:
	case view.Complete:
		fmt.Fprintln(w, "Ready to export")
	default:
		fmt.Fprintln(w, "Before exporting:")
		for _, issue := range view.Issues {
			fmt.Fprintf(w, "  %s\n", issue)
		}
	}
}
