package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"turmas/internal/domain"
	"turmas/internal/services"
)

// ExportCmd exports a save slot
type ExportCmd struct {
	Format string `arg:"" help:"What to produce: csv, image or all" enum:"csv,image,all" default:"csv"`

	Clipboard bool   `help:"Copy to the clipboard instead of writing a file (csv or image only)"`
	Name      string `help:"Base name of the exported files" default:"turmas"`
	Slot      int    `help:"Save slot to export (1-5)" default:"1"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	ctx := context.Background()
	timetable, _, err := cli.loadTimetable(ctx)
	if err != nil {
		return err
	}
	if _, err := cli.Container.SlotService.LoadInto(ctx, e.Slot, timetable.Timetable()); err != nil {
		return err
	}

	results, err := cli.Container.ExportService.Export(ctx, timetable, services.ExportParams{
		BaseName:  e.Name,
		Clipboard: e.Clipboard,
		Display:   cli.Config().DisplayOptions(),
		Format:    services.ExportFormat(e.Format),
	})

	var blocked *domain.ExportBlockedError
	if errors.As(err, &blocked) {
		if blocked.NoSelection {
			return fmt.Errorf("nothing to export: slot %d has no sections selected", e.Slot)
		}
		fmt.Fprintf(os.Stderr, "Slot %d is not ready to export:\n", e.Slot)
		for _, issue := range blocked.Issues {
			fmt.Fprintf(os.Stderr, "  %s\n", issue)
		}
		return domain.ErrExportBlocked
	}
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Clipboard {
			fmt.Printf("%s: copied to clipboard\n", res.Format)
			continue
		}
		fmt.Printf("%s: %s\n", res.Format, res.Path)
	}
	return nil
}
