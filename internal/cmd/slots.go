package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
)

// SlotsCmd manages save slots
type SlotsCmd struct {
	Del  SlotsDelCmd  `cmd:"del" help:"Empty a save slot"`
	List SlotsListCmd `cmd:"list" help:"List save slots" default:"1"`
	Show SlotsShowCmd `cmd:"show" help:"Show the timetable stored in a slot"`
}

// SlotsListCmd lists the save slots
type SlotsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SlotsListCmd) Run(cli *CLI) error {
	infos, err := cli.Container.SlotService.List(context.Background())
	if err != nil {
		return err
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Slot\tDisciplines\tSaved")
	fmt.Fprintln(w, "────\t───────────\t─────")
	for _, info := range infos {
		if !info.Occupied {
			fmt.Fprintf(w, "%d\t-\t(empty)\n", info.Number)
			continue
		}
		fmt.Fprintf(w, "%d\t%d\t%s\n", info.Number, info.Disciplines, info.SavedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// SlotsShowCmd prints a slot
type SlotsShowCmd struct {
	Slot int `arg:"" help:"Slot number (1-5)"`
}

// Run executes the show command
func (s *SlotsShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	timetable, _, err := cli.loadTimetable(ctx)
	if err != nil {
		return err
	}
	if _, err := cli.Container.SlotService.LoadInto(ctx, s.Slot, timetable.Timetable()); err != nil {
		return err
	}

	fmt.Printf("Slot %d\n\n", s.Slot)
	printTimetable(os.Stdout, timetable)
	return nil
}

// SlotsDelCmd deletes a slot
type SlotsDelCmd struct {
	Slot int `arg:"" help:"Slot number (1-5)"`
}

// Run executes the del command
func (s *SlotsDelCmd) Run(cli *CLI) error {
	if err := cli.Container.SlotService.Delete(context.Background(), s.Slot); err != nil {
		return err
	}
	fmt.Printf("Slot %d deleted\n", s.Slot)
	return nil
}
