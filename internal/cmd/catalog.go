package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"turmas/internal/domain"
)

// CatalogCmd lists the schedule document
type CatalogCmd struct {
	Filter string `help:"Only show disciplines whose name or acronym contains this text (accents ignored)"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type catalogMeeting struct {
	Day  string `json:"day"`
	Room string `json:"room,omitempty"`
	Slot string `json:"slot"`
}

type catalogSection struct {
	Capacity *int             `json:"capacity,omitempty"`
	Code     string           `json:"code"`
	Meetings []catalogMeeting `json:"meetings"`
	Type     string           `json:"type"`
}

type catalogDiscipline struct {
	Acronym  string           `json:"acronym"`
	ClassID  string           `json:"class_id"`
	Name     string           `json:"name"`
	Sections []catalogSection `json:"sections"`
}

// Run executes the catalog command
func (c *CatalogCmd) Run(cli *CLI) error {
	result, err := cli.Container.CatalogService.Load(context.Background())
	if err != nil {
		return err
	}

	disciplines := c.collect(result.Index)

	if c.Format == "json" {
		data, err := json.MarshalIndent(disciplines, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Source: %s", result.Source)
	if result.FromCache {
		fmt.Print(" (cached copy)")
	}
	fmt.Printf("\n\n")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Discipline\tClass\tSection\tType\tMeetings")
	fmt.Fprintln(w, "──────────\t─────\t───────\t────\t────────")
	for _, d := range disciplines {
		name := d.Name
		if d.Acronym != "" {
			name += " (" + d.Acronym + ")"
		}
		for i, sec := range d.Sections {
			if i > 0 {
				name = ""
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, d.ClassID, sec.Code, sectionTypeLabel(sec.Type), formatMeetings(sec))
		}
	}
	w.Flush()

	if len(result.Problems) > 0 {
		fmt.Fprintf(os.Stderr, "\n%d records skipped:\n", len(result.Problems))
		for _, p := range result.Problems {
			fmt.Fprintf(os.Stderr, "  %s\n", p)
		}
	}
	return nil
}

func (c *CatalogCmd) collect(idx *domain.ScheduleIndex) []catalogDiscipline {
	filter := domain.SearchKey(c.Filter)

	out := []catalogDiscipline{}
	for _, d := range idx.Disciplines() {
		acronym := d.Acronym()
		if filter != "" &&
			!strings.Contains(domain.SearchKey(d.Name), filter) &&
			!strings.Contains(domain.SearchKey(acronym), filter) {
			continue
		}

		entry := catalogDiscipline{
			Acronym: acronym,
			ClassID: d.ClassID,
			Name:    d.Name,
		}
		for _, sec := range d.Sections() {
			cs := catalogSection{
				Capacity: sec.Capacity,
				Code:     sec.Code,
				Meetings: make([]catalogMeeting, 0, len(sec.Meetings)),
				Type:     string(sec.Type),
			}
			for _, m := range sec.Meetings {
				cs.Meetings = append(cs.Meetings, catalogMeeting{
					Day:  m.Day.Label(),
					Room: m.Room,
					Slot: m.Slot.String(),
				})
			}
			entry.Sections = append(entry.Sections, cs)
		}
		out = append(out, entry)
	}
	return out
}

func sectionTypeLabel(t string) string {
	if t == "" {
		return "-"
	}
	return t
}

func formatMeetings(sec catalogSection) string {
	parts := make([]string, 0, len(sec.Meetings))
	for _, m := range sec.Meetings {
		part := m.Day + " " + m.Slot
		if m.Room != "" {
			part += " " + m.Room
		}
		parts = append(parts, part)
	}
	out := strings.Join(parts, ", ")
	if sec.Capacity != nil {
		out += fmt.Sprintf(" (%d places)", *sec.Capacity)
	}
	return out
}
