package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"turmas/internal/domain"
)

const (
	optAcronym     = "acronym"
	optCapacity    = "capacity"
	optExportTools = "export_tools"
	optRoom        = "room"
	optSectionCode = "section_code"
)

// DisplayForm lets the user toggle the display options
type DisplayForm struct {
	Completed bool
	cancelled bool
	chosen    []string
	form      *huh.Form
}

// NewDisplayForm creates the form preloaded with opts
func NewDisplayForm(opts domain.DisplayOptions) *DisplayForm {
	df := &DisplayForm{chosen: displayOptionKeys(opts)}

	df.form = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Display options").
				Description("space to toggle, enter to apply").
				Options(
					huh.NewOption("Section codes", optSectionCode),
					huh.NewOption("Rooms", optRoom),
					huh.NewOption("Capacity", optCapacity),
					huh.NewOption("Acronyms instead of names", optAcronym),
					huh.NewOption("Export tools (completeness check)", optExportTools),
				).
				Value(&df.chosen),
		),
	)
	return df
}

func (df *DisplayForm) Init() tea.Cmd {
	return df.form.Init()
}

func (df *DisplayForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			df.cancelled = true
			df.Completed = true
			return df, nil
		}
	}

	form, cmd := df.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		df.form = f
	}
	if df.form.State == huh.StateCompleted {
		df.Completed = true
		return df, nil
	}
	return df, cmd
}

func (df *DisplayForm) View() string {
	if df.form != nil {
		return df.form.View()
	}
	return ""
}

// IsCompleted reports whether the form is done
func (df *DisplayForm) IsCompleted() bool {
	return df.Completed
}

// Result returns the chosen options and whether they should be applied
func (df *DisplayForm) Result() (domain.DisplayOptions, bool) {
	return displayOptionsFromKeys(df.chosen), !df.cancelled
}

func displayOptionKeys(opts domain.DisplayOptions) []string {
	var keys []string
	if opts.ShowAcronym {
		keys = append(keys, optAcronym)
	}
	if opts.ShowCapacity {
		keys = append(keys, optCapacity)
	}
	if opts.ShowExportTools {
		keys = append(keys, optExportTools)
	}
	if opts.ShowRoom {
		keys = append(keys, optRoom)
	}
	if opts.ShowSectionCode {
		keys = append(keys, optSectionCode)
	}
	return keys
}

func displayOptionsFromKeys(keys []string) domain.DisplayOptions {
	return domain.DisplayOptions{
		ShowAcronym:     slices.Contains(keys, optAcronym),
		ShowCapacity:    slices.Contains(keys, optCapacity),
		ShowExportTools: slices.Contains(keys, optExportTools),
		ShowRoom:        slices.Contains(keys, optRoom),
		ShowSectionCode: slices.Contains(keys, optSectionCode),
	}
}
