package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"turmas/internal/logging"
	"turmas/internal/services"
)

// slotMode is the operation a slot picker was opened for
type slotMode int

const (
	slotSave slotMode = iota
	slotLoad
	slotDelete
)

func (m slotMode) String() string {
	switch m {
	case slotLoad:
		return "load"
	case slotDelete:
		return "delete"
	default:
		return "save"
	}
}

func (m slotMode) title() string {
	switch m {
	case slotLoad:
		return "Load from slot"
	case slotDelete:
		return "Delete slot"
	default:
		return "Save to slot"
	}
}

// SlotFormResult contains the result of the slot picker
type SlotFormResult struct {
	Cancelled bool
	Mode      slotMode
	Number    int
}

// SlotForm is a Bubble Tea component for picking a save slot
type SlotForm struct {
	Completed bool
	confirm   bool
	form      *huh.Form
	result    SlotFormResult
	slots     map[int]services.SlotInfo
}

// NewSlotForm creates the picker for mode over the listed slots
func NewSlotForm(mode slotMode, slots []services.SlotInfo) *SlotForm {
	sf := &SlotForm{
		confirm: true,
		result:  SlotFormResult{Mode: mode, Number: firstSlot(mode, slots)},
		slots:   make(map[int]services.SlotInfo, len(slots)),
	}

	options := make([]huh.Option[int], 0, len(slots))
	for _, info := range slots {
		sf.slots[info.Number] = info
		options = append(options, huh.NewOption(slotLabel(info), info.Number))
	}

	logging.Logger.Debug("Creating slot form", "mode", mode, "slots", len(slots))

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(mode.title()).
				Options(options...).
				Value(&sf.result.Number).
				Validate(func(n int) error {
					if mode != slotSave && !sf.slots[n].Occupied {
						return fmt.Errorf("slot %d is empty", n)
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().
				TitleFunc(func() string {
					if mode == slotDelete {
						return fmt.Sprintf("Delete slot %d?", sf.result.Number)
					}
					return fmt.Sprintf("Overwrite slot %d?", sf.result.Number)
				}, &sf.result.Number).
				Value(&sf.confirm).
				Affirmative("Yes").
				Negative("No"),
		).WithHideFunc(func() bool {
			// only overwriting or deleting a saved selection asks
			return mode == slotLoad || !sf.slots[sf.result.Number].Occupied
		}),
	)

	return sf
}

func (sf *SlotForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SlotForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.Completed = true
		sf.result.Cancelled = !sf.confirm
		return sf, nil
	}

	return sf, cmd
}

func (sf *SlotForm) View() string {
	if sf.form != nil {
		return sf.form.View()
	}
	return ""
}

// IsCompleted reports whether the picker is done
func (sf *SlotForm) IsCompleted() bool {
	return sf.Completed
}

// Result returns the form result
func (sf *SlotForm) Result() SlotFormResult {
	return sf.result
}

// firstSlot preselects the first slot that makes sense for mode
func firstSlot(mode slotMode, slots []services.SlotInfo) int {
	for _, info := range slots {
		if (mode == slotSave) != info.Occupied {
			return info.Number
		}
	}
	return 1
}

func slotLabel(info services.SlotInfo) string {
	if !info.Occupied {
		return fmt.Sprintf("Slot %d  (empty)", info.Number)
	}
	label := fmt.Sprintf("Slot %d  %d disciplines", info.Number, info.Disciplines)
	if !info.SavedAt.IsZero() {
		label += "  " + info.SavedAt.Local().Format("2006-01-02 15:04")
	}
	return label
}
