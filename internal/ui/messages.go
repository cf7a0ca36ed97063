package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"turmas/internal/domain"
	"turmas/internal/services"
)

// TargetAwareMsg is implemented by messages that act on the row under the
// cursor. Messages without a target don't need to implement this.
type TargetAwareMsg interface {
	WithTarget(discipline, section string) tea.Msg
}

// ActionMsg requests running a timetable action
type ActionMsg struct {
	Delta      int
	Discipline string
	Name       string
	Section    string
	Type       domain.SectionType
}

func (m ActionMsg) WithTarget(discipline, section string) tea.Msg {
	m.Discipline = discipline
	m.Section = section
	return m
}

// Request converts the message into a service request
func (m ActionMsg) Request() services.ActionRequest {
	return services.ActionRequest{
		Delta:      m.Delta,
		Discipline: m.Discipline,
		Name:       m.Name,
		Section:    m.Section,
		Type:       m.Type,
	}
}

// CycleColorMsg requests giving a discipline the next palette color
type CycleColorMsg struct {
	Discipline string
}

func (m CycleColorMsg) WithTarget(discipline, _ string) tea.Msg {
	return CycleColorMsg{Discipline: discipline}
}

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowDisplayOptionsMsg requests showing the display options form
type ShowDisplayOptionsMsg struct{}

// ShowSlotFormMsg requests showing the slot picker
type ShowSlotFormMsg struct {
	Mode slotMode
}

// ExportMsg requests an export
type ExportMsg struct {
	Clipboard bool
	Format    services.ExportFormat
}

// exportDoneMsg carries the outcome of an export started by ExportMsg
type exportDoneMsg struct {
	err     error
	results []services.ExportResult
}

// slotDoneMsg carries the outcome of a slot operation
type slotDoneMsg struct {
	err    error
	mode   slotMode
	number int
	// state is set when a slot was loaded
	state *domain.SessionState
}

// slotsListedMsg carries the slot list used to build the slot picker
type slotsListedMsg struct {
	err   error
	mode  slotMode
	slots []services.SlotInfo
}

// clearErrorMsg is sent after the error clear delay to trigger error clearing.
type clearErrorMsg struct{}

// clearNoticeMsg is sent after the notice delay to clear the notice line
type clearNoticeMsg struct{}
