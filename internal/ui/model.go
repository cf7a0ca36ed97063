package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"turmas/internal/config"
	"turmas/internal/domain"
	"turmas/internal/logging"
	"turmas/internal/services"
	"turmas/internal/theme"
)

type uiState int

const (
	stateTimetable uiState = iota
	stateCommandPalette
	stateDisplayOptions
	stateHelp
	stateMessage
	stateSlotForm
)

// Header: 1 line, status bar: 3 lines
const (
	headerLines    = 1
	statusBarLines = 3
	minListWidth   = 30
)

// ModelOptions configures the timetable model
type ModelOptions struct {
	DevMode         bool
	Display         domain.DisplayOptions
	ErrorClearDelay time.Duration
	ExportBaseName  string
	Keys            config.KeyBindingsConfig
	// OnDisplayChange persists display options changed from the UI
	OnDisplayChange func(domain.DisplayOptions) error
	// Problems are catalog records skipped while loading
	Problems []string
}

// Model is the root Bubble Tea model of a scheduling session
type Model struct {
	commandPalette  *CommandPalette
	devMode         bool
	dialog          *Dialog // Active dialog (help, forms, messages)
	disciplineList  *DisciplineList
	display         domain.DisplayOptions
	errorManager    *ErrorManager
	exportBaseName  string
	exportService   *services.ExportService // nil disables export
	height          int
	help            help.Model
	keys            KeyMap
	notice          string
	noticeDelay     time.Duration
	onDisplayChange func(domain.DisplayOptions) error
	problems        []string
	slotService     *services.SlotService // nil disables save slots
	state           uiState
	timetable       *services.TimetableService
	width           int
}

// NewModel creates the model for one scheduling session
func NewModel(
	timetable *services.TimetableService,
	slotService *services.SlotService,
	exportService *services.ExportService,
	opts ModelOptions,
) *Model {
	keys := NewKeyMap(opts.Keys)

	h := help.New()
	h.ShortSeparator = " • "

	return &Model{
		devMode:         opts.DevMode,
		disciplineList:  NewDisciplineList(timetable.Timetable().Index(), &keys),
		display:         opts.Display,
		errorManager:    NewErrorManager(opts.ErrorClearDelay),
		exportBaseName:  opts.ExportBaseName,
		exportService:   exportService,
		help:            h,
		keys:            keys,
		noticeDelay:     opts.ErrorClearDelay,
		onDisplayChange: opts.OnDisplayChange,
		problems:        opts.Problems,
		slotService:     slotService,
		state:           stateTimetable,
		timetable:       timetable,
	}
}

func (m *Model) Init() tea.Cmd {
	if len(m.problems) == 0 {
		return nil
	}
	logging.Logger.Warn("Catalog loaded with skipped records", "count", len(m.problems))
	return m.setNotice(fmt.Sprintf("%d catalog records skipped (see log)", len(m.problems)))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil
	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	case exportDoneMsg:
		return m, m.handleExportDone(msg)
	case slotsListedMsg:
		return m.handleSlotsListed(msg)
	case slotDoneMsg:
		return m.handleSlotDone(msg)
	}

	switch m.state {
	case stateTimetable:
		return m.updateTimetable(msg)
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateDisplayOptions, stateHelp, stateMessage, stateSlotForm:
		return m.updateDialog(msg)
	}
	return m, nil
}

func (m *Model) updateTimetable(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit
	case ShowHelpMsg:
		return m.openDialog(stateHelp, "Help", NewHelpScreen(&m.keys))
	case ShowDisplayOptionsMsg:
		return m.openDialog(stateDisplayOptions, "Display Options", NewDisplayForm(m.display))
	case ShowSlotFormMsg:
		return m, m.listSlotsCmd(msg.Mode)
	case ActionMsg:
		return m, m.applyAction(msg)
	case CycleColorMsg:
		if msg.Discipline == "" {
			return m, nil
		}
		return m, m.applyRequest(services.ActionRequest{
			Color:      m.timetable.Timetable().CycleColor(msg.Discipline),
			Discipline: msg.Discipline,
			Name:       "color",
		})
	case ExportMsg:
		return m.startExport(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Application.ForceQuit) {
		return m, tea.Quit
	}

	// Navigation and the filter input come first
	if consumed, cmd := m.disciplineList.Update(msg); consumed {
		return m, cmd
	}

	if key.Matches(msg, m.keys.Application.CommandPalette) {
		discipline, section := m.disciplineList.Target()
		m.commandPalette = NewCommandPalette(discipline, section, m.keys)
		m.state = stateCommandPalette

		initCmd := m.commandPalette.Init()
		_, sizeCmd := m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd)
	}

	for _, def := range AllKeyDefinitions {
		if def.Msg == nil || !key.Matches(msg, m.keys.Binding(def.Name)) {
			continue
		}
		if dispatched := m.dispatcher().Dispatch(def); dispatched != nil {
			return m.updateTimetable(dispatched)
		}
	}
	return m, nil
}

func (m *Model) dispatcher() *ActionDispatcher {
	return NewActionDispatcher(m.disciplineList.Target())
}

func (m *Model) updateCommandPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)

	if !m.commandPalette.Completed {
		return m, cmd
	}

	result := m.commandPalette.Result
	m.state = stateTimetable
	m.commandPalette = nil
	if result.Cancelled || result.Action == nil {
		return m, nil
	}

	if actionMsg := m.dispatcher().Dispatch(*result.Action); actionMsg != nil {
		return m.updateTimetable(actionMsg)
	}
	return m, nil
}

// openDialog shows content in a dialog and sends it the current window size
func (m *Model) openDialog(state uiState, title string, content tea.Model) (tea.Model, tea.Cmd) {
	m.dialog = NewDialog(title, content, m.devMode)
	m.state = state

	initCmd := m.dialog.Init()
	updated, sizeCmd := m.dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.dialog = updated.(*Dialog)
	return m, tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.dialog.Update(msg)
	m.dialog = updated.(*Dialog)
	if !m.dialog.Completed() {
		return m, cmd
	}

	content := m.dialog.Content()
	m.dialog = nil
	m.state = stateTimetable

	switch c := content.(type) {
	case *SlotForm:
		return m, m.runSlotCmd(c.Result())
	case *DisplayForm:
		return m, m.applyDisplayOptions(c)
	}
	return m, nil
}

// showMessage opens a dialog that must be dismissed
func (m *Model) showMessage(title, summary string, items ...string) (tea.Model, tea.Cmd) {
	return m.openDialog(stateMessage, title, NewMessageDialog(summary, items...))
}

// applyAction runs an action against the session. On a discipline header a
// toggle applies to the whole discipline.
func (m *Model) applyAction(msg ActionMsg) tea.Cmd {
	if msg.Name == "toggle" && msg.Section == "" && msg.Discipline != "" {
		msg.Name = "toggle_discipline"
	}
	return m.applyRequest(msg.Request())
}

func (m *Model) applyRequest(req services.ActionRequest) tea.Cmd {
	changed, err := m.timetable.Apply(req)
	if err != nil {
		return m.errorManager.SetError(err)
	}
	if !changed {
		switch req.Name {
		case "undo":
			return m.setNotice("nothing to undo")
		case "redo":
			return m.setNotice("nothing to redo")
		}
	}
	return nil
}

func (m *Model) applyDisplayOptions(form *DisplayForm) tea.Cmd {
	opts, ok := form.Result()
	if !ok || opts == m.display {
		return nil
	}
	m.display = opts
	logging.Logger.Info("Display options changed", "options", fmt.Sprintf("%+v", opts))

	if m.onDisplayChange != nil {
		if err := m.onDisplayChange(opts); err != nil {
			logging.Logger.Warn("Failed to persist display options", "error", err)
			return m.errorManager.SetError(fmt.Errorf("failed to save display options: %w", err))
		}
	}
	return nil
}

// startExport validates the CSV on the spot, so a blocked export never
// reaches the background command, then exports a detached copy of the state
func (m *Model) startExport(msg ExportMsg) (tea.Model, tea.Cmd) {
	if m.exportService == nil {
		return m, m.errorManager.SetError(errors.New("export is not available in this session"))
	}
	if msg.Format != services.ExportImage {
		if _, err := m.timetable.Timetable().ExportCSV(); err != nil {
			return m.showBlockedExport(err)
		}
	}

	snapshot := m.timetable.Snapshot()
	params := services.ExportParams{
		BaseName:  m.exportBaseName,
		Clipboard: msg.Clipboard,
		Display:   m.display,
		Format:    msg.Format,
	}
	exportService := m.exportService
	return m, func() tea.Msg {
		results, err := exportService.Export(context.Background(), snapshot, params)
		return exportDoneMsg{err: err, results: results}
	}
}

func (m *Model) showBlockedExport(err error) (tea.Model, tea.Cmd) {
	var blocked *domain.ExportBlockedError
	if !errors.As(err, &blocked) {
		return m, m.errorManager.SetError(err)
	}
	if blocked.NoSelection {
		return m.showMessage("Export Blocked", "Nothing to export: no sections are selected.")
	}
	items := make([]string, len(blocked.Issues))
	for i, issue := range blocked.Issues {
		items[i] = issue.String()
	}
	return m.showMessage("Export Blocked", "Fix these before exporting:", items...)
}

func (m *Model) handleExportDone(msg exportDoneMsg) tea.Cmd {
	if msg.err != nil {
		var blocked *domain.ExportBlockedError
		if errors.As(msg.err, &blocked) {
			_, cmd := m.showBlockedExport(msg.err)
			return cmd
		}
		return m.errorManager.SetError(msg.err)
	}

	parts := make([]string, 0, len(msg.results))
	for _, res := range msg.results {
		if res.Clipboard {
			parts = append(parts, fmt.Sprintf("%s copied to clipboard", res.Format))
		} else {
			parts = append(parts, fmt.Sprintf("%s saved to %s", res.Format, res.Path))
		}
	}
	return m.setNotice(strings.Join(parts, ", "))
}

func (m *Model) listSlotsCmd(mode slotMode) tea.Cmd {
	if m.slotService == nil {
		return m.errorManager.SetError(errors.New("save slots are not available in this session"))
	}
	slotService := m.slotService
	return func() tea.Msg {
		slots, err := slotService.List(context.Background())
		return slotsListedMsg{err: err, mode: mode, slots: slots}
	}
}

func (m *Model) handleSlotsListed(msg slotsListedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.showMessage("Save Slots", "Could not read the save slots.", msg.err.Error())
	}
	return m.openDialog(stateSlotForm, "Save Slots", NewSlotForm(msg.mode, msg.slots))
}

// runSlotCmd performs the picked slot operation in the background. Loading
// only reads the slot; the state is replaced when the result comes back.
func (m *Model) runSlotCmd(result SlotFormResult) tea.Cmd {
	if result.Cancelled {
		return nil
	}
	slotService := m.slotService
	n := result.Number

	switch result.Mode {
	case slotSave:
		state := m.timetable.Timetable().State()
		return func() tea.Msg {
			return slotDoneMsg{err: slotService.Save(context.Background(), n, state), mode: slotSave, number: n}
		}
	case slotLoad:
		return func() tea.Msg {
			state, err := slotService.Load(context.Background(), n)
			return slotDoneMsg{err: err, mode: slotLoad, number: n, state: state}
		}
	case slotDelete:
		return func() tea.Msg {
			return slotDoneMsg{err: slotService.Delete(context.Background(), n), mode: slotDelete, number: n}
		}
	}
	return nil
}

func (m *Model) handleSlotDone(msg slotDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logging.Logger.Warn("Slot operation failed", "mode", msg.mode, "slot", msg.number, "error", msg.err)
		return m.showMessage("Save Slots",
			fmt.Sprintf("Could not %s slot %d. Nothing was changed.", msg.mode, msg.number),
			msg.err.Error())
	}

	switch msg.mode {
	case slotSave:
		return m, m.setNotice(fmt.Sprintf("saved to slot %d", msg.number))
	case slotLoad:
		m.timetable.Timetable().Replace(msg.state)
		return m, m.setNotice(fmt.Sprintf("loaded slot %d (undo to go back)", msg.number))
	case slotDelete:
		return m, m.setNotice(fmt.Sprintf("deleted slot %d", msg.number))
	}
	return m, nil
}

// setNotice shows a transient message on the status bar
func (m *Model) setNotice(text string) tea.Cmd {
	m.notice = text
	if m.noticeDelay <= 0 {
		return nil
	}
	return tea.Tick(m.noticeDelay, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

func (m *Model) listWidth() int {
	return max(m.width*2/5, minListWidth)
}

func (m *Model) layout() {
	m.disciplineList.SetSize(m.listWidth(), max(m.height-headerLines-statusBarLines, 3))
	m.help.Width = m.width
}

func (m *Model) View() string {
	switch m.state {
	case stateTimetable:
		return m.timetableView()
	case stateCommandPalette:
		if m.commandPalette != nil {
			return bottomAnchoredOverlay(m.timetableView(), m.commandPalette.View(), m.width, m.height)
		}
	case stateMessage:
		if m.dialog != nil {
			return compositeOverlay(m.timetableView(), m.dialog.View(), m.width, m.height)
		}
	case stateDisplayOptions, stateHelp, stateSlotForm:
		if m.dialog != nil {
			return m.dialog.View()
		}
	}
	return ""
}

func (m *Model) timetableView() string {
	view := m.timetable.View(m.display.ShowExportTools)
	state := m.timetable.Timetable().Peek()

	header := theme.TitleStyle.Render("Turmas") + "  " + renderStatus(view)

	list := lipgloss.NewStyle().Width(m.listWidth()).Render(
		m.disciplineList.View(state, view.Issues, m.display))
	grid := renderGrid(view, state.Colors, m.display, m.width-m.listWidth()-1)
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", grid)
	if m.height > 0 {
		body = lipgloss.NewStyle().
			Height(max(m.height-headerLines-statusBarLines, 1)).
			MaxHeight(max(m.height-headerLines-statusBarLines, 1)).
			Render(body)
	}

	return header + "\n" + body + "\n" + m.statusBar(view, state)
}

// statusBar renders the three bottom lines: selection summary, completeness
// and either the current error, a notice or the short help
func (m *Model) statusBar(view *domain.ScheduleView, state *domain.SessionState) string {
	undo, redo := m.timetable.Timetable().History().Depths()
	summary := theme.MutedStyle.Render(fmt.Sprintf("%d sections in %d disciplines • undo %d • redo %d",
		state.SelectedCount(), len(state.Selected), undo, redo))

	issues := " "
	if m.display.ShowExportTools {
		if text := renderIssues(view); text != "" {
			issues = text
		}
	}

	var bottom string
	switch {
	case m.errorManager.HasError():
		bottom = theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	case m.notice != "":
		bottom = theme.NoConflictStatusStyle.Render(m.notice)
	default:
		bottom = m.help.View(m.keys)
	}

	return summary + "\n" + issues + "\n" + bottom
}
