package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"turmas/internal/domain"
	"turmas/internal/theme"
)

// listRow is one line of the discipline list: a discipline header when
// section is empty, otherwise one of its sections
type listRow struct {
	discipline string
	section    string
}

// DisciplineList is the scrollable list of disciplines and their sections
type DisciplineList struct {
	cursor      int
	filterInput textinput.Model
	filtering   bool
	index       *domain.ScheduleIndex
	keys        *KeyMap
	rows        []listRow
	viewport    viewport.Model
	width       int
}

// NewDisciplineList creates the list over idx
func NewDisciplineList(idx *domain.ScheduleIndex, keys *KeyMap) *DisciplineList {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "filter disciplines"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.CharLimit = 60

	dl := &DisciplineList{
		filterInput: ti,
		index:       idx,
		keys:        keys,
		viewport:    viewport.New(0, 0),
	}
	dl.rebuild()
	return dl
}

// SetSize sets the pane dimensions
func (dl *DisciplineList) SetSize(width, height int) {
	dl.width = width
	dl.viewport.Width = width
	// one line for the filter
	dl.viewport.Height = max(height-1, 1)
	dl.filterInput.Width = max(width-4, 10)
}

// Filtering reports whether the filter input has focus
func (dl *DisciplineList) Filtering() bool {
	return dl.filtering
}

// Target returns the discipline and section under the cursor. section is
// empty on a discipline header; both are empty when the list is empty.
func (dl *DisciplineList) Target() (string, string) {
	if dl.cursor < 0 || dl.cursor >= len(dl.rows) {
		return "", ""
	}
	row := dl.rows[dl.cursor]
	return row.discipline, row.section
}

// Update handles navigation and filter keys. It reports whether the key was
// consumed.
func (dl *DisciplineList) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	if dl.filtering {
		return true, dl.updateFilter(msg)
	}

	nav := dl.keys.Navigation
	switch {
	case key.Matches(msg, nav.Up):
		dl.moveCursor(dl.cursor - 1)
	case key.Matches(msg, nav.Down):
		dl.moveCursor(dl.cursor + 1)
	case key.Matches(msg, nav.Top):
		dl.moveCursor(0)
	case key.Matches(msg, nav.Bottom):
		dl.moveCursor(len(dl.rows) - 1)
	case key.Matches(msg, nav.NextDiscipline):
		dl.moveCursor(dl.nextHeader(1))
	case key.Matches(msg, nav.PrevDiscipline):
		dl.moveCursor(dl.nextHeader(-1))
	case key.Matches(msg, nav.Filter):
		dl.filtering = true
		return true, dl.filterInput.Focus()
	case key.Matches(msg, nav.ClearFilter) && dl.filterInput.Value() != "":
		dl.filterInput.SetValue("")
		dl.rebuild()
	default:
		return false, nil
	}
	return true, nil
}

func (dl *DisciplineList) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		dl.filtering = false
		dl.filterInput.Blur()
		return nil
	case tea.KeyEsc:
		dl.filtering = false
		dl.filterInput.Blur()
		dl.filterInput.SetValue("")
		dl.rebuild()
		return nil
	}

	var cmd tea.Cmd
	before := dl.filterInput.Value()
	dl.filterInput, cmd = dl.filterInput.Update(msg)
	if dl.filterInput.Value() != before {
		dl.rebuild()
	}
	return cmd
}

// rebuild recomputes the rows from the index and the filter, keeping the
// cursor on the same row when it is still visible
func (dl *DisciplineList) rebuild() {
	discipline, section := dl.Target()
	query := domain.SearchKey(dl.filterInput.Value())

	dl.rows = dl.rows[:0]
	for _, d := range dl.index.Disciplines() {
		if query != "" &&
			!strings.Contains(domain.SearchKey(d.Name), query) &&
			!strings.Contains(domain.SearchKey(d.Acronym()), query) {
			continue
		}
		dl.rows = append(dl.rows, listRow{discipline: d.Name})
		for _, code := range d.Codes() {
			dl.rows = append(dl.rows, listRow{discipline: d.Name, section: code})
		}
	}

	dl.cursor = 0
	for i, row := range dl.rows {
		if row.discipline == discipline && row.section == section {
			dl.cursor = i
			break
		}
	}
}

func (dl *DisciplineList) nextHeader(dir int) int {
	for i := dl.cursor + dir; i >= 0 && i < len(dl.rows); i += dir {
		if dl.rows[i].section == "" {
			return i
		}
	}
	return dl.cursor
}

func (dl *DisciplineList) moveCursor(to int) {
	if len(dl.rows) == 0 {
		dl.cursor = 0
		return
	}
	dl.cursor = min(max(to, 0), len(dl.rows)-1)
}

// scrollToCursor keeps the cursor row inside the viewport
func (dl *DisciplineList) scrollToCursor() {
	switch {
	case dl.cursor < dl.viewport.YOffset:
		dl.viewport.SetYOffset(dl.cursor)
	case dl.cursor >= dl.viewport.YOffset+dl.viewport.Height:
		dl.viewport.SetYOffset(dl.cursor - dl.viewport.Height + 1)
	}
}

// View renders the list against the current state
func (dl *DisciplineList) View(state *domain.SessionState, issues []domain.Issue, opts domain.DisplayOptions) string {
	byDiscipline := make(map[string][]string)
	for _, issue := range issues {
		byDiscipline[issue.Discipline] = append(byDiscipline[issue.Discipline], issueShort(issue))
	}
	exportOrder := domain.ExportOrder(state)

	lines := make([]string, 0, len(dl.rows))
	for i, row := range dl.rows {
		var line string
		if row.section == "" {
			line = dl.renderDiscipline(row.discipline, state, byDiscipline[row.discipline], exportOrder, opts)
		} else {
			line = dl.renderSection(row, state, opts)
		}
		if i == dl.cursor {
			line = theme.CursorStyle.Width(dl.width).Render(line)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, theme.MutedStyle.Render("  no disciplines match"))
	}

	dl.viewport.SetContent(strings.Join(lines, "\n"))
	dl.scrollToCursor()

	filter := dl.filterInput.View()
	if !dl.filtering && dl.filterInput.Value() == "" {
		filter = theme.DimmedStyle.Render(fmt.Sprintf("%d disciplines", dl.index.Len()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, filter, dl.viewport.View())
}

func (dl *DisciplineList) renderDiscipline(name string, state *domain.SessionState, issues []string, exportOrder []string, opts domain.DisplayOptions) string {
	d, _ := dl.index.Discipline(name)
	swatch := theme.DisciplineColorStyle(state.Colors[name]).Render("■")
	if _, selected := state.Selected[name]; !selected {
		swatch = " "
	}

	title := name
	if opts.ShowAcronym {
		title = fmt.Sprintf("%s (%s)", name, d.Acronym())
	}
	line := swatch + " " + theme.DisciplineStyle.Render(title)

	for pos, n := range exportOrder {
		if n == name {
			line += theme.PriorityStyle.Render(fmt.Sprintf("  export #%d", pos+1))
			break
		}
	}
	if len(issues) > 0 {
		line += theme.WarningStyle.Render("  ! " + strings.Join(issues, ", "))
	}
	return line
}

func (dl *DisciplineList) renderSection(row listRow, state *domain.SessionState, opts domain.DisplayOptions) string {
	sec, ok := dl.index.Section(row.discipline, row.section)
	if !ok {
		return ""
	}

	mark := theme.UnselectedStyle.Render("○")
	style := theme.UnselectedStyle
	if state.IsSelected(row.discipline, row.section) {
		mark = theme.SelectedStyle.Render("●")
		style = theme.SelectedStyle
	}

	line := "   " + mark + " " + style.Render(fmt.Sprintf("%-6s %-4s", sec.Code, string(sec.Type)))
	line += " " + style.Render(meetingSummary(sec, opts))

	if state.IsLocked(row.discipline, row.section) {
		line += " " + theme.LockedStyle.Render("locked")
	}
	if rank := state.PriorityRank(row.discipline, sec.Type, row.section); rank >= 0 {
		line += " " + theme.PriorityStyle.Render(fmt.Sprintf("#%d", rank+1))
	}
	return line
}

// meetingSummary lists the meetings of a section as "Seg 09:00-11:00"
func meetingSummary(sec *domain.Section, opts domain.DisplayOptions) string {
	parts := make([]string, 0, len(sec.Meetings))
	for _, m := range sec.Meetings {
		part := shortDay(m.Day) + " " + m.Slot.String()
		if opts.ShowRoom && m.Room != "" {
			part += " " + m.Room
		}
		parts = append(parts, part)
	}
	summary := strings.Join(parts, ", ")
	if opts.ShowCapacity && sec.Capacity != nil {
		summary += fmt.Sprintf(" (%d)", *sec.Capacity)
	}
	return summary
}

func shortDay(day domain.Weekday) string {
	label := []rune(day.Label())
	if len(label) > 3 {
		label = label[:3]
	}
	return string(label)
}

func issueShort(issue domain.Issue) string {
	if issue.Kind == domain.IssueAmbiguousPriority {
		return "rank " + string(issue.Type)
	}
	return "no " + string(issue.Type)
}
