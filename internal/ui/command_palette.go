package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"turmas/internal/domain"
	"turmas/internal/theme"
)

// maxVisibleItems is the number of actions shown at once
const maxVisibleItems = 6

// paletteScopes lists action scopes from the narrowest target outwards
var paletteScopes = []domain.ActionTarget{domain.TargetSection, domain.TargetDiscipline, domain.TargetNone}

// CommandPalette lists the actions that apply to the row under the cursor,
// grouped by what they act on: the section, its discipline, or the whole
// timetable.
type CommandPalette struct {
	actions       []KeyDefinition // Filtered actions, in scope order
	allActions    []KeyDefinition
	Completed     bool
	discipline    string
	filterInput   textinput.Model
	height        int
	keys          KeyMap
	lastQuery     string
	Result        CommandPaletteResult
	section       string
	selectedIndex int
	width         int
}

// CommandPaletteResult contains the result of the command palette interaction.
type CommandPaletteResult struct {
	Action    *KeyDefinition
	Cancelled bool
}

// NewCommandPalette creates a palette for the row under the cursor.
// section is empty on a discipline header; both are empty on an empty list.
// Actions whose target is missing are left out.
func NewCommandPalette(discipline, section string, keys KeyMap) *CommandPalette {
	actions := scopedPaletteActions(discipline, section)

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "action, section or discipline"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		actions:     actions,
		allActions:  actions,
		discipline:  discipline,
		filterInput: ti,
		keys:        keys,
		section:     section,
	}
}

// scopedPaletteActions orders the palette actions section first, then
// discipline, then timetable wide
func scopedPaletteActions(discipline, section string) []KeyDefinition {
	available := map[domain.ActionTarget]bool{
		domain.TargetSection:    section != "",
		domain.TargetDiscipline: discipline != "",
		domain.TargetNone:       true,
	}

	var actions []KeyDefinition
	for _, scope := range paletteScopes {
		if !available[scope] {
			continue
		}
		for _, def := range GetPaletteActions() {
			if paletteScope(def) == scope {
				actions = append(actions, def)
			}
		}
	}
	// toggle leads the section group
	for i, def := range actions {
		if def.Name == "toggle" && i > 0 {
			copy(actions[1:i+1], actions[:i])
			actions[0] = def
			break
		}
	}
	return actions
}

// paletteScope returns what an action needs from the cursor. Per-type
// toggles cover every discipline and count as timetable wide.
func paletteScope(def KeyDefinition) domain.ActionTarget {
	switch msg := def.Msg.(type) {
	case ActionMsg:
		if action := domain.GetActionByName(msg.Name); action != nil && action.Target != domain.TargetType {
			return action.Target
		}
	case CycleColorMsg:
		return domain.TargetDiscipline
	}
	return domain.TargetNone
}

// scopeLabel names the group heading of a scope
func (cp *CommandPalette) scopeLabel(scope domain.ActionTarget) string {
	switch scope {
	case domain.TargetSection:
		return "Section " + cp.section
	case domain.TargetDiscipline:
		return cp.discipline
	}
	return "Timetable"
}

// Init initializes the command palette.
func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		cp.height = msg.Height
		return cp, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, cp.keys.Navigation.ClearFilter) ||
			key.Matches(msg, cp.keys.Application.ForceQuit):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case msg.Type == tea.KeyEnter:
			if cp.selectedIndex < len(cp.actions) {
				cp.Completed = true
				cp.Result.Action = &cp.actions[cp.selectedIndex]
			}
			return cp, nil

		case msg.Type == tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case msg.Type == tea.KeyDown:
			if cp.selectedIndex < len(cp.actions)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.filterActions()

	return cp, cmd
}

// View renders the palette as a full-width bottom panel
func (cp *CommandPalette) View() string {
	header := theme.PaletteTitleStyle.Render("Actions")
	switch {
	case cp.section != "":
		header += " " + theme.DimmedStyle.Render(cp.discipline+" › "+cp.section)
	case cp.discipline != "":
		header += " " + theme.DimmedStyle.Render(cp.discipline)
	}

	var items []string
	helpWidth := cp.maxHelpLen()
	start, end := cp.visibleRange()
	lastScope := domain.ActionTarget(-1)

	for i := start; i < end; i++ {
		def := cp.actions[i]
		if scope := paletteScope(def); scope != lastScope {
			items = append(items, theme.HelpGroupStyle.Render(cp.scopeLabel(scope)))
			lastScope = scope
		}

		var prefix string
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && start > 0:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && end < len(cp.actions):
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		default:
			prefix = "  "
		}

		items = append(items, prefix+
			theme.PaletteItemStyle.Render(padRight(capitalizeFirst(def.Help), helpWidth))+
			theme.PaletteShortcutStyle.Render("  "+cp.keys.Binding(def.Name).Help().Key))
	}

	if len(items) == 0 {
		items = append(items, theme.PaletteDescStyle.Render("  No matching actions"))
	}
	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	content := header + "\n\n" + cp.filterInput.View() + "\n\n" + strings.Join(items, "\n")
	return theme.PaletteBorderStyle.Width(cp.paletteWidth() - 2).Render(content)
}

// filterActions keeps the actions whose help fuzzy-matches the query, or
// whose name, key group or target heading contains it
func (cp *CommandPalette) filterActions() {
	query := strings.ToLower(cp.filterInput.Value())
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query

	if query == "" {
		cp.actions = cp.allActions
		cp.selectedIndex = 0
		return
	}

	var filtered []KeyDefinition
	for _, def := range cp.allActions {
		if cp.matches(query, def) {
			filtered = append(filtered, def)
		}
	}
	cp.actions = filtered

	if cp.selectedIndex >= len(cp.actions) {
		cp.selectedIndex = 0
	}
}

func (cp *CommandPalette) matches(query string, def KeyDefinition) bool {
	if fuzzyMatch(query, def.Help) {
		return true
	}
	for _, field := range []string{def.Name, def.Group, cp.scopeLabel(paletteScope(def))} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// fuzzyMatch checks if all characters in query appear in order in target.
func fuzzyMatch(query, target string) bool {
	target = strings.ToLower(target)
	queryRunes := []rune(query)
	qi := 0
	for _, c := range target {
		if qi < len(queryRunes) && c == queryRunes[qi] {
			qi++
		}
	}
	return qi == len(queryRunes)
}

// maxHelpLen uses allActions so alignment stays put while filtering
func (cp *CommandPalette) maxHelpLen() int {
	maxLen := 0
	for _, def := range cp.allActions {
		maxLen = max(maxLen, len(def.Help))
	}
	return maxLen
}

func (cp *CommandPalette) paletteWidth() int {
	if cp.width > 0 {
		return cp.width
	}
	return 80
}

// visibleRange keeps the selected action inside the window
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.actions)
	if total <= maxVisibleItems {
		return 0, total
	}

	start := max(cp.selectedIndex-maxVisibleItems/2, 0)
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsCompleted reports whether an action was picked or the palette was closed
func (cp *CommandPalette) IsCompleted() bool {
	return cp.Completed
}
