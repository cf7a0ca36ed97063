package domain

// ActionTarget describes what an action operates on
type ActionTarget int

const (
	TargetNone ActionTarget = iota
	TargetDiscipline
	TargetSection
	TargetType
)

// Action represents a user-invocable timetable operation.
// This is the domain-level definition of what actions exist.
type Action struct {
	// Argument names the extra value the action takes ("color", "delta"), if any
	Argument    string
	Description string
	// Interactive actions need the in-memory history and are not available headless
	Interactive bool
	Name        string
	Target      ActionTarget
}

// Actions is the canonical registry of all available actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "clear_all", Description: "Clear every unlocked section", Target: TargetNone},
	{Name: "color", Description: "Set the color of a discipline", Target: TargetDiscipline, Argument: "color"},
	{Name: "lock", Description: "Lock or unlock a selected section", Target: TargetSection},
	{Name: "move", Description: "Move a discipline in the export order", Target: TargetDiscipline, Argument: "delta"},
	{Name: "priority", Description: "Rank or unrank a section within its type", Target: TargetSection},
	{Name: "redo", Description: "Re-apply the last undone change", Target: TargetNone, Interactive: true},
	{Name: "remove", Description: "Remove a selected section unless locked", Target: TargetSection},
	{Name: "select_all", Description: "Select every section", Target: TargetNone},
	{Name: "toggle", Description: "Select or deselect a section", Target: TargetSection},
	{Name: "toggle_all", Description: "Select everything, or clear when all is selected", Target: TargetNone},
	{Name: "toggle_discipline", Description: "Select a whole discipline, or clear it", Target: TargetDiscipline},
	{Name: "toggle_type", Description: "Toggle every section of a type", Target: TargetType},
	{Name: "undo", Description: "Revert the last change", Target: TargetNone, Interactive: true},
}

// GetActions returns all available actions.
func GetActions() []Action {
	return Actions
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}

// GetHeadlessActions returns the actions that can run without an interactive
// session
func GetHeadlessActions() []Action {
	var filtered []Action
	for _, a := range Actions {
		if !a.Interactive {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
