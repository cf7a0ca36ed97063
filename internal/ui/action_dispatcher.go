package ui

import tea "github.com/charmbracelet/bubbletea"

// ActionDispatcher maps key definitions to UI messages.
// This keeps the key handling and the command palette decoupled from
// specific message types.
type ActionDispatcher struct {
	discipline string
	section    string
}

// NewActionDispatcher creates a new action dispatcher for the row under the
// cursor. discipline and section can be empty when nothing is selected.
func NewActionDispatcher(discipline, section string) *ActionDispatcher {
	return &ActionDispatcher{discipline: discipline, section: section}
}

// Dispatch returns the appropriate tea.Msg for the given key definition.
// Returns nil if the action cannot be dispatched.
func (d *ActionDispatcher) Dispatch(def KeyDefinition) tea.Msg {
	if def.Msg == nil {
		return nil
	}

	// If message needs a target, fill it from the cursor
	if targetMsg, ok := def.Msg.(TargetAwareMsg); ok {
		return targetMsg.WithTarget(d.discipline, d.section)
	}

	// Otherwise return the prototype as-is
	return def.Msg
}
