package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"turmas/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys

	// bindings holds every binding by definition name
	bindings map[string]key.Binding
}

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	CommandPalette key.Binding
	ForceQuit      key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// NavigationKeys defines key bindings for moving through the discipline list
type NavigationKeys struct {
	Bottom         key.Binding
	ClearFilter    key.Binding
	Down           key.Binding
	Filter         key.Binding
	NextDiscipline key.Binding
	PrevDiscipline key.Binding
	Top            key.Binding
	Up             key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	bindings := make(map[string]key.Binding, len(AllKeyDefinitions))
	for _, def := range AllKeyDefinitions {
		bindings[def.Name] = buildBinding(def, defaults, keysConfig)
	}

	return KeyMap{
		Application: ApplicationKeys{
			CommandPalette: bindings["command_palette"],
			ForceQuit:      bindings["force_quit"],
			Help:           bindings["help"],
			Quit:           bindings["quit"],
		},
		Navigation: NavigationKeys{
			Bottom:         bindings["bottom"],
			ClearFilter:    bindings["clear_filter"],
			Down:           bindings["down"],
			Filter:         bindings["filter"],
			NextDiscipline: bindings["next_discipline"],
			PrevDiscipline: bindings["prev_discipline"],
			Top:            bindings["top"],
			Up:             bindings["up"],
		},
		bindings: bindings,
	}
}

// Binding returns the binding of a key definition by name
func (k KeyMap) Binding(name string) key.Binding {
	return k.bindings[name]
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.bindings["toggle"],
		k.bindings["lock"],
		k.bindings["priority"],
		k.bindings["undo"],
		k.bindings["save_slot"],
		k.bindings["export_csv"],
		k.Application.CommandPalette,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp groups every binding by help screen section
func (k KeyMap) FullHelp() [][]key.Binding {
	groups := make([][]key.Binding, 0, len(keyGroups))
	for _, group := range keyGroups {
		var col []key.Binding
		for _, def := range AllKeyDefinitions {
			if def.Group == group {
				col = append(col, k.bindings[def.Name])
			}
		}
		groups = append(groups, col)
	}
	return groups
}

// buildBinding creates a binding from the key definition, using custom keys if provided.
func buildBinding(def KeyDefinition, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	keys := defaults[def.Name]
	if custom, ok := customKeys[def.Name]; ok && len(custom) > 0 {
		keys = custom
	}

	helpKeys := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		helpKeys[i] = k
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(helpKeys, "/"), def.Help),
	)
}
