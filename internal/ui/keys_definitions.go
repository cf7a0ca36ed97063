package ui

import (
	"slices"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"turmas/internal/domain"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Group           string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
}

// Key groups, in help screen order
const (
	groupNavigation  = "Navigation"
	groupSelection   = "Selection"
	groupPlanning    = "Planning"
	groupSlots       = "Save Slots"
	groupExport      = "Export"
	groupApplication = "Application"
)

var keyGroups = []string{groupNavigation, groupSelection, groupPlanning, groupSlots, groupExport, groupApplication}

// KeyGroups returns the key group names in help screen order
func KeyGroups() []string {
	return slices.Clone(keyGroups)
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults and help text.
// If IsPaletteAction is true, the key appears in the command palette.
// If Msg is set, the key is dispatched through the ActionDispatcher.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Group: groupApplication, Defaults: []string{":"}, Help: "command palette"},
	{Name: "display_options", Group: groupApplication, Defaults: []string{"o"}, Help: "display options", IsPaletteAction: true, Msg: ShowDisplayOptionsMsg{}},
	{Name: "force_quit", Group: groupApplication, Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Group: groupApplication, Defaults: []string{"?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}},
	{Name: "quit", Group: groupApplication, Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},

	// Navigation keys
	{Name: "bottom", Group: groupNavigation, Defaults: []string{"end", "G"}, Help: "go to last row"},
	{Name: "clear_filter", Group: groupNavigation, Defaults: []string{"esc"}, Help: "clear filter"},
	{Name: "down", Group: groupNavigation, Defaults: []string{"down", "j"}, Help: "next row"},
	{Name: "filter", Group: groupNavigation, Defaults: []string{"/"}, Help: "filter disciplines"},
	{Name: "next_discipline", Group: groupNavigation, Defaults: []string{"tab"}, Help: "next discipline"},
	{Name: "prev_discipline", Group: groupNavigation, Defaults: []string{"shift+tab"}, Help: "previous discipline"},
	{Name: "top", Group: groupNavigation, Defaults: []string{"home", "g"}, Help: "go to first row"},
	{Name: "up", Group: groupNavigation, Defaults: []string{"up", "k"}, Help: "previous row"},

	// Selection keys
	{Name: "clear_all", Group: groupSelection, Defaults: []string{"C"}, Help: "clear all unlocked sections", IsPaletteAction: true, Msg: ActionMsg{Name: "clear_all"}},
	{Name: "lock", Group: groupSelection, Defaults: []string{"l"}, Help: "lock/unlock section", IsPaletteAction: true, Msg: ActionMsg{Name: "lock"}},
	{Name: "priority", Group: groupSelection, Defaults: []string{"p"}, Help: "rank/unrank section", IsPaletteAction: true, Msg: ActionMsg{Name: "priority"}},
	{Name: "remove", Group: groupSelection, Defaults: []string{"x", "delete"}, Help: "remove section", IsPaletteAction: true, Msg: ActionMsg{Name: "remove"}},
	{Name: "select_all", Group: groupSelection, Defaults: []string{"a"}, Help: "select every section", IsPaletteAction: true, Msg: ActionMsg{Name: "select_all"}},
	{Name: "toggle", Group: groupSelection, Defaults: []string{" ", "enter"}, Help: "select/deselect section", IsPaletteAction: true, Msg: ActionMsg{Name: "toggle"}},
	{Name: "toggle_all", Group: groupSelection, Defaults: []string{"*"}, Help: "select all or clear all", IsPaletteAction: true, Msg: ActionMsg{Name: "toggle_all"}},
	{Name: "toggle_discipline", Group: groupSelection, Defaults: []string{"d"}, Help: "select/clear whole discipline", IsPaletteAction: true, Msg: ActionMsg{Name: "toggle_discipline"}},
	{Name: "toggle_pl", Group: groupSelection, Defaults: []string{"1"}, Help: "toggle all PL sections", IsPaletteAction: true, Msg: ActionMsg{Name: "toggle_type", Type: domain.TypePractical}},
	{Name: "toggle_t", Group: groupSelection, Defaults: []string{"3"}, Help: "toggle all T sections", IsPaletteAction: true, Msg: ActionMsg{Name: "toggle_type", Type: domain.TypeLecture}},
	{Name: "toggle_tp", Group: groupSelection, Defaults: []string{"2"}, Help: "toggle all TP sections", IsPaletteAction: true, Msg: ActionMsg{Name: "toggle_type", Type: domain.TypeTheoretical}},
	{Name: "toggle_ttp", Group: groupSelection, Defaults: []string{"4"}, Help: "toggle all T/TP sections", IsPaletteAction: true, Msg: ActionMsg{Name: "toggle_type", Type: domain.TypeLectureOrTP}},

	// Planning keys
	{Name: "color", Group: groupPlanning, Defaults: []string{"c"}, Help: "next discipline color", IsPaletteAction: true, Msg: CycleColorMsg{}},
	{Name: "move_down", Group: groupPlanning, Defaults: []string{"J", "shift+down"}, Help: "move discipline later in export", IsPaletteAction: true, Msg: ActionMsg{Name: "move", Delta: 1}},
	{Name: "move_up", Group: groupPlanning, Defaults: []string{"K", "shift+up"}, Help: "move discipline earlier in export", IsPaletteAction: true, Msg: ActionMsg{Name: "move", Delta: -1}},
	{Name: "redo", Group: groupPlanning, Defaults: []string{"U", "ctrl+y"}, Help: "redo", IsPaletteAction: true, Msg: ActionMsg{Name: "redo"}},
	{Name: "undo", Group: groupPlanning, Defaults: []string{"u", "ctrl+z"}, Help: "undo", IsPaletteAction: true, Msg: ActionMsg{Name: "undo"}},

	// Slot keys
	{Name: "delete_slot", Group: groupSlots, Defaults: []string{"D"}, Help: "delete a save slot", IsPaletteAction: true, Msg: ShowSlotFormMsg{Mode: slotDelete}},
	{Name: "load_slot", Group: groupSlots, Defaults: []string{"r"}, Help: "load from a save slot", IsPaletteAction: true, Msg: ShowSlotFormMsg{Mode: slotLoad}},
	{Name: "save_slot", Group: groupSlots, Defaults: []string{"s"}, Help: "save to a save slot", IsPaletteAction: true, Msg: ShowSlotFormMsg{Mode: slotSave}},

	// Export keys
	{Name: "copy_csv", Group: groupExport, Defaults: []string{"y"}, Help: "copy CSV to clipboard", IsPaletteAction: true, Msg: ExportMsg{Format: "csv", Clipboard: true}},
	{Name: "copy_image", Group: groupExport, Defaults: []string{"Y"}, Help: "copy grid image to clipboard", IsPaletteAction: true, Msg: ExportMsg{Format: "image", Clipboard: true}},
	{Name: "export_all", Group: groupExport, Defaults: []string{"E"}, Help: "export CSV and image", IsPaletteAction: true, Msg: ExportMsg{Format: "all"}},
	{Name: "export_csv", Group: groupExport, Defaults: []string{"e"}, Help: "export CSV", IsPaletteAction: true, Msg: ExportMsg{Format: "csv"}},
	{Name: "export_image", Group: groupExport, Defaults: []string{"i"}, Help: "export grid image", IsPaletteAction: true, Msg: ExportMsg{Format: "image"}},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetPaletteActions returns key definitions that should appear in the command palette.
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if !def.IsPaletteAction {
			continue
		}
		actions = append(actions, def)
	}
	return actions
}
