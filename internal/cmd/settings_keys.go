package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"turmas/internal/config"
	"turmas/internal/logging"
	"turmas/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Group  string `help:"Only list one key group (e.g. Selection or Planning)"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., lock, help, quit)"`
	Value string `arg:"" help:"Key binding (e.g., a, ctrl+s, or comma-separated for multiple: up,k)"`
}

// keyListing describes one key binding as listed by the settings command
type keyListing struct {
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Group   string   `json:"group"`
	Help    string   `json:"help"`
	Name    string   `json:"-"`
	Palette bool     `json:"palette"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var customKeys config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		customKeys = cli.settings.Keys
	}

	listings, err := collectKeyListings(s.Group, customKeys)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		return writeKeysJSON(os.Stdout, listings)
	}
	return writeKeysTable(os.Stdout, config.GetSettingsPath(), listings)
}

// collectKeyListings returns the bindings of group, or of every group when
// group is empty, in help screen order
func collectKeyListings(group string, customKeys config.KeyBindingsConfig) ([]keyListing, error) {
	groups := ui.KeyGroups()
	if group != "" {
		idx := slices.IndexFunc(groups, func(g string) bool { return strings.EqualFold(g, group) })
		if idx < 0 {
			return nil, fmt.Errorf("unknown key group '%s'. Valid groups: %s", group, strings.Join(groups, ", "))
		}
		groups = groups[idx : idx+1]
	}

	defaults := ui.GetDefaultKeyBindings()
	var listings []keyListing
	for _, g := range groups {
		for _, name := range ui.GetValidKeyNames() {
			def := ui.GetKeyDefinition(name)
			if def.Group != g {
				continue
			}
			listing := keyListing{
				Default: defaults[name],
				Group:   def.Group,
				Help:    def.Help,
				Name:    name,
				Palette: def.IsPaletteAction,
			}
			if custom, ok := customKeys[name]; ok && len(custom) > 0 {
				listing.Custom = custom
			}
			listings = append(listings, listing)
		}
	}
	return listings, nil
}

func writeKeysJSON(w io.Writer, listings []keyListing) error {
	result := make(map[string]keyListing, len(listings))
	for _, l := range listings {
		result[l.Name] = l
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeKeysTable(out io.Writer, settingsFile string, listings []keyListing) error {
	fmt.Fprintf(out, "Key Bindings (settings file: %s)\n", settingsFile)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	group := ""
	for _, l := range listings {
		if l.Group != group {
			group = l.Group
			fmt.Fprintf(w, "\n%s\t\t\t\n", group)
			fmt.Fprintln(w, "  Name\tDefault\tCustom\tAction")
		}

		customStr := "-"
		if len(l.Custom) > 0 {
			customStr = strings.Join(l.Custom, ", ")
		}
		help := l.Help
		if l.Palette {
			help += " *"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", l.Name, strings.Join(l.Default, ", "), customStr, help)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "* also available from the command palette")
	fmt.Fprintln(out, "Use 'turmas settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	// Validate key name
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	// Parse value (comma-separated for multiple keys)
	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	// Load existing settings
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Initialize Keys if needed
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}

	// Set the new binding
	settings.Keys[s.Key] = values

	// Validate for conflicts
	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	// Save settings
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
