package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"turmas/internal/domain"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "lock", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	// Build set of valid names for quick lookup
	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	// Validate each configured binding
	for name, keys := range k {
		// Check if the key name is valid
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		// Check for empty values and duplicates
		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Defaults applied when neither flags, environment nor settings.json set a value
const (
	DefaultErrorClearDelay     = 10
	DefaultHistoryDepth        = domain.DefaultHistoryDepth
	DefaultLoadRetries         = 5
	DefaultLoadRetryIntervalMs = 500
)

// DisplaySettings mirrors domain.DisplayOptions with optional fields
type DisplaySettings struct {
	ShowAcronym     *bool `json:"show_acronym,omitempty"`
	ShowCapacity    *bool `json:"show_capacity,omitempty"`
	ShowExportTools *bool `json:"show_export_tools,omitempty"`
	ShowRoom        *bool `json:"show_room,omitempty"`
	ShowSectionCode *bool `json:"show_section_code,omitempty"`
}

// Settings represents the structure of ~/.turmas/settings.json
type Settings struct {
	DataSource          string            `json:"data_source,omitempty"`
	Debug               *bool             `json:"debug,omitempty"`
	Display             *DisplaySettings  `json:"display,omitempty"`
	ErrorClearDelay     *int              `json:"error_clear_delay,omitempty"`
	ExportDir           string            `json:"export_dir,omitempty"`
	GridDays            StringArray       `json:"grid_days,omitempty"`
	GridTimeSlots       StringArray       `json:"grid_time_slots,omitempty"`
	HistoryDepth        *int              `json:"history_depth,omitempty"`
	Keys                KeyBindingsConfig `json:"keys,omitempty"`
	LoadRetries         *int              `json:"load_retries,omitempty"`
	LoadRetryIntervalMs *int              `json:"load_retry_interval_ms,omitempty"`
	MaxLogFiles         *int              `json:"max_log_files,omitempty"`
	Palette             StringArray       `json:"palette,omitempty"`
}

// GridConfig returns the configured grid, defaulting to 5x5
func (s *Settings) GridConfig() domain.GridConfig {
	if s == nil {
		return domain.DefaultGridConfig()
	}
	return gridFromLists(s.GridDays, s.GridTimeSlots)
}

// DisplayOptions overlays the configured display flags on the defaults
func (s *Settings) DisplayOptions() domain.DisplayOptions {
	opts := domain.DefaultDisplayOptions()
	if s == nil || s.Display == nil {
		return opts
	}
	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&opts.ShowAcronym, s.Display.ShowAcronym)
	apply(&opts.ShowCapacity, s.Display.ShowCapacity)
	apply(&opts.ShowExportTools, s.Display.ShowExportTools)
	apply(&opts.ShowRoom, s.Display.ShowRoom)
	apply(&opts.ShowSectionCode, s.Display.ShowSectionCode)
	return opts
}

// SetDisplayOptions stores every display flag explicitly
func (s *Settings) SetDisplayOptions(opts domain.DisplayOptions) {
	s.Display = &DisplaySettings{
		ShowAcronym:     &opts.ShowAcronym,
		ShowCapacity:    &opts.ShowCapacity,
		ShowExportTools: &opts.ShowExportTools,
		ShowRoom:        &opts.ShowRoom,
		ShowSectionCode: &opts.ShowSectionCode,
	}
}

// ResolvedHistoryDepth returns the undo depth
func (s *Settings) ResolvedHistoryDepth() int {
	if s == nil || s.HistoryDepth == nil || *s.HistoryDepth <= 0 {
		return DefaultHistoryDepth
	}
	return *s.HistoryDepth
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $TURMAS_HOME/settings.json (or ~/.turmas/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand paths that start with ~
	if settings.DataSource != "" && !isURL(settings.DataSource) {
		settings.DataSource = ExpandPath(settings.DataSource)
	}
	if settings.ExportDir != "" {
		settings.ExportDir = ExpandPath(settings.ExportDir)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TURMAS_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
