package config

import (
	"reflect"
	"strings"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	return exampleForStruct(reflect.TypeOf(Settings{}))
}

func exampleForStruct(t reflect.Type) map[string]any {
	example := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}
	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"lock": "l",
			"help": []string{"h", "?"},
		}
	}

	if t.Kind() == reflect.Ptr {
		elemType := t.Elem()

		switch elemType.Kind() {
		case reflect.Struct:
			return exampleForStruct(elemType)
		case reflect.Bool:
			switch fieldName {
			case "show_room", "show_section_code", "show_export_tools":
				return true
			}
			return false
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "history_depth":
				return DefaultHistoryDepth
			case "load_retries":
				return DefaultLoadRetries
			case "load_retry_interval_ms":
				return DefaultLoadRetryIntervalMs
			case "max_log_files":
				return 1000
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "data_source":
			return "~/.turmas/horarios.json"
		case "export_dir":
			return "~/.turmas/exports"
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			switch fieldName {
			case "grid_days":
				return []string{"segunda", "terça", "quarta", "quinta", "sexta"}
			case "grid_time_slots":
				return []string{"09:00-11:00", "11:00-13:00", "14:00-16:00"}
			case "palette":
				return []string{"#4E79A7", "#F28E2B", "#E15759"}
			default:
				return []string{"example1", "example2"}
			}
		}
	}

	return nil
}
