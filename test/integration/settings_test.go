package integration_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"turmas/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	t.Run("table lists options", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "settings", "meta")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, filepath.Join(env.TurmasHome, "settings.json"))
		harness.AssertStdoutContains(t, result, "data_source")
		harness.AssertStdoutContains(t, result, "grid_time_slots")
		harness.AssertStdoutContains(t, result, "Create or edit this file to configure turmas.")
	})

	t.Run("json format", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "settings", "meta", "--format", "json")

		harness.AssertSuccess(t, result)
		var meta struct {
			Format       map[string]any `json:"format"`
			SettingsFile string         `json:"settings_file"`
		}
		harness.AssertValidJSON(t, result, &meta)
		if meta.SettingsFile != filepath.Join(env.TurmasHome, "settings.json") {
			t.Errorf("Unexpected settings file %q", meta.SettingsFile)
		}
		if _, ok := meta.Format["keys"]; !ok {
			t.Errorf("Expected 'keys' in format, got %v", meta.Format)
		}
	})
}

func TestSettingsKeys(t *testing.T) {
	t.Run("list shows defaults", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "settings", "keys", "list", "--format", "json")

		harness.AssertSuccess(t, result)
		var keys map[string]map[string]any
		harness.AssertValidJSON(t, result, &keys)
		lock, ok := keys["lock"]
		if !ok {
			t.Fatalf("Expected 'lock' binding, got %v", keys)
		}
		if defaults, _ := lock["default"].([]any); len(defaults) != 1 || defaults[0] != "l" {
			t.Errorf("Expected lock default [l], got %v", lock["default"])
		}
		if _, ok := lock["custom"]; ok {
			t.Errorf("Expected no custom binding, got %v", lock["custom"])
		}
		if lock["group"] != "Selection" || lock["help"] != "lock/unlock section" {
			t.Errorf("Expected lock in Selection with help text, got %v", lock)
		}
	})

	t.Run("list one group", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "settings", "keys", "list", "--group", "export")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Export")
		harness.AssertStdoutContains(t, result, "copy CSV to clipboard *")
		harness.AssertStdoutNotContains(t, result, "Navigation")
	})

	t.Run("set stores a custom binding", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		set := harness.RunCommand(t, env, "settings", "keys", "set", "help", "h, ?")
		list := harness.RunCommand(t, env, "settings", "keys", "list")

		harness.AssertSuccess(t, set)
		harness.AssertStdoutContains(t, set, "Set 'help' to: h, ?")
		harness.AssertSuccess(t, list)
		harness.AssertStdoutContains(t, list, "h, ?")

		data, err := os.ReadFile(filepath.Join(env.TurmasHome, "settings.json"))
		if err != nil {
			t.Fatalf("Failed to read settings: %v", err)
		}
		var settings map[string]any
		if err := json.Unmarshal(data, &settings); err != nil {
			t.Fatalf("Invalid settings.json: %v", err)
		}
		if _, ok := settings["keys"]; !ok {
			t.Errorf("Expected keys in settings.json, got %s", data)
		}
	})

	t.Run("unknown key name fails", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "settings", "keys", "set", "teleport", "t")

		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "unknown key 'teleport'")
	})

	t.Run("conflicting custom bindings fail", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "keys", "set", "lock", "L"))

		result := harness.RunCommand(t, env, "settings", "keys", "set", "priority", "L")

		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "conflict")
	})

	t.Run("invalid bindings block startup", func(t *testing.T) {
		env := newCatalogEnv(t)
		env.WriteSettings(`{"keys": {"teleport": "t"}}`)

		result := harness.RunCommand(t, env, "run")

		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "invalid key bindings")
	})
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "turmas")
}
