package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own TURMAS_HOME.
type TestEnvironment struct {
	TurmasHome string
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp TURMAS_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		TurmasHome: tb.TempDir(),
		extraEnv:   make(map[string]string),
		tb:         tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out TURMAS_* variables and sets:
//   - TURMAS_HOME to the temp directory
//   - TURMAS_DEBUG to empty string (disables debug logging)
//   - TURMAS_LOAD_RETRIES to 0
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "TURMAS_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"TURMAS_HOME="+e.TurmasHome,
		"TURMAS_DEBUG=",
		"TURMAS_LOAD_RETRIES=0",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// CatalogPath returns the default schedule document location.
func (e *TestEnvironment) CatalogPath() string {
	return filepath.Join(e.TurmasHome, "horarios.json")
}

// ExportDir returns the default export directory.
func (e *TestEnvironment) ExportDir() string {
	return filepath.Join(e.TurmasHome, "exports")
}

// WriteCatalog writes the schedule document to the default location.
func (e *TestEnvironment) WriteCatalog(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.CatalogPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write catalog: %v", err)
	}
}

// WriteSettings writes settings.json.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(filepath.Join(e.TurmasHome, "settings.json"), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
