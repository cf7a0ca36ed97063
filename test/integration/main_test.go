// Package integration_test provides end-to-end tests for turmas CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated TURMAS_HOME to ensure test independence.
package integration_test

import (
	"log"
	"os"
	"testing"

	"turmas/test/integration/harness"
)

// catalogJSON has one section per type for every discipline, so selecting
// everything is exportable. Algorithms TP1 clashes with Calculus TP1.
const catalogJSON = `[
  {"id": 101, "name": "Algorithms", "shifts": [
    {"code": "PL1", "vacancies": 20, "meetings": [{"weekday": "segunda-feira", "start": "09:00", "end": "11:00", "room": "L1"}]},
    {"code": "TP1", "meetings": [{"weekday": "quarta-feira", "start": "14:00", "end": "16:00"}]}
  ]},
  {"id": 202, "name": "Calculus", "shifts": [
    {"code": "TP1", "meetings": [{"weekday": "quarta-feira", "start": "14:00", "end": "16:00"}]}
  ]},
  {"id": 303, "name": "Física Aplicada", "shifts": [
    {"code": "T1", "type": "T", "meetings": [{"weekday": "quinta-feira", "start": "11:00", "end": "13:00"}]}
  ]}
]`

func newCatalogEnv(tb testing.TB) *harness.TestEnvironment {
	tb.Helper()
	env := harness.NewTestEnvironment(tb)
	env.WriteCatalog(catalogJSON)
	return env
}

func TestMain(m *testing.M) {
	// Build binary once before all tests
	_, err := harness.BuildBinary()
	if err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()

	os.Exit(code)
}
