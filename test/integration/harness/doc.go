// Package harness provides utilities for integration testing the turmas CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - TURMAS_HOME: Isolated per test (temp directory)
//   - TURMAS_DEBUG: Disabled to reduce noise
//   - TURMAS_LOAD_RETRIES: Zero so a missing document fails at once
package harness
