package config

import (
	"os"
	"path/filepath"
)

// GetTurmasHome returns TURMAS_HOME or ~/.turmas default
func GetTurmasHome() string {
	home := os.Getenv("TURMAS_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".turmas"
		}
		return filepath.Join(homeDir, ".turmas")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $TURMAS_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetTurmasHome(), "settings.json")
}

// GetSlotsDBPath returns $TURMAS_HOME/slots.db
func GetSlotsDBPath() string {
	return filepath.Join(GetTurmasHome(), "slots.db")
}

// GetCatalogCachePath returns $TURMAS_HOME/catalog-cache.json
func GetCatalogCachePath() string {
	return filepath.Join(GetTurmasHome(), "catalog-cache.json")
}

// GetDefaultExportDir returns $TURMAS_HOME/exports
func GetDefaultExportDir() string {
	return filepath.Join(GetTurmasHome(), "exports")
}

// GetDefaultDataSource returns $TURMAS_HOME/horarios.json
func GetDefaultDataSource() string {
	return filepath.Join(GetTurmasHome(), "horarios.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
