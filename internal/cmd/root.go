package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"turmas/internal/config"
	"turmas/internal/domain"
	"turmas/internal/logging"
	"turmas/internal/services"
	"turmas/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	DataSource          string `name:"data" help:"Schedule document: a file path or an http(s) URL (overrides $TURMAS_DATA_SOURCE)"`
	ExportDir           string `help:"Directory exported files are written to (overrides $TURMAS_EXPORT_DIR)"`
	LoadRetries         int    `help:"Extra attempts when the schedule document is unavailable" default:"5"`
	LoadRetryIntervalMs int    `help:"Milliseconds between load attempts" default:"500"`

	Run      RunCmd      `cmd:"" help:"Start the turmas TUI (default)" default:"1"`
	Catalog  CatalogCmd  `cmd:"catalog" help:"List the disciplines and sections of the schedule document"`
	Plan     PlanCmd     `cmd:"plan" help:"Apply one change to a save slot without the TUI"`
	Slots    SlotsCmd    `cmd:"slots" help:"Manage save slots (list, show, del)"`
	Export   ExportCmd   `cmd:"export" help:"Export a save slot as CSV, image or both"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Config returns the loaded settings, never nil
func (c *CLI) Config() *config.Settings {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TURMAS_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TURMAS_DEBUG_FILE", logFilePath)
		}
	}

	// Create container AFTER logging is initialized so the gorm logger
	// writes to the right place
	container, err := NewContainer(ContainerConfig{
		CatalogCachePath:  config.GetCatalogCachePath(),
		DataSource:        c.DataSource,
		ExportDir:         c.ExportDir,
		LoadRetries:       c.LoadRetries,
		LoadRetryInterval: time.Duration(c.LoadRetryIntervalMs) * time.Millisecond,
		SlotsDBPath:       config.GetSlotsDBPath(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

func (c *CLI) applySettings() {
	s := c.Config()

	if c.MaxLogFiles == logging.DefaultMaxLogFiles && !hasEnv("TURMAS_MAX_LOG_FILES") && s.MaxLogFiles != nil {
		c.MaxLogFiles = *s.MaxLogFiles
	}
	if !c.Debug && !hasEnv("TURMAS_DEBUG") && s.Debug != nil && *s.Debug {
		c.Debug = true
	}

	c.DataSource = firstNonEmpty(c.DataSource, config.ExpandPath(os.Getenv("TURMAS_DATA_SOURCE")), s.DataSource, config.GetDefaultDataSource())
	c.ExportDir = firstNonEmpty(c.ExportDir, config.ExpandPath(os.Getenv("TURMAS_EXPORT_DIR")), s.ExportDir, config.GetDefaultExportDir())

	if c.LoadRetries == config.DefaultLoadRetries {
		c.LoadRetries = intSetting("TURMAS_LOAD_RETRIES", s.LoadRetries, c.LoadRetries)
	}
	if c.LoadRetryIntervalMs == config.DefaultLoadRetryIntervalMs {
		c.LoadRetryIntervalMs = intSetting("TURMAS_LOAD_RETRY_INTERVAL_MS", s.LoadRetryIntervalMs, c.LoadRetryIntervalMs)
	}
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// loadTimetable loads the schedule document and opens an empty session on it
func (c *CLI) loadTimetable(ctx context.Context) (*services.TimetableService, *services.CatalogResult, error) {
	result, err := c.Container.CatalogService.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, problem := range result.Problems {
		logging.Logger.Warn("Skipped catalog record", "problem", problem)
	}
	if result.FromCache {
		fmt.Fprintf(os.Stderr, "Warning: %s is unavailable, using the cached copy\n", result.Source)
	}

	s := c.Config()
	timetable := domain.NewTimetable(result.Index, s.Palette, s.ResolvedHistoryDepth())
	return services.NewTimetableService(timetable, s.GridConfig()), result, nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
	Slot            int  `help:"Save slot to open on start (1-5)" default:"0"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	settings := cli.Config()
	if r.ErrorClearDelay == config.DefaultErrorClearDelay && settings.ErrorClearDelay != nil {
		r.ErrorClearDelay = *settings.ErrorClearDelay
	}

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}

	logging.Logger.Info("Starting turmas TUI")

	ctx := context.Background()
	timetable, catalog, err := cli.loadTimetable(ctx)
	if err != nil {
		logging.Logger.Error("Cannot start without schedule data", "error", err)
		return fmt.Errorf("cannot start: %w", err)
	}

	if r.Slot != 0 {
		if _, err := cli.Container.SlotService.LoadInto(ctx, r.Slot, timetable.Timetable()); err != nil && !errors.Is(err, domain.ErrSlotEmpty) {
			return fmt.Errorf("failed to open slot %d: %w", r.Slot, err)
		}
	}

	model := ui.NewModel(
		timetable,
		cli.Container.SlotService,
		cli.Container.ExportService,
		ui.ModelOptions{
			DevMode:         r.Dev,
			Display:         settings.DisplayOptions(),
			ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
			ExportBaseName:  services.DefaultExportBaseName,
			Keys:            settings.Keys,
			OnDisplayChange: func(opts domain.DisplayOptions) error {
				settings.SetDisplayOptions(opts)
				return config.SaveSettings(settings)
			},
			Problems: catalog.Problems,
		},
	)

	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

func hasEnv(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// intSetting reads an integer from the environment, then settings.json
func intSetting(env string, setting *int, fallback int) int {
	if raw, ok := os.LookupEnv(env); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	if setting != nil {
		return *setting
	}
	return fallback
}
