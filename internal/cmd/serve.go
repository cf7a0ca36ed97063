package cmd

import (
	"context"
	"fmt"
	"time"

	"turmas/internal/config"
	"turmas/internal/logging"
	"turmas/internal/server"
	"turmas/internal/ui"
)

// ServeCmd serves the TUI over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file (default ~/.ssh/authorized_keys)" type:"path"`
	HostKey        string `help:"Host key path (default $TURMAS_HOME/ssh/id_ed25519)" type:"path"`
	Host           string `help:"Address to listen on" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
	ReadOnlySlots  bool   `help:"Do not offer save slots to remote sessions"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	settings := cli.Config()
	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}

	ctx := context.Background()
	result, err := cli.Container.CatalogService.Load(ctx)
	if err != nil {
		return fmt.Errorf("cannot serve: %w", err)
	}

	errorClearDelay := time.Duration(config.DefaultErrorClearDelay) * time.Second
	if settings.ErrorClearDelay != nil {
		errorClearDelay = time.Duration(*settings.ErrorClearDelay) * time.Second
	}

	slots := cli.Container.SlotService
	if s.ReadOnlySlots {
		slots = nil
	}

	srv, err := server.NewServer(s.Host, s.Port, result.Index, slots, server.Options{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Display:            settings.DisplayOptions(),
		ErrorClearDelay:    errorClearDelay,
		Grid:               settings.GridConfig(),
		HistoryDepth:       settings.ResolvedHistoryDepth(),
		HostKeyPath:        s.HostKey,
		Keys:               settings.Keys,
		Palette:            settings.Palette,
		Problems:           result.Problems,
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("Serving timetable over SSH", "address", srv.Address(), "disciplines", result.Index.Len())
	return srv.Start(ctx)
}
