package cmd

import (
	"time"

	adaptercatalog "turmas/internal/adapters/catalog"
	adapterclipboard "turmas/internal/adapters/clipboard"
	adapterfiles "turmas/internal/adapters/files"
	adapterrender "turmas/internal/adapters/render"
	adapterstorage "turmas/internal/adapters/storage"
	"turmas/internal/logging"
	"turmas/internal/ports"
	"turmas/internal/services"
)

// fetchTimeout bounds one HTTP request for the schedule document
const fetchTimeout = 30 * time.Second

// ContainerConfig holds the resolved locations the container is wired from
type ContainerConfig struct {
	CatalogCachePath  string
	DataSource        string
	ExportDir         string
	LoadRetries       int
	LoadRetryInterval time.Duration
	SlotsDBPath       string
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	CatalogService *services.CatalogService
	ExportService  *services.ExportService
	SlotService    *services.SlotService

	// ExportDir is where file exports land
	ExportDir string

	// Internal - for cleanup only
	slotRepo ports.SlotRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cfg ContainerConfig) (*Container, error) {
	slotRepo, err := adapterstorage.NewSQLiteRepository(cfg.SlotsDBPath)
	if err != nil {
		return nil, err
	}

	source := adaptercatalog.NewSource(cfg.DataSource, fetchTimeout)
	cache := adaptercatalog.NewFileCache(cfg.CatalogCachePath)
	files := adapterfiles.NewDirWriter(cfg.ExportDir)

	logging.Logger.Debug("Container wired",
		"data_source", source.Describe(),
		"export_dir", cfg.ExportDir,
		"slots_db", cfg.SlotsDBPath)

	return &Container{
		CatalogService: services.NewCatalogService(source, cache, cfg.LoadRetries, cfg.LoadRetryInterval),
		ExportService:  services.NewExportService(adapterrender.NewGGRenderer(), adapterclipboard.NewSystem(), files),
		ExportDir:      files.Dir(),
		SlotService:    services.NewSlotService(slotRepo),
		slotRepo:       slotRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.slotRepo != nil {
		return c.slotRepo.Close()
	}
	return nil
}
