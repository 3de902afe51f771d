package cmd

import (
	"context"
	"log/slog"

	httpin "catalog/internal/adapters/in/http"
	"catalog/internal/adapters/out/persistence"
	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/jobs"
	"catalog/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *persistence.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	metrics    *metrics.Collectors
	logger     *slog.Logger
}

// NewCompositionRoot wires the catalog on top of an open database. Metrics
// go to a registry of their own, served on /metrics.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}

	collected, err := metrics.NewCollectors(registry)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: persistence.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		metrics:    collected,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) seriesUoWFactory() commands.SeriesUoWFactory {
	return FuncSeriesUoWFactory(func() commands.SeriesUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) entryTypeUoWFactory() commands.EntryTypeUoWFactory {
	return FuncEntryTypeUoWFactory(func() commands.EntryTypeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) entryUoWFactory() commands.EntryUoWFactory {
	return FuncEntryUoWFactory(func() commands.EntryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) characterUoWFactory() commands.CharacterUoWFactory {
	return FuncCharacterUoWFactory(func() commands.CharacterUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) characterInfoUoWFactory() commands.CharacterInfoUoWFactory {
	return FuncCharacterInfoUoWFactory(func() commands.CharacterInfoUoW {
		return c.uowFactory.Create()
	})
}

// Commands creates every write side handler.
func (c *CompositionRoot) Commands() httpin.Commands {
	return httpin.Commands{
		CreateSeries: commands.NewCreateSeriesCommandHandler(c.seriesUoWFactory()),
		UpdateSeries: commands.NewUpdateSeriesCommandHandler(c.seriesUoWFactory()),
		DeleteSeries: commands.NewDeleteSeriesCommandHandler(c.seriesUoWFactory()),

		CreateEntryType: commands.NewCreateEntryTypeCommandHandler(c.entryTypeUoWFactory()),
		UpdateEntryType: commands.NewUpdateEntryTypeCommandHandler(c.entryTypeUoWFactory()),
		DeleteEntryType: commands.NewDeleteEntryTypeCommandHandler(c.entryTypeUoWFactory()),

		CreateEntry: commands.NewCreateEntryCommandHandler(c.entryUoWFactory(), c.metrics, c.logger),
		UpdateEntry: commands.NewUpdateEntryCommandHandler(c.entryUoWFactory(), c.metrics, c.logger),
		DeleteEntry: commands.NewDeleteEntryCommandHandler(c.entryUoWFactory(), c.metrics, c.logger),

		CreateCharacter: commands.NewCreateCharacterCommandHandler(c.characterUoWFactory()),
		UpdateCharacter: commands.NewUpdateCharacterCommandHandler(c.characterUoWFactory()),
		DeleteCharacter: commands.NewDeleteCharacterCommandHandler(c.characterUoWFactory()),

		CreateCharacterInfo: commands.NewCreateCharacterInfoCommandHandler(c.characterInfoUoWFactory()),
		UpdateCharacterInfo: commands.NewUpdateCharacterInfoCommandHandler(c.characterInfoUoWFactory()),
		DeleteCharacterInfo: commands.NewDeleteCharacterInfoCommandHandler(c.characterInfoUoWFactory()),
	}
}

// Queries creates every read side handler.
func (c *CompositionRoot) Queries() httpin.Queries {
	return httpin.Queries{
		GetSeries:  queries.NewGetSeriesQueryHandler(c.gormDB),
		ListSeries: queries.NewListSeriesQueryHandler(c.gormDB),

		GetEntryType:   queries.NewGetEntryTypeQueryHandler(c.gormDB),
		ListEntryTypes: queries.NewListEntryTypesQueryHandler(c.gormDB),

		GetEntry:    queries.NewGetEntryQueryHandler(c.gormDB),
		ListEntries: queries.NewListEntriesQueryHandler(c.gormDB),

		GetCharacter:   queries.NewGetCharacterQueryHandler(c.gormDB),
		ListCharacters: queries.NewListCharactersQueryHandler(c.gormDB),

		GetCharacterInfo:  queries.NewGetCharacterInfoQueryHandler(c.gormDB),
		ListCharacterInfo: queries.NewListCharacterInfoQueryHandler(c.gormDB),
	}
}

// NewRouter builds the echo instance serving the REST API, health, metrics
// and API docs.
func (c *CompositionRoot) NewRouter() (*echo.Echo, error) {
	return httpin.NewRouter(httpin.RouterConfig{
		Server:       httpin.NewServer(c.Commands(), c.Queries()),
		Logger:       c.logger,
		Gatherer:     c.registry,
		Ping:         c.ping,
		EchoLogLevel: c.cfg.EchoLogLevel(),
	})
}

func (c *CompositionRoot) CreateGetOrderViolationsQueryHandler() queries.GetOrderViolationsQueryHandler {
	return queries.NewGetOrderViolationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) NewOrderIntegrityJob() *jobs.OrderIntegrityJob {
	return jobs.NewOrderIntegrityJob(
		c.CreateGetOrderViolationsQueryHandler(), c.metrics, c.cfg.OrderCheckSchedule, c.logger,
	)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrderViolationsQueryHandler(), c.metrics, c.cfg.OrderCheckSchedule, c.logger,
	)
}

func (c *CompositionRoot) ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type FuncSeriesUoWFactory func() commands.SeriesUoW

func (f FuncSeriesUoWFactory) Create() commands.SeriesUoW {
	return f()
}

type FuncEntryTypeUoWFactory func() commands.EntryTypeUoW

func (f FuncEntryTypeUoWFactory) Create() commands.EntryTypeUoW {
	return f()
}

type FuncEntryUoWFactory func() commands.EntryUoW

func (f FuncEntryUoWFactory) Create() commands.EntryUoW {
	return f()
}

type FuncCharacterUoWFactory func() commands.CharacterUoW

func (f FuncCharacterUoWFactory) Create() commands.CharacterUoW {
	return f()
}

type FuncCharacterInfoUoWFactory func() commands.CharacterInfoUoW

func (f FuncCharacterInfoUoWFactory) Create() commands.CharacterInfoUoW {
	return f()
}
