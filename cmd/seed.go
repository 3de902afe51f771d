package cmd

import (
	"context"
	"fmt"
	"time"

	httpin "catalog/internal/adapters/in/http"
	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/kernel"
)

type seedEntry struct {
	name     string
	date     time.Time
	position int
}

type seedInfo struct {
	text  string
	entry string
}

type seedCharacter struct {
	name       string
	firstEntry string
	infos      []seedInfo
}

type seedSeries struct {
	name       string
	entryType  string
	entries    []seedEntry
	characters []seedCharacter
}

var (
	seedEntryTypes = []string{"Book", "Episode", "Movie"}

	seedCatalog = []seedSeries{
		{
			name:      "Riyria Revelations",
			entryType: "Book",
			entries: []seedEntry{
				{name: "Theft of Swords", date: day(2011, time.January, 1), position: 1},
				{name: "Rise of Empire", date: day(2011, time.January, 1), position: 2},
				{name: "Heir of Novron", date: day(2012, time.January, 1), position: 3},
			},
			characters: []seedCharacter{
				{
					name:       "Hadrian",
					firstEntry: "Theft of Swords",
					infos: []seedInfo{
						{text: "Swordmaster, friend of Royce (part of Riyria)", entry: "Theft of Swords"},
						{text: "Guardian of Novron's Heir", entry: "Heir of Novron"},
					},
				},
				{
					name:       "Royce",
					firstEntry: "Theft of Swords",
					infos: []seedInfo{
						{text: "Thief, friend of Hadrian (part of Riyria)", entry: "Theft of Swords"},
					},
				},
			},
		},
		{
			name:      "Dune",
			entryType: "Book",
			entries: []seedEntry{
				{name: "Dune", date: day(1965, time.January, 1), position: 1},
				{name: "Dune Messiah", date: day(1969, time.January, 1), position: 2},
				{name: "Children of Dune", date: day(1976, time.January, 1), position: 3},
			},
		},
	}
)

// Seed fills an empty catalog with a small demo data set through the regular
// command handlers. It returns false without writing when any series exists.
func (c *CompositionRoot) Seed(ctx context.Context) (bool, error) {
	existing, err := queries.NewListSeriesQueryHandler(c.gormDB).
		Handle(ctx, queries.NewListSeriesQuery(queries.SeriesFilter{}, queries.FirstPage()))
	if err != nil {
		return false, err
	}
	if existing.Size > 0 {
		c.logger.Info("Catalog is not empty, skipping seed", "series", existing.Size)
		return false, nil
	}

	s := seeder{cmds: c.Commands(), entryTypes: map[string]kernel.UUID{}}
	if err = s.run(ctx); err != nil {
		return false, err
	}

	c.logger.Info("Catalog seeded", "series", len(seedCatalog), "entry_types", len(seedEntryTypes))
	return true, nil
}

type seeder struct {
	cmds       httpin.Commands
	entryTypes map[string]kernel.UUID
}

func (s seeder) run(ctx context.Context) error {
	for _, name := range seedEntryTypes {
		id := kernel.NewUUID()
		cmd, err := commands.NewCreateEntryTypeCommand(id, name)
		if err != nil {
			return err
		}
		if err = s.cmds.CreateEntryType.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed entry type %q: %w", name, err)
		}
		s.entryTypes[name] = id
	}

	for _, series := range seedCatalog {
		if err := s.series(ctx, series); err != nil {
			return fmt.Errorf("seed series %q: %w", series.name, err)
		}
	}
	return nil
}

func (s seeder) series(ctx context.Context, series seedSeries) error {
	seriesID := kernel.NewUUID()
	createSeries, err := commands.NewCreateSeriesCommand(seriesID, series.name)
	if err != nil {
		return err
	}
	if err = s.cmds.CreateSeries.Handle(ctx, createSeries); err != nil {
		return err
	}

	entries := make(map[string]kernel.UUID, len(series.entries))
	for _, e := range series.entries {
		entryID := kernel.NewUUID()
		createEntry, err := commands.NewCreateEntryCommand(
			entryID, e.name, e.date, s.entryTypes[series.entryType], seriesID, e.position,
		)
		if err != nil {
			return err
		}
		if err = s.cmds.CreateEntry.Handle(ctx, createEntry); err != nil {
			return fmt.Errorf("entry %q: %w", e.name, err)
		}
		entries[e.name] = entryID
	}

	for _, ch := range series.characters {
		characterID := kernel.NewUUID()
		createCharacter, err := commands.NewCreateCharacterCommand(
			characterID, ch.name, seriesID, entries[ch.firstEntry],
		)
		if err != nil {
			return err
		}
		if err = s.cmds.CreateCharacter.Handle(ctx, createCharacter); err != nil {
			return fmt.Errorf("character %q: %w", ch.name, err)
		}

		for _, info := range ch.infos {
			createInfo, err := commands.NewCreateCharacterInfoCommand(
				kernel.NewUUID(), info.text, entries[info.entry], characterID,
			)
			if err != nil {
				return err
			}
			if err = s.cmds.CreateCharacterInfo.Handle(ctx, createInfo); err != nil {
				return fmt.Errorf("character info of %q: %w", ch.name, err)
			}
		}
	}
	return nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
