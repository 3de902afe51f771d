package commands

import (
	"context"

	"catalog/internal/core/domain/model/series"
)

type CreateSeriesCommandHandler struct {
	uowFactory SeriesUoWFactory
}

func NewCreateSeriesCommandHandler(uowFactory SeriesUoWFactory) CreateSeriesCommandHandler {
	return CreateSeriesCommandHandler{uowFactory: uowFactory}
}

// Handle stores a new series. A name already in use fails with
// errs.ErrIntegrityViolation.
func (h CreateSeriesCommandHandler) Handle(ctx context.Context, cmd CreateSeriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := series.NewSeries(cmd.ID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SeriesRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateSeriesCommandHandler struct {
	uowFactory SeriesUoWFactory
}

func NewUpdateSeriesCommandHandler(uowFactory SeriesUoWFactory) UpdateSeriesCommandHandler {
	return UpdateSeriesCommandHandler{uowFactory: uowFactory}
}

func (h UpdateSeriesCommandHandler) Handle(ctx context.Context, cmd UpdateSeriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SeriesRepository()

	s, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if err = s.Rename(cmd.Name()); err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type DeleteSeriesCommandHandler struct {
	uowFactory SeriesUoWFactory
}

func NewDeleteSeriesCommandHandler(uowFactory SeriesUoWFactory) DeleteSeriesCommandHandler {
	return DeleteSeriesCommandHandler{uowFactory: uowFactory}
}

func (h DeleteSeriesCommandHandler) Handle(ctx context.Context, cmd DeleteSeriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SeriesRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
