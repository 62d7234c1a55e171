package commands

import (
	"context"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrRescheduleProductionCommandIsNotConstructed = errors.New(
	"RescheduleProductionCommand must be created via NewRescheduleProductionCommand constructor",
)

// RescheduleProductionCommand moves the start of a planned production.
type RescheduleProductionCommand struct { //nolint:recvcheck //using for validation
	productionID kernel.UUID
	startDate    time.Time

	guard guard.ConstructorGuard
}

func NewRescheduleProductionCommand(productionID kernel.UUID, startDate time.Time) (RescheduleProductionCommand, error) {
	if err := errors.Join(
		requireID("productionID", productionID),
		requireDate("startDate", startDate),
	); err != nil {
		return RescheduleProductionCommand{}, err
	}

	return RescheduleProductionCommand{
		productionID: productionID,
		startDate:    startDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RescheduleProductionCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleProductionCommandIsNotConstructed)
}

func (c RescheduleProductionCommand) ProductionID() kernel.UUID {
	return c.productionID
}

func (c RescheduleProductionCommand) StartDate() time.Time {
	return c.startDate
}

type RescheduleProductionCommandHandler struct {
	uowFactory ProductionUoWFactory
}

func NewRescheduleProductionCommandHandler(uowFactory ProductionUoWFactory) RescheduleProductionCommandHandler {
	return RescheduleProductionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RescheduleProductionCommandHandler) Handle(ctx context.Context, cmd RescheduleProductionCommand) error {
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

	repo := uow.ProductionRepository()
	p, err := repo.Get(ctx, cmd.ProductionID())
	if err != nil {
		return err
	}

	if err = p.RescheduleStartDate(cmd.StartDate()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
