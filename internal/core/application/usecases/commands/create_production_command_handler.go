package commands

import (
	"context"

	"manufacturing/internal/core/domain/model/production"
)

type CreateProductionCommandHandler struct {
	uowFactory ProductionUoWFactory
}

func NewCreateProductionCommandHandler(uowFactory ProductionUoWFactory) CreateProductionCommandHandler {
	return CreateProductionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateProductionCommandHandler) Handle(ctx context.Context, cmd CreateProductionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := production.NewProduction(cmd.ProductionID(), cmd.StartDate())
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

	if err = uow.ProductionRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
