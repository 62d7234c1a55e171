package commands

import (
	"context"

	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/pkg/logger"
)

// AllocateOrderCommandHandler links an order to a production. Both rows are
// locked, production first, so concurrent allocations against the same
// order cannot overshoot its quantity.
type AllocateOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
	allocator  services.Allocator
	log        *logger.Logger
}

func NewAllocateOrderCommandHandler(
	uowFactory AllocationUoWFactory,
	allocator services.Allocator,
	log *logger.Logger,
) AllocateOrderCommandHandler {
	return AllocateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
		log:        log.With("component", "allocate-order"),
	}
}

func (h *AllocateOrderCommandHandler) Handle(ctx context.Context, cmd AllocateOrderCommand) error {
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

	p, err := uow.ProductionRepository().Get(ctx, cmd.ProductionID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	a, err := h.allocator.Allocate(o, p, cmd.AllocationID(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = uow.AllocationRepository().Add(ctx, a); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.log.Info("order allocated",
		"allocation_id", a.ID().String(),
		"order_id", o.ID().String(),
		"production_id", p.ID().String(),
		"quantity", a.Quantity(),
		"order_status", o.Status().String(),
	)
	return nil
}
