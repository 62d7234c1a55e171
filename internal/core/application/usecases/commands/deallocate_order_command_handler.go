package commands

import (
	"context"

	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/pkg/logger"
)

// DeallocateOrderCommandHandler removes an allocation from both sides and
// re-derives the order status. Cancelled and completed orders keep their
// status.
type DeallocateOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
	allocator  services.Allocator
	log        *logger.Logger
}

func NewDeallocateOrderCommandHandler(
	uowFactory AllocationUoWFactory,
	allocator services.Allocator,
	log *logger.Logger,
) DeallocateOrderCommandHandler {
	return DeallocateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
		log:        log.With("component", "deallocate-order"),
	}
}

func (h *DeallocateOrderCommandHandler) Handle(ctx context.Context, cmd DeallocateOrderCommand) error {
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

	allocationRepo := uow.AllocationRepository()
	a, err := allocationRepo.Get(ctx, cmd.AllocationID())
	if err != nil {
		return err
	}

	p, err := uow.ProductionRepository().Get(ctx, a.ProductionID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, a.OrderID())
	if err != nil {
		return err
	}

	if err = h.allocator.Deallocate(o, p, a.ID()); err != nil {
		return err
	}

	if err = allocationRepo.Delete(ctx, a.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.log.Info("order deallocated",
		"allocation_id", a.ID().String(),
		"order_id", o.ID().String(),
		"production_id", p.ID().String(),
		"order_status", o.Status().String(),
	)
	return nil
}
