package commands

import (
	"context"
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/pkg/logger"
)

// CompleteFulfilledOrdersCommandHandler catches orders that the completion
// cascade left behind, e.g. when two sibling productions finished at the same
// time. It is meant to be run periodically.
//
// Candidates are listed without locks and each one is then completed in its
// own transaction, so the sweep never holds more than one order row.
type CompleteFulfilledOrdersCommandHandler struct {
	uowFactory CompletionUoWFactory
	log        *logger.Logger
}

func NewCompleteFulfilledOrdersCommandHandler(
	uowFactory CompletionUoWFactory,
	log *logger.Logger,
) CompleteFulfilledOrdersCommandHandler {
	return CompleteFulfilledOrdersCommandHandler{
		uowFactory: uowFactory,
		log:        log.With("component", "complete-fulfilled-orders"),
	}
}

func (h *CompleteFulfilledOrdersCommandHandler) Handle(ctx context.Context, cmd CompleteFulfilledOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	candidates, err := h.listCandidates(ctx)
	if err != nil {
		return err
	}

	var (
		completed = make([]string, 0)
		failures  []error
	)
	for _, orderID := range candidates {
		done, completeErr := h.completeOne(ctx, orderID)
		if completeErr != nil {
			h.log.Warn("fulfilled order not completed", "order_id", orderID.String(), "error", completeErr)
			failures = append(failures, fmt.Errorf("order %s: %w", orderID, completeErr))
			continue
		}
		if done {
			completed = append(completed, orderID.String())
		}
	}

	if len(completed) > 0 {
		h.log.Info("fulfilled orders completed",
			"checked", len(candidates),
			"completed_orders", completed,
		)
	}
	return errors.Join(failures...)
}

func (h *CompleteFulfilledOrdersCommandHandler) listCandidates(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllInStatus(ctx, order.FullyAllocated)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids, nil
}

func (h *CompleteFulfilledOrdersCommandHandler) completeOne(ctx context.Context, orderID kernel.UUID) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	done, err := completeOrderIfFulfilled(ctx, uow, orderID)
	if err != nil || !done {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
