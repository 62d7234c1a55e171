package commands

import (
	"context"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/production"
	"manufacturing/internal/core/domain/model/vehicle"
	"manufacturing/internal/core/ports"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/logger"
)

// CompleteProductionCommandHandler runs the completion cascade in a single
// transaction:
//
//  1. lock the production and require every process execution to be completed
//  2. complete the production
//  3. register one vehicle per serial number
//  4. complete every linked order whose productions are now all completed
//
// Any failure rolls back all four steps. Rows are locked production first,
// then orders in id order.
type CompleteProductionCommandHandler struct {
	uowFactory CompletionUoWFactory
	log        *logger.Logger
}

func NewCompleteProductionCommandHandler(
	uowFactory CompletionUoWFactory,
	log *logger.Logger,
) CompleteProductionCommandHandler {
	return CompleteProductionCommandHandler{
		uowFactory: uowFactory,
		log:        log.With("component", "complete-production"),
	}
}

func (h *CompleteProductionCommandHandler) Handle(ctx context.Context, cmd CompleteProductionCommand) error {
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

	productionRepo := uow.ProductionRepository()
	p, err := productionRepo.Get(ctx, cmd.ProductionID())
	if err != nil {
		return err
	}

	pending, err := uow.ProcessExecutionRepository().CountNotCompletedByProduction(ctx, p.ID())
	if err != nil {
		return err
	}
	if pending > 0 {
		return errs.NewStateConflictErrorf("production",
			"%d process executions of production %s are not completed", pending, p.ID())
	}

	if err = p.Complete(cmd.EndDate()); err != nil {
		return err
	}

	if err = productionRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = registerVehicles(ctx, uow.ProductionVehicleRepository(), p.ID(), cmd.EndDate(), cmd.SerialNumbers()); err != nil {
		return err
	}

	orderIDs, err := uow.AllocationRepository().FindOrderIDsByProduction(ctx, p.ID())
	if err != nil {
		return err
	}

	completed := make([]string, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		done, completeErr := completeOrderIfFulfilled(ctx, uow, orderID)
		if completeErr != nil {
			return completeErr
		}
		if done {
			completed = append(completed, orderID.String())
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(orderIDs) == 0 {
		h.log.Info("production completed without linked orders", "production_id", p.ID().String())
	}

	h.log.Info("production completed",
		"production_id", p.ID().String(),
		"vehicles", len(cmd.SerialNumbers()),
		"linked_orders", len(orderIDs),
		"completed_orders", completed,
	)
	return nil
}

func registerVehicles(
	ctx context.Context,
	repo ports.ProductionVehicleRepository,
	productionID kernel.UUID,
	completedAt time.Time,
	serialNumbers []string,
) error {
	seen := make(map[string]struct{}, len(serialNumbers))

	for _, serial := range serialNumbers {
		v, err := vehicle.NewProductionVehicle(kernel.NewUUID(), productionID, serial, completedAt)
		if err != nil {
			return err
		}

		if _, ok := seen[serial]; ok {
			return errs.NewDuplicateError("serialNumber", serial)
		}
		seen[serial] = struct{}{}

		exists, err := repo.ExistsBySerialNumber(ctx, serial)
		if err != nil {
			return err
		}
		if exists {
			return errs.NewDuplicateError("serialNumber", serial)
		}

		if err = repo.Add(ctx, v); err != nil {
			return err
		}
	}

	return nil
}

type orderCompletionUoW interface {
	OrderRepoFactory
	ProductionRepoFactory
	AllocationRepoFactory
}

// completeOrderIfFulfilled locks the order and completes it when it is fully
// allocated and every production it is allocated to is completed. Statuses
// are read after the lock is held, so a concurrent completion of a sibling
// production is either visible or still holds the order row.
func completeOrderIfFulfilled(ctx context.Context, uow orderCompletionUoW, orderID kernel.UUID) (bool, error) {
	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return false, err
	}

	if o.Status() != order.FullyAllocated {
		return false, nil
	}

	productionIDs, err := uow.AllocationRepository().FindProductionIDsByOrder(ctx, orderID)
	if err != nil {
		return false, err
	}

	statuses, err := uow.ProductionRepository().GetStatuses(ctx, productionIDs)
	if err != nil {
		return false, err
	}

	fulfilled := o.IsAllProductionsCompleted(func(productionID kernel.UUID) bool {
		return statuses[productionID] == production.Completed
	})
	if !fulfilled {
		return false, nil
	}

	if err = o.Complete(); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	return true, nil
}
