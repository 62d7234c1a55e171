package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/allocation"
	"manufacturing/internal/core/domain/model/kernel"
)

// AllocationRepository stores the links between orders and productions. An
// order holds at most one allocation per production.
type AllocationRepository interface {
	// Add returns errs.DuplicateError when the (order, production) pair is
	// already linked.
	Add(ctx context.Context, a *allocation.Allocation) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error)

	// FindOrderIDsByProduction lists the distinct orders linked to productionID.
	FindOrderIDsByProduction(ctx context.Context, productionID kernel.UUID) ([]kernel.UUID, error)

	// FindProductionIDsByOrder lists the distinct productions linked to orderID.
	FindProductionIDsByOrder(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error)
}
