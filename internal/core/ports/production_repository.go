package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/production"
)

// ProductionRepository persists production aggregates together with their
// allocations.
type ProductionRepository interface {
	Add(ctx context.Context, aggregate *production.Production) error
	Update(ctx context.Context, aggregate *production.Production) error

	// Get loads the production with its allocations and locks the row.
	Get(ctx context.Context, id kernel.UUID) (*production.Production, error)

	// GetStatuses reads the status of each production in ids without locking.
	// Unknown ids are absent from the result.
	GetStatuses(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]production.Status, error)
}
