package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/catalog"
	"manufacturing/internal/core/domain/model/kernel"
)

// Reference data repositories. Orders and executions only check that the
// referenced entries exist.
type (
	VehicleModelRepository interface {
		Add(ctx context.Context, m *catalog.VehicleModel) error
		Get(ctx context.Context, id kernel.UUID) (*catalog.VehicleModel, error)
	}

	ProcessTypeRepository interface {
		// Add returns errs.DuplicateError for a process order already in use.
		Add(ctx context.Context, pt *catalog.ProcessType) error
		Update(ctx context.Context, pt *catalog.ProcessType) error
		Get(ctx context.Context, id kernel.UUID) (*catalog.ProcessType, error)
		ExistsByProcessOrder(ctx context.Context, processOrder int) (bool, error)
	}

	EquipmentRepository interface {
		Add(ctx context.Context, e *catalog.Equipment) error
		Update(ctx context.Context, e *catalog.Equipment) error
		Get(ctx context.Context, id kernel.UUID) (*catalog.Equipment, error)
	}
)
