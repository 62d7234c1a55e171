package ports

import (
	"context"

	"manufacturing/internal/core/domain/model/execution"
	"manufacturing/internal/core/domain/model/kernel"
)

type ProcessExecutionRepository interface {
	Add(ctx context.Context, aggregate *execution.ProcessExecution) error
	Update(ctx context.Context, aggregate *execution.ProcessExecution) error

	// Get loads and locks the execution.
	Get(ctx context.Context, id kernel.UUID) (*execution.ProcessExecution, error)

	// CountNotCompletedByProduction counts executions of productionID whose
	// status is anything but Completed.
	CountNotCompletedByProduction(ctx context.Context, productionID kernel.UUID) (int64, error)
}
