package jobs

import (
	"fmt"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/pkg/logger"
)

// JobManager starts and stops the background jobs together.
type JobManager struct {
	orderCompletionJob *OrderCompletionJob
}

func NewJobManager(
	completeFulfilledOrdersHandler commands.CompleteFulfilledOrdersCommandHandler,
	orderCompletionSchedule string,
	log *logger.Logger,
) *JobManager {
	return &JobManager{
		orderCompletionJob: NewOrderCompletionJob(completeFulfilledOrdersHandler, orderCompletionSchedule, log),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.orderCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start order completion job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.orderCompletionJob.Stop()
}
