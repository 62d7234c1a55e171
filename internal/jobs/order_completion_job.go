package jobs

import (
	"context"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

const DefaultOrderCompletionSchedule = "@every 1m"

// OrderCompletionJob periodically completes fully allocated orders whose
// productions have all finished.
type OrderCompletionJob struct {
	handler  commands.CompleteFulfilledOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	log      *logger.Logger
}

// NewOrderCompletionJob runs handler on schedule, a standard cron spec or a
// descriptor such as "@every 30s". An empty schedule means
// DefaultOrderCompletionSchedule.
func NewOrderCompletionJob(
	handler commands.CompleteFulfilledOrdersCommandHandler,
	schedule string,
	log *logger.Logger,
) *OrderCompletionJob {
	if schedule == "" {
		schedule = DefaultOrderCompletionSchedule
	}

	return &OrderCompletionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:      log.With("component", "order_completion_job"),
	}
}

func (j *OrderCompletionJob) Start() error {
	if _, err := j.cron.AddJob(j.schedule, j); err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info("order completion job started", "schedule", j.schedule)
	return nil
}

// Run performs a single sweep.
func (j *OrderCompletionJob) Run() {
	if err := j.handler.Handle(context.Background(), commands.NewCompleteFulfilledOrdersCommand()); err != nil {
		j.log.Error("order completion job failed", "error", err)
	}
}

// Stop waits for a running sweep to finish.
func (j *OrderCompletionJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("order completion job stopped")
}
