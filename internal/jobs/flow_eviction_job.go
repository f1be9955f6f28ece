package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rushdrop/internal/core/application/usecases/commands"
	"rushdrop/internal/pkg/slogcron"

	"github.com/robfig/cron/v3"
)

// DefaultFlowEvictionSchedule runs the eviction at the top of every minute.
const DefaultFlowEvictionSchedule = "0 * * * * *"

// FlowEvictionJob closes and forgets flows nobody touched for idleFor.
type FlowEvictionJob struct {
	handler  commands.EvictIdleFlowsCommandHandler
	schedule string
	idleFor  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFlowEvictionJob creates the job. schedule is a six-field cron expression
// (seconds first) or a descriptor such as "@every 5m".
func NewFlowEvictionJob(
	handler commands.EvictIdleFlowsCommandHandler,
	schedule string,
	idleFor time.Duration,
	logger *slog.Logger,
) *FlowEvictionJob {
	logger = logger.With("component", "flow_eviction_job")
	return &FlowEvictionJob{
		handler:  handler,
		schedule: schedule,
		idleFor:  idleFor,
		cron:     cron.New(cron.WithSeconds(), cron.WithLogger(slogcron.New(logger))),
		logger:   logger,
	}
}

// Start validates the configuration and schedules the job.
func (j *FlowEvictionJob) Start() error {
	cmd, err := commands.NewEvictIdleFlowsCommand(j.idleFor)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.run(cmd) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Flow eviction job started",
		"schedule", j.schedule, "idleFor", j.idleFor.String())
	return nil
}

func (j *FlowEvictionJob) run(cmd commands.EvictIdleFlowsCommand) {
	ctx := context.Background()

	evicted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Flow eviction job failed", "error", err)
		return
	}
	if evicted > 0 {
		j.logger.InfoContext(ctx, "Idle flows evicted", "count", evicted)
	}
}

// Stop stops the flow eviction job.
func (j *FlowEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Flow eviction job stopped")
}
