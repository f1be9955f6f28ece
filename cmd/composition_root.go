package cmd

import (
	"fmt"
	"log/slog"

	httpin "rushdrop/internal/adapters/in/http"
	"rushdrop/internal/adapters/in/websocket"
	"rushdrop/internal/adapters/out/assessor"
	"rushdrop/internal/adapters/out/memory"
	"rushdrop/internal/adapters/out/scheduler"
	"rushdrop/internal/core/application/flow"
	"rushdrop/internal/core/application/usecases/commands"
	"rushdrop/internal/core/application/usecases/queries"
	"rushdrop/internal/core/ports"
	"rushdrop/internal/jobs"
)

type CompositionRoot struct {
	config    Config
	logger    *slog.Logger
	scheduler *scheduler.CronScheduler
	hub       *websocket.Hub
	registry  *memory.FlowRegistry
	assessor  ports.AssessmentService
	factory   *flow.Factory
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	hub := websocket.NewHub(logger)
	cronScheduler := scheduler.NewCronScheduler(logger)

	var service ports.AssessmentService
	switch config.AssessmentProvider {
	case AssessmentProviderRules:
		service = assessor.NewRulesAssessor(assessor.DefaultWeights())
	default:
		service = assessor.NewStaticAssessor(config.AssessmentLatency)
	}

	factory, err := flow.NewFactory(flow.Config{
		Timings:   config.Timings(),
		Scheduler: cronScheduler,
		Assessor:  service,
		Publisher: hub,
		Logger:    logger,
	})
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("flow factory: %w", err)
	}

	return CompositionRoot{
		config:    config,
		logger:    logger,
		scheduler: cronScheduler,
		hub:       hub,
		registry:  memory.NewFlowRegistry(),
		assessor:  service,
		factory:   factory,
	}, nil
}

func (c *CompositionRoot) Scheduler() *scheduler.CronScheduler {
	return c.scheduler
}

func (c *CompositionRoot) Hub() *websocket.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateCreateFlowCommandHandler() commands.CreateFlowCommandHandler {
	return commands.NewCreateFlowCommandHandler(c.factory, c.registry)
}

func (c *CompositionRoot) CreateSetAddressesCommandHandler() commands.SetAddressesCommandHandler {
	return commands.NewSetAddressesCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateRequestDeliveryCommandHandler() commands.RequestDeliveryCommandHandler {
	return commands.NewRequestDeliveryCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateStartAssessmentCommandHandler() commands.StartAssessmentCommandHandler {
	return commands.NewStartAssessmentCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateCloseAssessmentCommandHandler() commands.CloseAssessmentCommandHandler {
	return commands.NewCloseAssessmentCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateResetFlowCommandHandler() commands.ResetFlowCommandHandler {
	return commands.NewResetFlowCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateDeleteFlowCommandHandler() commands.DeleteFlowCommandHandler {
	return commands.NewDeleteFlowCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateEvictIdleFlowsCommandHandler() commands.EvictIdleFlowsCommandHandler {
	return commands.NewEvictIdleFlowsCommandHandler(c.registry, nil)
}

func (c *CompositionRoot) CreateAssessDriverCommandHandler() commands.AssessDriverCommandHandler {
	return commands.NewAssessDriverCommandHandler(c.assessor, c.config.AssessmentTimeout)
}

func (c *CompositionRoot) CreateGetFlowQueryHandler() queries.GetFlowQueryHandler {
	return queries.NewGetFlowQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateEvictIdleFlowsCommandHandler(),
		c.config.FlowEvictionSchedule,
		c.config.FlowIdleTTL,
		c.logger,
	)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Handlers{
			CreateFlow:      c.CreateCreateFlowCommandHandler(),
			SetAddresses:    c.CreateSetAddressesCommandHandler(),
			RequestDelivery: c.CreateRequestDeliveryCommandHandler(),
			StartAssessment: c.CreateStartAssessmentCommandHandler(),
			CloseAssessment: c.CreateCloseAssessmentCommandHandler(),
			ConfirmPayment:  c.CreateConfirmPaymentCommandHandler(),
			ResetFlow:       c.CreateResetFlowCommandHandler(),
			DeleteFlow:      c.CreateDeleteFlowCommandHandler(),
			AssessDriver:    c.CreateAssessDriverCommandHandler(),
			GetFlow:         c.CreateGetFlowQueryHandler(),
		},
		websocket.NewHandler(c.hub, c.registry, c.logger),
		c.logger,
	)
}

// CloseFlows closes every live flow, stopping their timers and assessments.
func (c *CompositionRoot) CloseFlows() int {
	return c.registry.CloseAll()
}
