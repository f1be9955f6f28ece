package flow

import (
	"errors"
	"log/slog"
	"time"

	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/core/ports"
	"rushdrop/internal/pkg/errs"
)

// Config holds what every controller of a service shares.
type Config struct {
	Timings   Timings
	Scheduler ports.Scheduler
	Assessor  ports.AssessmentService
	Publisher ports.FlowPublisher
	Logger    *slog.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (c Config) validate() error {
	var missing []error
	if c.Scheduler == nil {
		missing = append(missing, errs.NewValueIsRequiredError("scheduler"))
	}
	if c.Assessor == nil {
		missing = append(missing, errs.NewValueIsRequiredError("assessor"))
	}
	if c.Publisher == nil {
		missing = append(missing, errs.NewValueIsRequiredError("publisher"))
	}
	return errors.Join(append(missing, c.Timings.Validate())...)
}

// Factory creates controllers sharing one Config.
type Factory struct {
	cfg Config
}

// NewFactory validates cfg once so NewController cannot fail on configuration.
func NewFactory(cfg Config) (*Factory, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Factory{cfg: cfg}, nil
}

// NewController creates a controller for a new flow in its initial state.
func (f *Factory) NewController(id kernel.UUID) (*Controller, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return newController(id, f.cfg), nil
}
