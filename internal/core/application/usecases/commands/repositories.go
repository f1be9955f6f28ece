// Package commands contains the operations that change flows.
// Every command is built by a constructor that validates its input and is
// executed by a handler that looks the flow up in the registry and drives its
// controller.
package commands

import (
	"context"
	"time"

	"rushdrop/internal/core/application/flow"
	"rushdrop/internal/core/domain/model/kernel"
)

type (
	// FlowRegistry holds the live flows of the process. Flows are isolated from
	// each other; the registry only maps identifiers to controllers.
	FlowRegistry interface {
		// Add registers a new flow. Registering an identifier twice is a
		// ValueIsInvalidError.
		Add(ctx context.Context, controller *flow.Controller) error

		// Get returns an ObjectNotFoundError for unknown identifiers.
		Get(ctx context.Context, id kernel.UUID) (*flow.Controller, error)

		// Remove unregisters a flow and returns it. The caller closes it.
		Remove(ctx context.Context, id kernel.UUID) (*flow.Controller, error)

		// RemoveIdle unregisters and returns every flow whose last activity is
		// before cutoff.
		RemoveIdle(ctx context.Context, cutoff time.Time) []*flow.Controller
	}

	// ControllerFactory creates controllers for new flows.
	ControllerFactory interface {
		NewController(id kernel.UUID) (*flow.Controller, error)
	}
)

// validatable is implemented by every command.
type validatable interface {
	Validate() error
}

// lookup validates cmd and resolves the flow it targets.
func lookup(ctx context.Context, registry FlowRegistry, cmd validatable, id kernel.UUID) (*flow.Controller, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return registry.Get(ctx, id)
}
