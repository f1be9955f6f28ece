package commands

import (
	"context"

	"rushdrop/internal/core/domain/model/delivery"
)

// CreateFlowCommandHandler creates a controller and registers it.
// The controller starts in the request step with no addresses.
//
// Example:
//
//	handler := NewCreateFlowCommandHandler(factory, registry)
//	cmd, _ := NewCreateFlowCommand(kernel.NewUUID())
//
//	snap, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("flow creation failed: %w", err)
//	}
//	// The flow is now reachable through registry.Get(ctx, snap.FlowID)
type CreateFlowCommandHandler struct {
	factory  ControllerFactory
	registry FlowRegistry
}

// NewCreateFlowCommandHandler creates a handler that builds controllers with
// factory and keeps them in registry.
func NewCreateFlowCommandHandler(factory ControllerFactory, registry FlowRegistry) CreateFlowCommandHandler {
	return CreateFlowCommandHandler{
		factory:  factory,
		registry: registry,
	}
}

// Handle returns the initial snapshot of the new flow.
// A controller that cannot be registered is closed before the error returns,
// so no timers outlive a failed create.
func (h *CreateFlowCommandHandler) Handle(ctx context.Context, cmd CreateFlowCommand) (delivery.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return delivery.Snapshot{}, err
	}

	controller, err := h.factory.NewController(cmd.FlowID())
	if err != nil {
		return delivery.Snapshot{}, err
	}

	if err = h.registry.Add(ctx, controller); err != nil {
		controller.Close()
		return delivery.Snapshot{}, err
	}

	return controller.Snapshot()
}
