package commands

import (
	"context"
)

type DeleteFlowCommandHandler struct {
	registry FlowRegistry
}

func NewDeleteFlowCommandHandler(registry FlowRegistry) DeleteFlowCommandHandler {
	return DeleteFlowCommandHandler{registry: registry}
}

// Handle unregisters the flow and closes it, releasing its timers.
func (h *DeleteFlowCommandHandler) Handle(ctx context.Context, cmd DeleteFlowCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	controller, err := h.registry.Remove(ctx, cmd.FlowID())
	if err != nil {
		return err
	}

	controller.Close()
	return nil
}
