package commands

import (
	"context"

	"rushdrop/internal/core/domain/model/delivery"
)

type ResetFlowCommandHandler struct {
	registry FlowRegistry
}

func NewResetFlowCommandHandler(registry FlowRegistry) ResetFlowCommandHandler {
	return ResetFlowCommandHandler{registry: registry}
}

func (h *ResetFlowCommandHandler) Handle(ctx context.Context, cmd ResetFlowCommand) (delivery.Snapshot, error) {
	controller, err := lookup(ctx, h.registry, cmd, cmd.FlowID())
	if err != nil {
		return delivery.Snapshot{}, err
	}
	return controller.Reset(ctx)
}
