package commands

import (
	"context"

	"rushdrop/internal/core/domain/model/delivery"
)

type CloseAssessmentCommandHandler struct {
	registry FlowRegistry
}

func NewCloseAssessmentCommandHandler(registry FlowRegistry) CloseAssessmentCommandHandler {
	return CloseAssessmentCommandHandler{registry: registry}
}

func (h *CloseAssessmentCommandHandler) Handle(ctx context.Context, cmd CloseAssessmentCommand) (delivery.Snapshot, error) {
	controller, err := lookup(ctx, h.registry, cmd, cmd.FlowID())
	if err != nil {
		return delivery.Snapshot{}, err
	}
	return controller.CloseAssessmentPanel(ctx)
}
