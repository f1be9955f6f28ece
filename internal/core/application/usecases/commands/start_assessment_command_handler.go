package commands

import (
	"context"

	"rushdrop/internal/core/domain/model/delivery"
)

// StartAssessmentCommandHandler runs a reliability assessment for the matched
// driver of a flow. Starting again while one is pending supersedes it.
//
// Example:
//
//	handler := NewStartAssessmentCommandHandler(registry)
//	cmd, _ := NewStartAssessmentCommand(flowID)
//
//	snap, err := handler.Handle(ctx, cmd)
//	// snap.State.AssessmentInProgress() stays true until the result is published
type StartAssessmentCommandHandler struct {
	registry FlowRegistry
}

func NewStartAssessmentCommandHandler(registry FlowRegistry) StartAssessmentCommandHandler {
	return StartAssessmentCommandHandler{registry: registry}
}

// Handle returns as soon as the assessment is under way; the outcome is
// published with the next snapshot of the flow.
func (h *StartAssessmentCommandHandler) Handle(ctx context.Context, cmd StartAssessmentCommand) (delivery.Snapshot, error) {
	controller, err := lookup(ctx, h.registry, cmd, cmd.FlowID())
	if err != nil {
		return delivery.Snapshot{}, err
	}
	return controller.StartReliabilityAssessment(ctx)
}
