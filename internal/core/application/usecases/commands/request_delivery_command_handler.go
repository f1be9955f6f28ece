package commands

import (
	"context"

	"rushdrop/internal/core/domain/model/delivery"
)

// RequestDeliveryCommandHandler moves a flow from request to matching. The
// matched step follows once the matching delay has passed.
//
// Example:
//
//	handler := NewRequestDeliveryCommandHandler(registry)
//	cmd, _ := NewRequestDeliveryCommand(flowID)
//
//	snap, err := handler.Handle(ctx, cmd)
//	if errs.IsValidation(err) {
//	    // an address is missing; subscribers got a Missing Information notification
//	}
//	// snap.State.Step() == delivery.Matching; the driver and quote follow on the stream
type RequestDeliveryCommandHandler struct {
	registry FlowRegistry
}

// NewRequestDeliveryCommandHandler creates a handler over the live flows in
// registry.
func NewRequestDeliveryCommandHandler(registry FlowRegistry) RequestDeliveryCommandHandler {
	return RequestDeliveryCommandHandler{registry: registry}
}

// Handle returns a validation error, and emits a notification, when either
// address is missing.
func (h *RequestDeliveryCommandHandler) Handle(ctx context.Context, cmd RequestDeliveryCommand) (delivery.Snapshot, error) {
	controller, err := lookup(ctx, h.registry, cmd, cmd.FlowID())
	if err != nil {
		return delivery.Snapshot{}, err
	}
	return controller.RequestDelivery(ctx)
}
