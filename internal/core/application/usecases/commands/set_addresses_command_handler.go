package commands

import (
	"context"

	"rushdrop/internal/core/domain/model/delivery"
)

// SetAddressesCommandHandler stores the pickup and delivery addresses of a flow
// in the request step.
//
// Example:
//
//	handler := NewSetAddressesCommandHandler(registry)
//	cmd, _ := NewSetAddressesCommand(flowID, "1 Main St", "42 Side Rd")
//
//	snap, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, delivery.ErrTransitionNotAllowed) {
//	    // the flow has already left the request step
//	}
type SetAddressesCommandHandler struct {
	registry FlowRegistry
}

func NewSetAddressesCommandHandler(registry FlowRegistry) SetAddressesCommandHandler {
	return SetAddressesCommandHandler{registry: registry}
}

// Handle stores the addresses as typed. Blank and over-long addresses are
// accepted here and reported when the delivery is requested.
func (h *SetAddressesCommandHandler) Handle(ctx context.Context, cmd SetAddressesCommand) (delivery.Snapshot, error) {
	controller, err := lookup(ctx, h.registry, cmd, cmd.FlowID())
	if err != nil {
		return delivery.Snapshot{}, err
	}
	return controller.SetAddresses(ctx, cmd.PickupAddress(), cmd.DeliveryAddress())
}
