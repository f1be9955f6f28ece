package commands

import (
	"context"

	"rushdrop/internal/core/domain/model/delivery"
)

// ConfirmPaymentCommandHandler starts tracking a matched delivery.
// The driver then advances one checkpoint per tracking interval until the
// delivery completes.
//
// Example:
//
//	handler := NewConfirmPaymentCommandHandler(registry)
//	method, _ := delivery.ParsePaymentMethod("card")
//	cmd, _ := NewConfirmPaymentCommand(flowID, method)
//
//	snap, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("payment failed: %w", err)
//	}
//	// snap.State.Step() == delivery.Tracking
type ConfirmPaymentCommandHandler struct {
	registry FlowRegistry
}

func NewConfirmPaymentCommandHandler(registry FlowRegistry) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{registry: registry}
}

// Handle wraps delivery.ErrTransitionNotAllowed unless the flow is matched.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (delivery.Snapshot, error) {
	controller, err := lookup(ctx, h.registry, cmd, cmd.FlowID())
	if err != nil {
		return delivery.Snapshot{}, err
	}
	return controller.ConfirmPayment(ctx, cmd.Method())
}
