package commands

import (
	"errors"

	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/pkg/guard"
)

var ErrCreateFlowCommandIsNotConstructed = errors.New(
	"CreateFlowCommand must be created via NewCreateFlowCommand constructor",
)

// CreateFlowCommand starts a new, isolated delivery flow.
// Each flow owns its own state, timers and subscribers.
//
// Example:
//
//	flowID := kernel.NewUUID()
//	cmd, err := NewCreateFlowCommand(flowID)
//	if err != nil {
//	    return fmt.Errorf("invalid flow id: %w", err)
//	}
//
//	snap, err := handler.Handle(ctx, cmd)
//	// snap.State.Step() == delivery.Request
type CreateFlowCommand struct {
	flowID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewCreateFlowCommand creates a command for the given flow ID.
// Returns a ValueIsRequiredError for the nil ID.
func NewCreateFlowCommand(flowID kernel.UUID) (CreateFlowCommand, error) {
	if err := flowID.Validate(); err != nil {
		return CreateFlowCommand{}, err
	}
	return CreateFlowCommand{
		flowID: flowID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateFlowCommand) Validate() error {
	return c.guard.Validate(ErrCreateFlowCommandIsNotConstructed)
}

func (c CreateFlowCommand) FlowID() kernel.UUID {
	return c.flowID
}
