package commands

import (
	"errors"

	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/pkg/guard"
)

var ErrResetFlowCommandIsNotConstructed = errors.New(
	"ResetFlowCommand must be created via NewResetFlowCommand constructor",
)

// ResetFlowCommand starts the flow over from the request step.
type ResetFlowCommand struct {
	flowID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewResetFlowCommand(flowID kernel.UUID) (ResetFlowCommand, error) {
	if err := flowID.Validate(); err != nil {
		return ResetFlowCommand{}, err
	}
	return ResetFlowCommand{
		flowID: flowID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ResetFlowCommand) Validate() error {
	return c.guard.Validate(ErrResetFlowCommandIsNotConstructed)
}

func (c ResetFlowCommand) FlowID() kernel.UUID {
	return c.flowID
}
