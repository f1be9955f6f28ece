package commands

import (
	"errors"

	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/pkg/guard"
)

var ErrDeleteFlowCommandIsNotConstructed = errors.New(
	"DeleteFlowCommand must be created via NewDeleteFlowCommand constructor",
)

// DeleteFlowCommand tears a flow down and forgets it.
type DeleteFlowCommand struct {
	flowID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewDeleteFlowCommand(flowID kernel.UUID) (DeleteFlowCommand, error) {
	if err := flowID.Validate(); err != nil {
		return DeleteFlowCommand{}, err
	}
	return DeleteFlowCommand{
		flowID: flowID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteFlowCommand) Validate() error {
	return c.guard.Validate(ErrDeleteFlowCommandIsNotConstructed)
}

func (c DeleteFlowCommand) FlowID() kernel.UUID {
	return c.flowID
}
