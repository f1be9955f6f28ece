package commands

import (
	"errors"

	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/pkg/guard"
)

var ErrRequestDeliveryCommandIsNotConstructed = errors.New(
	"RequestDeliveryCommand must be created via NewRequestDeliveryCommand constructor",
)

// RequestDeliveryCommand asks for a driver for the entered addresses.
type RequestDeliveryCommand struct {
	flowID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewRequestDeliveryCommand creates a command for the given flow.
func NewRequestDeliveryCommand(flowID kernel.UUID) (RequestDeliveryCommand, error) {
	if err := flowID.Validate(); err != nil {
		return RequestDeliveryCommand{}, err
	}
	return RequestDeliveryCommand{
		flowID: flowID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RequestDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryCommandIsNotConstructed)
}

func (c RequestDeliveryCommand) FlowID() kernel.UUID {
	return c.flowID
}
