package commands

import (
	"errors"

	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/pkg/guard"
)

var ErrSetAddressesCommandIsNotConstructed = errors.New(
	"SetAddressesCommand must be created via NewSetAddressesCommand constructor",
)

// SetAddressesCommand carries raw address input. Addresses may be empty here;
// they are checked when the delivery is requested.
type SetAddressesCommand struct {
	flowID          kernel.UUID
	pickupAddress   string
	deliveryAddress string
	guard           guard.ConstructorGuard
}

// NewSetAddressesCommand creates a command for the given flow. Only the flow ID
// is validated.
//
//	cmd, err := NewSetAddressesCommand(flowID, "1 Main St", "  ")
//	// err == nil; the blank delivery address is reported on request
func NewSetAddressesCommand(flowID kernel.UUID, pickupAddress, deliveryAddress string) (SetAddressesCommand, error) {
	if err := flowID.Validate(); err != nil {
		return SetAddressesCommand{}, err
	}
	return SetAddressesCommand{
		flowID:          flowID,
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c SetAddressesCommand) Validate() error {
	return c.guard.Validate(ErrSetAddressesCommandIsNotConstructed)
}

func (c SetAddressesCommand) FlowID() kernel.UUID {
	return c.flowID
}

func (c SetAddressesCommand) PickupAddress() string {
	return c.pickupAddress
}

func (c SetAddressesCommand) DeliveryAddress() string {
	return c.deliveryAddress
}
