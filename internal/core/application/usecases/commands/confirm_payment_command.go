package commands

import (
	"errors"

	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand pays for a matched delivery with the chosen method.
//
//	method, _ := delivery.ParsePaymentMethod("apple_pay")
//	cmd, err := NewConfirmPaymentCommand(flowID, method)
type ConfirmPaymentCommand struct {
	flowID kernel.UUID
	method delivery.PaymentMethod
	guard  guard.ConstructorGuard
}

// NewConfirmPaymentCommand joins the errors of an invalid flow ID and an
// unknown payment method.
func NewConfirmPaymentCommand(flowID kernel.UUID, method delivery.PaymentMethod) (ConfirmPaymentCommand, error) {
	if err := errors.Join(flowID.Validate(), method.Validate()); err != nil {
		return ConfirmPaymentCommand{}, err
	}
	return ConfirmPaymentCommand{
		flowID: flowID,
		method: method,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) FlowID() kernel.UUID {
	return c.flowID
}

func (c ConfirmPaymentCommand) Method() delivery.PaymentMethod {
	return c.method
}
