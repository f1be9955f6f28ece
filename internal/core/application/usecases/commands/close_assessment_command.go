package commands

import (
	"errors"

	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/pkg/guard"
)

var ErrCloseAssessmentCommandIsNotConstructed = errors.New(
	"CloseAssessmentCommand must be created via NewCloseAssessmentCommand constructor",
)

// CloseAssessmentCommand dismisses the assessment panel, cancelling an assessment in flight.
type CloseAssessmentCommand struct {
	flowID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewCloseAssessmentCommand(flowID kernel.UUID) (CloseAssessmentCommand, error) {
	if err := flowID.Validate(); err != nil {
		return CloseAssessmentCommand{}, err
	}
	return CloseAssessmentCommand{
		flowID: flowID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CloseAssessmentCommand) Validate() error {
	return c.guard.Validate(ErrCloseAssessmentCommandIsNotConstructed)
}

func (c CloseAssessmentCommand) FlowID() kernel.UUID {
	return c.flowID
}
