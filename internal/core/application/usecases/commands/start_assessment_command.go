package commands

import (
	"errors"

	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/pkg/guard"
)

var ErrStartAssessmentCommandIsNotConstructed = errors.New(
	"StartAssessmentCommand must be created via NewStartAssessmentCommand constructor",
)

// StartAssessmentCommand opens the assessment panel and assesses the demo driver record.
type StartAssessmentCommand struct {
	flowID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewStartAssessmentCommand(flowID kernel.UUID) (StartAssessmentCommand, error) {
	if err := flowID.Validate(); err != nil {
		return StartAssessmentCommand{}, err
	}
	return StartAssessmentCommand{
		flowID: flowID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c StartAssessmentCommand) Validate() error {
	return c.guard.Validate(ErrStartAssessmentCommandIsNotConstructed)
}

func (c StartAssessmentCommand) FlowID() kernel.UUID {
	return c.flowID
}
