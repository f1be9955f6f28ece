package commands

import (
	"errors"

	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/pkg/guard"
)

var ErrAssessDriverCommandIsNotConstructed = errors.New(
	"AssessDriverCommand must be created via NewAssessDriverCommand constructor",
)

// AssessDriverCommand runs one assessment outside of any flow.
type AssessDriverCommand struct {
	request assessment.Request
	guard   guard.ConstructorGuard
}

// NewAssessDriverCommand reports every missing field at once.
func NewAssessDriverCommand(driverHistory, studentRatings string) (AssessDriverCommand, error) {
	req, err := assessment.NewRequest(driverHistory, studentRatings)
	if err != nil {
		return AssessDriverCommand{}, err
	}
	return AssessDriverCommand{
		request: req,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssessDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssessDriverCommandIsNotConstructed)
}

func (c AssessDriverCommand) Request() assessment.Request {
	return c.request
}
