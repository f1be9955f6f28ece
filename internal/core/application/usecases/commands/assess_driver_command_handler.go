package commands

import (
	"context"
	"errors"
	"time"

	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/core/ports"
	"rushdrop/internal/pkg/errs"
)

// AssessDriverCommandHandler calls the assessment service synchronously under
// a timeout. It backs the standalone assessment endpoint and shares no state
// with any flow.
//
// Example:
//
//	handler := NewAssessDriverCommandHandler(assessor, 10*time.Second)
//	cmd, err := NewAssessDriverCommand("5 years, no incidents", "4.8 average")
//	if err != nil {
//	    return err // both fields are reported when both are blank
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrServiceIsUnavailable) {
//	    // retry later
//	}
//	fmt.Println(result.ScorePercent())
type AssessDriverCommandHandler struct {
	assessor ports.AssessmentService
	timeout  time.Duration
}

// NewAssessDriverCommandHandler creates a handler that gives each call to
// assessor at most timeout to answer.
func NewAssessDriverCommandHandler(assessor ports.AssessmentService, timeout time.Duration) AssessDriverCommandHandler {
	return AssessDriverCommandHandler{
		assessor: assessor,
		timeout:  timeout,
	}
}

// Handle returns a ServiceUnavailableError when the service fails, times out
// or answers with an invalid result.
func (h *AssessDriverCommandHandler) Handle(ctx context.Context, cmd AssessDriverCommand) (assessment.Result, error) {
	if err := cmd.Validate(); err != nil {
		return assessment.Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	result, err := h.assessor.Assess(ctx, cmd.Request())
	if err != nil {
		if errs.IsValidation(err) || errors.Is(err, errs.ErrServiceIsUnavailable) {
			return assessment.Result{}, err
		}
		return assessment.Result{}, errs.NewServiceUnavailableErrorWithCause("assessment", err)
	}

	if err = result.Validate(); err != nil {
		return assessment.Result{}, errs.NewServiceUnavailableErrorWithCause("assessment", err)
	}
	return result, nil
}
