// Package assessor provides the reliability assessment services.
//
// StaticAssessor answers every request with the same result after an optional
// latency; RulesAssessor reads trip counts, incidents and ratings out of the
// free text and weighs them into a score. Both honour context cancellation
// and report it as a ServiceUnavailableError.
package assessor

import (
	"context"

	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/pkg/errs"
)

const serviceName = "assessment"

func checkRequest(ctx context.Context, req assessment.Request) error {
	if err := req.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("request", err)
	}
	if err := ctx.Err(); err != nil {
		return errs.NewServiceUnavailableErrorWithCause(serviceName, err)
	}
	return nil
}
