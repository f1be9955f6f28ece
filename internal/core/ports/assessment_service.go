package ports

import (
	"context"

	"rushdrop/internal/core/domain/model/assessment"
)

// AssessmentService scores how reliable a driver is from free-text history and ratings.
type AssessmentService interface {
	// Assess makes a single attempt, never retried. It returns a
	// ValueIsRequiredError for an incomplete request and a
	// ServiceUnavailableError when the computation cannot complete, including
	// when ctx is cancelled or its deadline passes. Repeated calls with the
	// same request may return different results.
	Assess(ctx context.Context, req assessment.Request) (assessment.Result, error)
}
