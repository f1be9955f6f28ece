package assessor

import (
	"context"
	"time"

	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/pkg/errs"
)

const (
	staticScore       = 0.96
	staticRiskFactors = "One minor late delivery due to traffic 3 months ago. No other significant risk factors identified."
	staticRecommend   = "This driver has a strong track record and is highly recommended. " +
		"Consistently high ratings and minimal issues suggest they are very reliable for deliveries."
)

// StaticAssessor returns the same result for every request.
type StaticAssessor struct {
	latency time.Duration
}

// NewStaticAssessor simulates a remote call taking latency; zero answers at once.
func NewStaticAssessor(latency time.Duration) *StaticAssessor {
	return &StaticAssessor{latency: latency}
}

func (a *StaticAssessor) Assess(ctx context.Context, req assessment.Request) (assessment.Result, error) {
	if err := checkRequest(ctx, req); err != nil {
		return assessment.Result{}, err
	}

	if a.latency > 0 {
		timer := time.NewTimer(a.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return assessment.Result{}, errs.NewServiceUnavailableErrorWithCause(serviceName, ctx.Err())
		case <-timer.C:
		}
	}

	result, err := assessment.NewResult(staticScore, staticRiskFactors, staticRecommend)
	if err != nil {
		return assessment.Result{}, errs.NewServiceUnavailableErrorWithCause(serviceName, err)
	}
	return result, nil
}
