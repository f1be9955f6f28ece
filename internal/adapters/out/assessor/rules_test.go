package assessor_test

import (
	"context"
	"testing"

	"rushdrop/internal/adapters/out/assessor"
	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assess(t *testing.T, history, ratings string) assessment.Result {
	t.Helper()
	req, err := assessment.NewRequest(history, ratings)
	require.NoError(t, err)

	result, err := assessor.NewRulesAssessor(assessor.DefaultWeights()).Assess(t.Context(), req)
	require.NoError(t, err)
	require.NoError(t, result.Validate())
	return result
}

func TestRulesAssessor_Assess(t *testing.T) {
	t.Run("should score the demo record as reliable with reservations", func(t *testing.T) {
		result, err := assessor.NewRulesAssessor(assessor.DefaultWeights()).
			Assess(t.Context(), assessment.DemoDriverRecord())

		require.NoError(t, err)
		assert.InDelta(t, 0.74, result.ReliabilityScore(), 1e-9)
		assert.Contains(t, result.RiskFactors(), "1 reported incident(s).")
		assert.Contains(t, result.RiskFactors(), "2 mention(s) of late delivery.")
		assert.Contains(t, result.Recommendation(), "Recommended")
	})

	t.Run("should highly recommend an experienced clean record", func(t *testing.T) {
		result := assess(t, "Completed 400 trips. No incidents.", "Average rating 5/5.")

		assert.InDelta(t, 0.94, result.ReliabilityScore(), 1e-9)
		assert.Equal(t, "No significant risk factors identified.", result.RiskFactors())
		assert.Contains(t, result.Recommendation(), "Highly recommended")
	})

	t.Run("should flag a poor record", func(t *testing.T) {
		result := assess(t, "12 trips. 3 incidents and 2 complaints.", "2.5/5, always late")

		assert.Less(t, result.ReliabilityScore(), 0.1)
		assert.Contains(t, result.RiskFactors(), "5 reported incident(s).")
		assert.Contains(t, result.RiskFactors(), "Limited history of 12 trips.")
		assert.Contains(t, result.RiskFactors(), "Average rating of 2.5/5 is below 4.5.")
		assert.Contains(t, result.Recommendation(), "Not recommended")
	})

	t.Run("should note missing facts", func(t *testing.T) {
		result := assess(t, "Seems fine", "Nice driver")

		assert.Contains(t, result.RiskFactors(), "Trip history is not stated.")
		assert.Contains(t, result.RiskFactors(), "No average rating stated.")
	})

	t.Run("should keep the score within bounds for extreme input", func(t *testing.T) {
		result := assess(t, "99999 trips, 1000 incidents", "0/5 late late late late late")

		assert.GreaterOrEqual(t, result.ReliabilityScore(), assessment.MinScore)
		assert.LessOrEqual(t, result.ReliabilityScore(), assessment.MaxScore)
	})

	t.Run("should not compute for a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := assessor.NewRulesAssessor(assessor.DefaultWeights()).Assess(ctx, assessment.DemoDriverRecord())

		require.ErrorIs(t, err, errs.ErrServiceIsUnavailable)
		assert.Contains(t, err.Error(), context.Canceled.Error())
	})
}
