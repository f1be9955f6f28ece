package presenter_test

import (
	"testing"
	"time"

	"rushdrop/internal/adapters/in/http/presenter"
	"rushdrop/internal/core/application/usecases/queries"
	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlow_RequestStep(t *testing.T) {
	// Given
	id := kernel.NewUUID()
	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	view := queries.FlowView{
		FlowID:        id,
		Step:          "request",
		PickupAddress: "1 Main St",
		Version:       3,
		UpdatedAt:     updated,
	}

	// When
	flow := presenter.Flow(view)

	// Then
	assert.Equal(t, id.Wire(), flow.Id)
	assert.Equal(t, servers.FlowStepRequest, flow.Step)
	assert.Equal(t, "1 Main St", flow.PickupAddress)
	assert.Equal(t, int64(3), flow.Version)
	assert.Equal(t, time.UTC, flow.UpdatedAt.Location())
	assert.True(t, updated.Equal(flow.UpdatedAt))
	assert.Nil(t, flow.Driver)
	assert.Nil(t, flow.Quote)
	assert.Nil(t, flow.PaymentMethod)
	assert.Nil(t, flow.Tracking)
	assert.Nil(t, flow.Assessment.Result)
}

func TestFlow_TrackingStep(t *testing.T) {
	// Given
	driver := delivery.MatchedDriver()
	quote := delivery.StandardQuote()
	method := "apple_pay"
	view := queries.FlowView{
		FlowID:        kernel.NewUUID(),
		Step:          "tracking",
		Driver:        &driver,
		Quote:         &quote,
		PaymentMethod: &method,
		Tracking: &queries.TrackingView{
			Index:       2,
			Progress:    50,
			Checkpoints: delivery.Checkpoints(2),
		},
		Assessment: queries.AssessmentPanelView{
			Open: true,
			Result: &queries.AssessmentResultView{
				ReliabilityScore: 0.96,
				ScorePercent:     96,
				RiskFactors:      "none",
				Recommendation:   "go",
			},
		},
	}

	// When
	flow := presenter.Flow(view)

	// Then
	require.NotNil(t, flow.Driver)
	assert.Equal(t, "John D.", flow.Driver.Name)
	require.NotNil(t, flow.Quote)
	assert.InDelta(t, 12.5, flow.Quote.Price, 1e-9)
	assert.Equal(t, "USD", flow.Quote.Currency)
	require.NotNil(t, flow.PaymentMethod)
	assert.Equal(t, servers.PaymentMethodApplePay, *flow.PaymentMethod)
	require.NotNil(t, flow.Tracking)
	assert.Equal(t, 50, flow.Tracking.Progress)
	require.Len(t, flow.Tracking.Checkpoints, delivery.CheckpointCount)
	assert.True(t, flow.Tracking.Checkpoints[2].Completed)
	assert.False(t, flow.Tracking.Checkpoints[3].Completed)
	require.NotNil(t, flow.Assessment.Result)
	assert.Equal(t, 96, flow.Assessment.Result.ScorePercent)
	assert.True(t, flow.Assessment.Open)
}

func TestAssessmentResult(t *testing.T) {
	result, err := assessment.NewResult(0.74, "late", "review")
	require.NoError(t, err)

	got := presenter.AssessmentResult(result)

	assert.Equal(t, servers.AssessmentResult{
		ReliabilityScore: 0.74,
		ScorePercent:     74,
		RiskFactors:      "late",
		Recommendation:   "review",
	}, got)
}

func TestNotification(t *testing.T) {
	got := presenter.Notification(delivery.MissingInformation())

	assert.Equal(t, "Missing Information", got.Title)
	assert.True(t, got.Destructive)
}
