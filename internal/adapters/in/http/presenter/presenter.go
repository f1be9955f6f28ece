// Package presenter maps read models to the HTTP contract. The REST server and
// the websocket stream render flows through the same functions.
package presenter

import (
	"rushdrop/internal/core/application/usecases/queries"
	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/generated/servers"
)

func Flow(view queries.FlowView) servers.Flow {
	response := servers.Flow{
		Id:              view.FlowID.Wire(),
		Step:            servers.FlowStep(view.Step),
		PickupAddress:   view.PickupAddress,
		DeliveryAddress: view.DeliveryAddress,
		Assessment: servers.AssessmentPanel{
			Open:       view.Assessment.Open,
			InProgress: view.Assessment.InProgress,
		},
		Version:   int64(view.Version),
		UpdatedAt: view.UpdatedAt.UTC(),
	}

	if view.Driver != nil {
		response.Driver = &servers.Driver{
			Name:    view.Driver.Name,
			Vehicle: view.Driver.Vehicle,
			Plate:   view.Driver.Plate,
			Rating:  view.Driver.Rating,
			Trips:   view.Driver.Trips,
		}
	}
	if view.Quote != nil {
		response.Quote = &servers.Quote{
			EstimatedTime: view.Quote.EstimatedTime,
			Price:         float64(view.Quote.PriceCents) / 100,
			Currency:      view.Quote.Currency,
		}
	}
	if view.PaymentMethod != nil {
		method := servers.PaymentMethod(*view.PaymentMethod)
		response.PaymentMethod = &method
	}
	if view.Tracking != nil {
		checkpoints := make([]servers.Checkpoint, len(view.Tracking.Checkpoints))
		for i, cp := range view.Tracking.Checkpoints {
			checkpoints[i] = servers.Checkpoint{Name: cp.Name, Completed: cp.Completed}
		}
		response.Tracking = &servers.Tracking{
			Index:       view.Tracking.Index,
			Progress:    view.Tracking.Progress,
			Checkpoints: checkpoints,
		}
	}
	if r := view.Assessment.Result; r != nil {
		response.Assessment.Result = &servers.AssessmentResult{
			ReliabilityScore: r.ReliabilityScore,
			ScorePercent:     r.ScorePercent,
			RiskFactors:      r.RiskFactors,
			Recommendation:   r.Recommendation,
		}
	}
	return response
}

// Snapshot renders a snapshot directly, for callers that hold no view.
func Snapshot(s delivery.Snapshot) servers.Flow {
	return Flow(queries.NewFlowView(s))
}

func AssessmentResult(r assessment.Result) servers.AssessmentResult {
	return servers.AssessmentResult{
		ReliabilityScore: r.ReliabilityScore(),
		ScorePercent:     r.ScorePercent(),
		RiskFactors:      r.RiskFactors(),
		Recommendation:   r.Recommendation(),
	}
}

func Notification(n delivery.Notification) servers.Notification {
	return servers.Notification{
		Title:       n.Title,
		Description: n.Description,
		Destructive: n.Destructive,
	}
}
