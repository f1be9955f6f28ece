package queries

import (
	"time"

	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/core/domain/model/kernel"
)

// FlowView is the read model of one flow. Optional parts are nil when the
// flow has not reached the step that produces them.
type FlowView struct {
	FlowID          kernel.UUID
	Step            string
	PickupAddress   string
	DeliveryAddress string
	Driver          *delivery.Driver
	Quote           *delivery.Quote
	PaymentMethod   *string
	Tracking        *TrackingView
	Assessment      AssessmentPanelView
	Version         uint64
	UpdatedAt       time.Time
}

type TrackingView struct {
	Index       int
	Progress    int
	Checkpoints []delivery.Checkpoint
}

type AssessmentPanelView struct {
	Open       bool
	InProgress bool
	Result     *AssessmentResultView
}

type AssessmentResultView struct {
	ReliabilityScore float64
	ScorePercent     int
	RiskFactors      string
	Recommendation   string
}

// NewFlowView flattens a snapshot.
func NewFlowView(s delivery.Snapshot) FlowView {
	state := s.State
	view := FlowView{
		FlowID:          s.FlowID,
		Step:            state.Step().String(),
		PickupAddress:   state.PickupAddress(),
		DeliveryAddress: state.DeliveryAddress(),
		Assessment: AssessmentPanelView{
			Open:       state.AssessmentPanelOpen(),
			InProgress: state.AssessmentInProgress(),
		},
		Version:   s.Version,
		UpdatedAt: s.UpdatedAt,
	}

	if driver, ok := state.Driver(); ok {
		view.Driver = &driver
	}
	if quote, ok := state.Quote(); ok {
		view.Quote = &quote
	}
	if state.Step() == delivery.Tracking || state.Step() == delivery.Delivered {
		method := state.PaymentMethod().String()
		view.PaymentMethod = &method
		view.Tracking = &TrackingView{
			Index:       state.TrackingIndex(),
			Progress:    state.Progress(),
			Checkpoints: state.Checkpoints(),
		}
	}
	if result, ok := state.Assessment(); ok {
		view.Assessment.Result = &AssessmentResultView{
			ReliabilityScore: result.ReliabilityScore(),
			ScorePercent:     result.ScorePercent(),
			RiskFactors:      result.RiskFactors(),
			Recommendation:   result.Recommendation(),
		}
	}
	return view
}
