package delivery

import (
	"rushdrop/internal/core/domain/model/assessment"
)

// Event is anything that can happen to a flow.
type Event interface {
	// Name identifies the event in logs.
	Name() string
}

// AddressesChanged carries raw address input.
type AddressesChanged struct {
	Pickup   string
	Delivery string
}

// DeliveryRequested is the user asking to find a driver.
type DeliveryRequested struct{}

// DriverMatched is the matching timer firing.
type DriverMatched struct{}

// PaymentConfirmed is the user paying for the matched delivery.
type PaymentConfirmed struct {
	Method PaymentMethod
}

// TrackingTicked is one firing of the periodic tracking timer.
type TrackingTicked struct{}

// DeliveryCompleted is the delivery timer firing.
type DeliveryCompleted struct{}

// AssessmentRequested is the user opening the panel and asking for an assessment.
type AssessmentRequested struct{}

// AssessmentSucceeded is a completed assessment of the given panel session.
type AssessmentSucceeded struct {
	Session uint64
	Result  assessment.Result
}

// AssessmentFailed is a failed assessment of the given panel session.
type AssessmentFailed struct {
	Session uint64
	Err     error
}

// AssessmentPanelClosed is the user dismissing the assessment panel.
type AssessmentPanelClosed struct{}

// ResetRequested is the user starting over.
type ResetRequested struct{}

func (AssessmentFailed) Name() string      { return "assessment_failed" }
func (AssessmentPanelClosed) Name() string { return "assessment_panel_closed" }
func (AssessmentRequested) Name() string   { return "assessment_requested" }
func (AssessmentSucceeded) Name() string   { return "assessment_succeeded" }
func (AddressesChanged) Name() string      { return "addresses_changed" }
func (DeliveryCompleted) Name() string     { return "delivery_completed" }
func (DeliveryRequested) Name() string     { return "delivery_requested" }
func (DriverMatched) Name() string         { return "driver_matched" }
func (PaymentConfirmed) Name() string      { return "payment_confirmed" }
func (ResetRequested) Name() string        { return "reset_requested" }
func (TrackingTicked) Name() string        { return "tracking_ticked" }
