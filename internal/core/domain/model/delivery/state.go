package delivery

import (
	"rushdrop/internal/core/domain/model/assessment"
)

// State is an immutable snapshot of one flow. It is changed only through
// Transition, which returns a modified copy.
type State struct {
	step            Step
	pickupAddress   string
	deliveryAddress string
	trackingIndex   int
	paymentMethod   PaymentMethod

	assessment           *assessment.Result
	assessmentInProgress bool
	assessmentPanelOpen  bool
	assessmentSession    uint64
}

// InitialState returns the state of a freshly created flow: step Request,
// empty addresses, no assessment.
func InitialState() State {
	return State{
		step:          Request,
		trackingIndex: InitialTrackingIndex,
	}
}

func (s State) Step() Step {
	return s.step
}

// PickupAddress returns the raw pickup input while in Request and the trimmed
// address afterwards.
func (s State) PickupAddress() string {
	return s.pickupAddress
}

// DeliveryAddress behaves like PickupAddress.
func (s State) DeliveryAddress() string {
	return s.deliveryAddress
}

// TrackingIndex is meaningful only in Tracking and Delivered.
func (s State) TrackingIndex() int {
	return s.trackingIndex
}

// Checkpoints returns the tracking timeline for the current tracking index.
func (s State) Checkpoints() []Checkpoint {
	return Checkpoints(s.trackingIndex)
}

// Progress returns tracking progress in percent.
func (s State) Progress() int {
	if s.step == Delivered {
		return 100
	}
	return Progress(s.trackingIndex)
}

// PaymentMethod is UnknownPaymentMethod until payment is confirmed.
func (s State) PaymentMethod() PaymentMethod {
	return s.paymentMethod
}

// Driver returns the assigned driver once matching has completed.
func (s State) Driver() (Driver, bool) {
	if !s.step.HasDriver() {
		return Driver{}, false
	}
	return MatchedDriver(), true
}

// Quote returns the estimate once matching has completed.
func (s State) Quote() (Quote, bool) {
	if !s.step.HasDriver() {
		return Quote{}, false
	}
	return StandardQuote(), true
}

// Assessment returns the result of the current panel session, if any.
func (s State) Assessment() (assessment.Result, bool) {
	if s.assessment == nil {
		return assessment.Result{}, false
	}
	return *s.assessment, true
}

func (s State) AssessmentInProgress() bool {
	return s.assessmentInProgress
}

func (s State) AssessmentPanelOpen() bool {
	return s.assessmentPanelOpen
}

// AssessmentSession identifies the latest panel session. Outcomes carrying a
// different session are stale.
func (s State) AssessmentSession() uint64 {
	return s.assessmentSession
}
