package delivery

import (
	"rushdrop/internal/core/domain/model/assessment"
)

// TimerKind names the timers a flow owns. At most one timer of each kind is
// armed at a time.
type TimerKind int

const (
	// MatchingTimer fires once and emits DriverMatched.
	MatchingTimer TimerKind = iota + 1
	// TrackingTimer fires periodically and emits TrackingTicked.
	TrackingTimer
	// DeliveryTimer fires once and emits DeliveryCompleted.
	DeliveryTimer
)

// AllTimers lists every timer kind.
func AllTimers() []TimerKind {
	return []TimerKind{MatchingTimer, TrackingTimer, DeliveryTimer}
}

// IsPeriodic reports whether the timer keeps firing until cancelled.
func (k TimerKind) IsPeriodic() bool {
	return k == TrackingTimer
}

// Event returns the event the timer emits when it fires.
func (k TimerKind) Event() Event {
	switch k {
	case MatchingTimer:
		return DriverMatched{}
	case TrackingTimer:
		return TrackingTicked{}
	case DeliveryTimer:
		return DeliveryCompleted{}
	default:
		return nil
	}
}

func (k TimerKind) String() string {
	switch k {
	case MatchingTimer:
		return "matching"
	case TrackingTimer:
		return "tracking"
	case DeliveryTimer:
		return "delivery"
	default:
		return "unknown"
	}
}

// Effect is work the owner of a State must carry out after a transition.
type Effect interface {
	isEffect()
}

// ArmTimer replaces any armed timer of the same kind.
type ArmTimer struct {
	Timer TimerKind
}

// CancelTimer releases the timer; later firings of it must be dropped.
type CancelTimer struct {
	Timer TimerKind
}

// RunAssessment starts an asynchronous assessment whose outcome is fed back
// as AssessmentSucceeded or AssessmentFailed carrying Session.
type RunAssessment struct {
	Session uint64
	Request assessment.Request
}

// CancelAssessment aborts the in-flight assessment of Session.
type CancelAssessment struct {
	Session uint64
}

// Notify shows a transient message to the user.
type Notify struct {
	Notification Notification
}

func (ArmTimer) isEffect()         {}
func (CancelTimer) isEffect()      {}
func (RunAssessment) isEffect()    {}
func (CancelAssessment) isEffect() {}
func (Notify) isEffect()           {}
