package delivery

import (
	"errors"
	"fmt"

	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/pkg/errs"
)

// ErrStaleAssessment is returned for an assessment outcome whose session was
// superseded, closed or reset.
var ErrStaleAssessment = errors.New("assessment outcome is stale")

// Transition applies e to s. On success it returns the next state and the
// effects to carry out. On failure the returned state equals s; the effects
// may still hold a notification for the user.
func Transition(s State, e Event) (State, []Effect, error) {
	if err := s.step.Validate(); err != nil {
		return s, nil, err
	}

	switch ev := e.(type) {
	case AddressesChanged:
		return s.changeAddresses(ev)
	case DeliveryRequested:
		return s.requestDelivery()
	case DriverMatched:
		return s.matchDriver()
	case PaymentConfirmed:
		return s.confirmPayment(ev)
	case TrackingTicked:
		return s.advanceTracking()
	case DeliveryCompleted:
		return s.completeDelivery()
	case AssessmentRequested:
		return s.startAssessment()
	case AssessmentSucceeded:
		return s.completeAssessment(ev)
	case AssessmentFailed:
		return s.failAssessment(ev)
	case AssessmentPanelClosed:
		return s.closeAssessmentPanel()
	case ResetRequested:
		return s.reset()
	default:
		return s, nil, fmt.Errorf("%w: unsupported event %T", ErrTransitionNotAllowed, e)
	}
}

func (s State) changeAddresses(ev AddressesChanged) (State, []Effect, error) {
	if s.step != Request {
		return s, nil, notAllowed(s.step, "change addresses")
	}
	s.pickupAddress = ev.Pickup
	s.deliveryAddress = ev.Delivery
	return s, nil, nil
}

func (s State) requestDelivery() (State, []Effect, error) {
	next, err := s.step.StartMatching()
	if err != nil {
		return s, nil, err
	}

	pickup, pickupErr := kernel.NewAddress("pickupAddress", s.pickupAddress)
	dropoff, dropoffErr := kernel.NewAddress("deliveryAddress", s.deliveryAddress)
	if err := errors.Join(pickupErr, dropoffErr); err != nil {
		notification := InvalidAddress()
		if errors.Is(err, errs.ErrValueIsRequired) {
			notification = MissingInformation()
		}
		return s, []Effect{Notify{Notification: notification}}, err
	}

	s.step = next
	s.pickupAddress = pickup.String()
	s.deliveryAddress = dropoff.String()
	return s, []Effect{ArmTimer{Timer: MatchingTimer}}, nil
}

func (s State) matchDriver() (State, []Effect, error) {
	next, err := s.step.CompleteMatching()
	if err != nil {
		return s, nil, err
	}
	s.step = next
	return s, nil, nil
}

func (s State) confirmPayment(ev PaymentConfirmed) (State, []Effect, error) {
	next, err := s.step.StartTracking()
	if err != nil {
		return s, nil, err
	}
	if err := ev.Method.Validate(); err != nil {
		return s, nil, err
	}

	s.step = next
	s.paymentMethod = ev.Method
	s.trackingIndex = InitialTrackingIndex
	return s, []Effect{ArmTimer{Timer: TrackingTimer}}, nil
}

func (s State) advanceTracking() (State, []Effect, error) {
	if s.step != Tracking {
		return s, nil, notAllowed(s.step, "advance tracking")
	}
	if s.trackingIndex >= FinalCheckpointIndex {
		return s, nil, fmt.Errorf("%w: tracking already reached %q",
			ErrTransitionNotAllowed, checkpointNames[FinalCheckpointIndex])
	}

	s.trackingIndex++
	if s.trackingIndex < FinalCheckpointIndex {
		return s, nil, nil
	}
	return s, []Effect{
		CancelTimer{Timer: TrackingTimer},
		ArmTimer{Timer: DeliveryTimer},
	}, nil
}

func (s State) completeDelivery() (State, []Effect, error) {
	if s.step == Tracking && s.trackingIndex < FinalCheckpointIndex {
		return s, nil, fmt.Errorf("%w: tracking is at checkpoint %d of %d",
			ErrTransitionNotAllowed, s.trackingIndex, FinalCheckpointIndex)
	}
	next, err := s.step.CompleteDelivery()
	if err != nil {
		return s, nil, err
	}
	s.step = next
	return s, nil, nil
}

func (s State) startAssessment() (State, []Effect, error) {
	if s.step != Matched && !s.assessmentPanelOpen {
		return s, nil, notAllowed(s.step, "start assessment")
	}

	var effects []Effect
	if s.assessmentInProgress {
		effects = append(effects, CancelAssessment{Session: s.assessmentSession})
	}

	s.assessmentSession++
	s.assessmentPanelOpen = true
	s.assessmentInProgress = true
	s.assessment = nil

	effects = append(effects, RunAssessment{
		Session: s.assessmentSession,
		Request: assessment.DemoDriverRecord(),
	})
	return s, effects, nil
}

func (s State) completeAssessment(ev AssessmentSucceeded) (State, []Effect, error) {
	if err := s.checkSession(ev.Session); err != nil {
		return s, nil, err
	}
	if err := ev.Result.Validate(); err != nil {
		return s, nil, err
	}

	result := ev.Result
	s.assessment = &result
	s.assessmentInProgress = false
	return s, nil, nil
}

func (s State) failAssessment(ev AssessmentFailed) (State, []Effect, error) {
	if err := s.checkSession(ev.Session); err != nil {
		return s, nil, err
	}

	s.assessmentInProgress = false
	s.assessmentPanelOpen = false
	return s, []Effect{Notify{Notification: AssessmentFailedNotification()}}, nil
}

func (s State) checkSession(session uint64) error {
	if !s.assessmentInProgress || session != s.assessmentSession {
		return fmt.Errorf("%w: session %d, current session %d", ErrStaleAssessment, session, s.assessmentSession)
	}
	return nil
}

func (s State) closeAssessmentPanel() (State, []Effect, error) {
	if !s.assessmentPanelOpen {
		return s, nil, nil
	}

	var effects []Effect
	if s.assessmentInProgress {
		effects = append(effects, CancelAssessment{Session: s.assessmentSession})
	}
	s.assessmentInProgress = false
	s.assessmentPanelOpen = false
	return s, effects, nil
}

func (s State) reset() (State, []Effect, error) {
	effects := make([]Effect, 0, len(AllTimers())+1)
	for _, kind := range AllTimers() {
		effects = append(effects, CancelTimer{Timer: kind})
	}
	if s.assessmentInProgress {
		effects = append(effects, CancelAssessment{Session: s.assessmentSession})
	}

	next := InitialState()
	next.assessmentSession = s.assessmentSession
	return next, effects, nil
}
