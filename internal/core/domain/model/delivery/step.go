package delivery

import (
	"errors"
	"fmt"

	"rushdrop/internal/pkg/errs"
)

// ErrTransitionNotAllowed is wrapped by every rejection of an event that the
// current step does not accept.
var ErrTransitionNotAllowed = errors.New("transition is not allowed")

// Step is the lifecycle position of a flow.
//
// State transitions:
//
//	Request ──> Matching ──> Matched ──> Tracking ──> Delivered
//	   ^                                                  │
//	   └──────────────────── Reset ───────────────────────┘
//
// Reset is accepted from every step.
type Step int

const (
	// Unknown catches uninitialized Step values.
	Unknown Step = iota

	// Request is the initial step: the user is entering addresses.
	Request

	// Matching means a driver is being searched for.
	Matching

	// Matched means a driver was found and payment is awaited.
	Matched

	// Tracking means the delivery is under way.
	Tracking

	// Delivered is the terminal step, left only through Reset.
	Delivered
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		Unknown:   "unknown",
		Request:   "request",
		Matching:  "matching",
		Matched:   "matched",
		Tracking:  "tracking",
		Delivered: "delivered",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Step) Validate() error {
	if s <= Unknown || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("step is invalid", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// String returns the lowercase wire name of the step, "unknown" for invalid values.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no timer or user action other than Reset can move the flow on.
func (s Step) IsTerminal() bool {
	return s == Delivered
}

// HasDriver reports whether a driver is assigned at this step.
func (s Step) HasDriver() bool {
	return s == Matched || s == Tracking || s == Delivered
}

// StartMatching transitions Request -> Matching.
func (s Step) StartMatching() (Step, error) {
	if s != Request {
		return Unknown, notAllowed(s, "start matching")
	}
	return Matching, nil
}

// CompleteMatching transitions Matching -> Matched.
func (s Step) CompleteMatching() (Step, error) {
	if s != Matching {
		return Unknown, notAllowed(s, "complete matching")
	}
	return Matched, nil
}

// StartTracking transitions Matched -> Tracking.
func (s Step) StartTracking() (Step, error) {
	if s != Matched {
		return Unknown, notAllowed(s, "start tracking")
	}
	return Tracking, nil
}

// CompleteDelivery transitions Tracking -> Delivered.
func (s Step) CompleteDelivery() (Step, error) {
	if s != Tracking {
		return Unknown, notAllowed(s, "complete delivery")
	}
	return Delivered, nil
}

func notAllowed(s Step, action string) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrTransitionNotAllowed, action, s)
}
