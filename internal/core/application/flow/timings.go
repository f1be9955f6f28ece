package flow

import (
	"errors"
	"time"

	"rushdrop/internal/pkg/errs"
)

const (
	DefaultMatchingDelay     = 3 * time.Second
	DefaultTrackingInterval  = 4 * time.Second
	DefaultDeliveryDelay     = 4 * time.Second
	DefaultAssessmentTimeout = 30 * time.Second
)

// Timings holds the simulated durations of a flow.
type Timings struct {
	// MatchingDelay is the time from a delivery request to the matched driver.
	MatchingDelay time.Duration
	// TrackingInterval is the time between two tracking checkpoints.
	TrackingInterval time.Duration
	// DeliveryDelay is the time from the final checkpoint to delivery.
	DeliveryDelay time.Duration
	// AssessmentTimeout bounds a single assessment call.
	AssessmentTimeout time.Duration
}

// DefaultTimings returns the durations the service runs with unless configured otherwise.
func DefaultTimings() Timings {
	return Timings{
		MatchingDelay:     DefaultMatchingDelay,
		TrackingInterval:  DefaultTrackingInterval,
		DeliveryDelay:     DefaultDeliveryDelay,
		AssessmentTimeout: DefaultAssessmentTimeout,
	}
}

// Validate requires every duration to be positive.
func (t Timings) Validate() error {
	return errors.Join(
		positive("matchingDelay", t.MatchingDelay),
		positive("trackingInterval", t.TrackingInterval),
		positive("deliveryDelay", t.DeliveryDelay),
		positive("assessmentTimeout", t.AssessmentTimeout),
	)
}

func positive(name string, d time.Duration) error {
	if d <= 0 {
		return errs.NewValueIsOutOfRangeError(name, d, time.Nanosecond, "unbounded")
	}
	return nil
}
