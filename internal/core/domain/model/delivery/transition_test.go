package delivery_test

import (
	"errors"
	"testing"

	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(t *testing.T, s delivery.State, events ...delivery.Event) delivery.State {
	t.Helper()
	for _, e := range events {
		var err error
		s, _, err = delivery.Transition(s, e)
		require.NoError(t, err, "event %s", e.Name())
	}
	return s
}

func matchedState(t *testing.T) delivery.State {
	return apply(t, delivery.InitialState(),
		delivery.AddressesChanged{Pickup: "123 Main St", Delivery: "456 Oak Ave"},
		delivery.DeliveryRequested{},
		delivery.DriverMatched{},
	)
}

func trackingState(t *testing.T) delivery.State {
	return apply(t, matchedState(t), delivery.PaymentConfirmed{Method: delivery.Card})
}

func validResult(t *testing.T) assessment.Result {
	r, err := assessment.NewResult(0.96, "none", "use this driver")
	require.NoError(t, err)
	return r
}

func TestTransition_Initial(t *testing.T) {
	s := delivery.InitialState()

	assert.Equal(t, delivery.Request, s.Step())
	assert.Empty(t, s.PickupAddress())
	assert.Empty(t, s.DeliveryAddress())
	assert.False(t, s.AssessmentPanelOpen())
	assert.False(t, s.AssessmentInProgress())
	_, ok := s.Assessment()
	assert.False(t, ok)
	_, ok = s.Driver()
	assert.False(t, ok)
}

func TestTransition_ZeroState(t *testing.T) {
	var s delivery.State

	_, _, err := delivery.Transition(s, delivery.ResetRequested{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTransition_RequestDelivery(t *testing.T) {
	t.Run("should start matching and arm the matching timer", func(t *testing.T) {
		// Given
		s := apply(t, delivery.InitialState(),
			delivery.AddressesChanged{Pickup: "  123 Main St ", Delivery: "456 Oak Ave"})

		// When
		next, effects, err := delivery.Transition(s, delivery.DeliveryRequested{})

		// Then
		require.NoError(t, err)
		assert.Equal(t, delivery.Matching, next.Step())
		assert.Equal(t, "123 Main St", next.PickupAddress())
		assert.Equal(t, []delivery.Effect{delivery.ArmTimer{Timer: delivery.MatchingTimer}}, effects)
	})

	t.Run("should reject missing addresses with a notification", func(t *testing.T) {
		cases := map[string]delivery.AddressesChanged{
			"both empty":      {},
			"pickup empty":    {Delivery: "456 Oak Ave"},
			"delivery empty":  {Pickup: "123 Main St"},
			"whitespace only": {Pickup: "   ", Delivery: "\t"},
			"delivery spaces": {Pickup: "123 Main St", Delivery: "  "},
		}

		for name, addresses := range cases {
			t.Run(name, func(t *testing.T) {
				s := apply(t, delivery.InitialState(), addresses)

				next, effects, err := delivery.Transition(s, delivery.DeliveryRequested{})

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
				assert.True(t, errs.IsValidation(err))
				assert.Equal(t, s, next)
				assert.Equal(t, []delivery.Effect{
					delivery.Notify{Notification: delivery.MissingInformation()},
				}, effects)
			})
		}
	})

	t.Run("should report both missing fields", func(t *testing.T) {
		_, _, err := delivery.Transition(delivery.InitialState(), delivery.DeliveryRequested{})

		var required *errs.ValueIsRequiredError
		require.ErrorAs(t, err, &required)
		assert.Contains(t, err.Error(), "pickupAddress")
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("should reject over-long addresses", func(t *testing.T) {
		long := make([]byte, 300)
		for i := range long {
			long[i] = 'a'
		}
		s := apply(t, delivery.InitialState(),
			delivery.AddressesChanged{Pickup: string(long), Delivery: "456 Oak Ave"})

		_, effects, err := delivery.Transition(s, delivery.DeliveryRequested{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, []delivery.Effect{
			delivery.Notify{Notification: delivery.InvalidAddress()},
		}, effects)
	})

	t.Run("should reject requests outside the request step", func(t *testing.T) {
		s := matchedState(t)

		next, effects, err := delivery.Transition(s, delivery.DeliveryRequested{})

		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrTransitionNotAllowed)
		assert.Equal(t, s, next)
		assert.Empty(t, effects)
	})

	t.Run("should not accept address changes after leaving request", func(t *testing.T) {
		s := matchedState(t)

		_, _, err := delivery.Transition(s, delivery.AddressesChanged{Pickup: "x", Delivery: "y"})

		assert.ErrorIs(t, err, delivery.ErrTransitionNotAllowed)
	})
}

func TestTransition_Matching(t *testing.T) {
	t.Run("should assign the driver", func(t *testing.T) {
		s := matchedState(t)

		assert.Equal(t, delivery.Matched, s.Step())
		driver, ok := s.Driver()
		require.True(t, ok)
		assert.Equal(t, "John D.", driver.Name)
		quote, ok := s.Quote()
		require.True(t, ok)
		assert.Equal(t, 1250, quote.PriceCents)
	})

	t.Run("should reject a matching firing outside matching", func(t *testing.T) {
		_, _, err := delivery.Transition(delivery.InitialState(), delivery.DriverMatched{})

		assert.ErrorIs(t, err, delivery.ErrTransitionNotAllowed)
	})
}

func TestTransition_ConfirmPayment(t *testing.T) {
	t.Run("should start tracking at the initial index", func(t *testing.T) {
		next, effects, err := delivery.Transition(matchedState(t), delivery.PaymentConfirmed{Method: delivery.ApplePay})

		require.NoError(t, err)
		assert.Equal(t, delivery.Tracking, next.Step())
		assert.Equal(t, delivery.InitialTrackingIndex, next.TrackingIndex())
		assert.Equal(t, delivery.ApplePay, next.PaymentMethod())
		assert.Equal(t, 25, next.Progress())
		assert.Equal(t, []delivery.Effect{delivery.ArmTimer{Timer: delivery.TrackingTimer}}, effects)
	})

	t.Run("should reject an unknown payment method", func(t *testing.T) {
		s := matchedState(t)

		next, _, err := delivery.Transition(s, delivery.PaymentConfirmed{})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, s, next)
	})

	t.Run("should reject payment from every other step", func(t *testing.T) {
		states := []delivery.State{
			delivery.InitialState(),
			apply(t, delivery.InitialState(),
				delivery.AddressesChanged{Pickup: "a", Delivery: "b"}, delivery.DeliveryRequested{}),
			trackingState(t),
		}

		for _, s := range states {
			next, effects, err := delivery.Transition(s, delivery.PaymentConfirmed{Method: delivery.Card})

			assert.ErrorIs(t, err, delivery.ErrTransitionNotAllowed, "step %s", s.Step())
			assert.Equal(t, s, next)
			assert.Empty(t, effects)
		}
	})
}

func TestTransition_Tracking(t *testing.T) {
	t.Run("should advance one checkpoint per tick", func(t *testing.T) {
		s := trackingState(t)

		for want := 2; want < delivery.FinalCheckpointIndex; want++ {
			var effects []delivery.Effect
			var err error
			s, effects, err = delivery.Transition(s, delivery.TrackingTicked{})

			require.NoError(t, err)
			assert.Equal(t, want, s.TrackingIndex())
			assert.Empty(t, effects)
		}
	})

	t.Run("should swap to the delivery timer at the final checkpoint", func(t *testing.T) {
		s := apply(t, trackingState(t), delivery.TrackingTicked{}, delivery.TrackingTicked{})

		next, effects, err := delivery.Transition(s, delivery.TrackingTicked{})

		require.NoError(t, err)
		assert.Equal(t, delivery.FinalCheckpointIndex, next.TrackingIndex())
		assert.Equal(t, delivery.Tracking, next.Step())
		assert.Equal(t, []delivery.Effect{
			delivery.CancelTimer{Timer: delivery.TrackingTimer},
			delivery.ArmTimer{Timer: delivery.DeliveryTimer},
		}, effects)
	})

	t.Run("should never advance past the final checkpoint", func(t *testing.T) {
		s := apply(t, trackingState(t),
			delivery.TrackingTicked{}, delivery.TrackingTicked{}, delivery.TrackingTicked{})

		next, _, err := delivery.Transition(s, delivery.TrackingTicked{})

		assert.ErrorIs(t, err, delivery.ErrTransitionNotAllowed)
		assert.Equal(t, delivery.FinalCheckpointIndex, next.TrackingIndex())
	})

	t.Run("should deliver once the final checkpoint is reached", func(t *testing.T) {
		s := apply(t, trackingState(t),
			delivery.TrackingTicked{}, delivery.TrackingTicked{}, delivery.TrackingTicked{})

		next, _, err := delivery.Transition(s, delivery.DeliveryCompleted{})

		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, next.Step())
		assert.Equal(t, 100, next.Progress())
		for _, c := range next.Checkpoints() {
			assert.True(t, c.Completed)
		}

		_, _, err = delivery.Transition(next, delivery.DeliveryCompleted{})
		assert.ErrorIs(t, err, delivery.ErrTransitionNotAllowed)
	})

	t.Run("should not deliver before the final checkpoint", func(t *testing.T) {
		_, _, err := delivery.Transition(trackingState(t), delivery.DeliveryCompleted{})

		assert.ErrorIs(t, err, delivery.ErrTransitionNotAllowed)
	})

	t.Run("should ignore ticks outside tracking", func(t *testing.T) {
		_, _, err := delivery.Transition(matchedState(t), delivery.TrackingTicked{})

		assert.ErrorIs(t, err, delivery.ErrTransitionNotAllowed)
	})
}

func TestTransition_Assessment(t *testing.T) {
	t.Run("should open the panel and run the demo record", func(t *testing.T) {
		next, effects, err := delivery.Transition(matchedState(t), delivery.AssessmentRequested{})

		require.NoError(t, err)
		assert.Equal(t, delivery.Matched, next.Step())
		assert.True(t, next.AssessmentPanelOpen())
		assert.True(t, next.AssessmentInProgress())
		require.Len(t, effects, 1)
		run, ok := effects[0].(delivery.RunAssessment)
		require.True(t, ok)
		assert.Equal(t, next.AssessmentSession(), run.Session)
		assert.Equal(t, assessment.DemoDriverRecord().DriverHistory(), run.Request.DriverHistory())
	})

	t.Run("should reject assessment before matching", func(t *testing.T) {
		_, _, err := delivery.Transition(delivery.InitialState(), delivery.AssessmentRequested{})

		assert.ErrorIs(t, err, delivery.ErrTransitionNotAllowed)
	})

	t.Run("should store a result without changing the step", func(t *testing.T) {
		s := apply(t, matchedState(t), delivery.AssessmentRequested{})
		result := validResult(t)

		next, effects, err := delivery.Transition(s,
			delivery.AssessmentSucceeded{Session: s.AssessmentSession(), Result: result})

		require.NoError(t, err)
		assert.Empty(t, effects)
		assert.False(t, next.AssessmentInProgress())
		assert.True(t, next.AssessmentPanelOpen())
		assert.Equal(t, delivery.Matched, next.Step())
		got, ok := next.Assessment()
		require.True(t, ok)
		assert.InDelta(t, 0.96, got.ReliabilityScore(), 1e-9)
	})

	t.Run("should close the panel and notify on failure", func(t *testing.T) {
		s := apply(t, matchedState(t), delivery.AssessmentRequested{})

		next, effects, err := delivery.Transition(s,
			delivery.AssessmentFailed{Session: s.AssessmentSession(), Err: errors.New("boom")})

		require.NoError(t, err)
		assert.False(t, next.AssessmentInProgress())
		assert.False(t, next.AssessmentPanelOpen())
		assert.Equal(t, delivery.Matched, next.Step())
		assert.Equal(t, []delivery.Effect{
			delivery.Notify{Notification: delivery.AssessmentFailedNotification()},
		}, effects)
	})

	t.Run("should supersede the running session on restart", func(t *testing.T) {
		s := apply(t, matchedState(t), delivery.AssessmentRequested{})
		first := s.AssessmentSession()

		next, effects, err := delivery.Transition(s, delivery.AssessmentRequested{})

		require.NoError(t, err)
		assert.Equal(t, first+1, next.AssessmentSession())
		require.Len(t, effects, 2)
		assert.Equal(t, delivery.CancelAssessment{Session: first}, effects[0])

		_, _, err = delivery.Transition(next, delivery.AssessmentSucceeded{Session: first, Result: validResult(t)})
		assert.ErrorIs(t, err, delivery.ErrStaleAssessment)
	})

	t.Run("should allow a new assessment while the panel stays open after payment", func(t *testing.T) {
		s := apply(t, matchedState(t),
			delivery.AssessmentRequested{},
			delivery.PaymentConfirmed{Method: delivery.Card},
		)

		next, _, err := delivery.Transition(s, delivery.AssessmentRequested{})

		require.NoError(t, err)
		assert.Equal(t, delivery.Tracking, next.Step())
	})

	t.Run("should discard a late result after closing the panel", func(t *testing.T) {
		s := apply(t, matchedState(t), delivery.AssessmentRequested{})
		session := s.AssessmentSession()

		closed, effects, err := delivery.Transition(s, delivery.AssessmentPanelClosed{})
		require.NoError(t, err)
		assert.Equal(t, []delivery.Effect{delivery.CancelAssessment{Session: session}}, effects)

		next, _, err := delivery.Transition(closed, delivery.AssessmentSucceeded{Session: session, Result: validResult(t)})

		assert.ErrorIs(t, err, delivery.ErrStaleAssessment)
		_, ok := next.Assessment()
		assert.False(t, ok)
	})

	t.Run("should treat closing a closed panel as a no-op", func(t *testing.T) {
		s := matchedState(t)

		next, effects, err := delivery.Transition(s, delivery.AssessmentPanelClosed{})

		require.NoError(t, err)
		assert.Empty(t, effects)
		assert.Equal(t, s, next)
	})

	t.Run("should reject an unconstructed result", func(t *testing.T) {
		s := apply(t, matchedState(t), delivery.AssessmentRequested{})

		_, _, err := delivery.Transition(s,
			delivery.AssessmentSucceeded{Session: s.AssessmentSession(), Result: assessment.Result{}})

		assert.ErrorIs(t, err, assessment.ErrResultIsNotConstructed)
	})
}

func TestTransition_Reset(t *testing.T) {
	t.Run("should return to the initial values from every step", func(t *testing.T) {
		delivered := apply(t, trackingState(t),
			delivery.TrackingTicked{}, delivery.TrackingTicked{}, delivery.TrackingTicked{},
			delivery.DeliveryCompleted{})

		for _, s := range []delivery.State{delivery.InitialState(), matchedState(t), trackingState(t), delivered} {
			next, _, err := delivery.Transition(s, delivery.ResetRequested{})

			require.NoError(t, err)
			assert.Equal(t, delivery.Request, next.Step())
			assert.Empty(t, next.PickupAddress())
			assert.Empty(t, next.DeliveryAddress())
			assert.Equal(t, delivery.InitialTrackingIndex, next.TrackingIndex())
			assert.Equal(t, delivery.UnknownPaymentMethod, next.PaymentMethod())
		}
	})

	t.Run("should cancel every timer and the running assessment", func(t *testing.T) {
		s := apply(t, matchedState(t), delivery.AssessmentRequested{})

		next, effects, err := delivery.Transition(s, delivery.ResetRequested{})

		require.NoError(t, err)
		assert.Equal(t, []delivery.Effect{
			delivery.CancelTimer{Timer: delivery.MatchingTimer},
			delivery.CancelTimer{Timer: delivery.TrackingTimer},
			delivery.CancelTimer{Timer: delivery.DeliveryTimer},
			delivery.CancelAssessment{Session: s.AssessmentSession()},
		}, effects)
		assert.False(t, next.AssessmentPanelOpen())
		_, ok := next.Assessment()
		assert.False(t, ok)

		_, _, err = delivery.Transition(next,
			delivery.AssessmentSucceeded{Session: s.AssessmentSession(), Result: validResult(t)})
		assert.ErrorIs(t, err, delivery.ErrStaleAssessment)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		once := apply(t, trackingState(t), delivery.ResetRequested{})
		twice := apply(t, once, delivery.ResetRequested{})

		assert.Equal(t, once, twice)
	})

	t.Run("should start the next delivery at the initial tracking index", func(t *testing.T) {
		s := apply(t, trackingState(t),
			delivery.TrackingTicked{}, delivery.TrackingTicked{}, delivery.TrackingTicked{},
			delivery.DeliveryCompleted{}, delivery.ResetRequested{},
			delivery.AddressesChanged{Pickup: "a", Delivery: "b"},
			delivery.DeliveryRequested{}, delivery.DriverMatched{},
			delivery.PaymentConfirmed{Method: delivery.GooglePay})

		assert.Equal(t, delivery.InitialTrackingIndex, s.TrackingIndex())
	})
}
