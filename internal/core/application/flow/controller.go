package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/core/ports"
	"rushdrop/internal/pkg/errs"
)

// ErrFlowIsClosed is returned by every operation on a closed controller.
var ErrFlowIsClosed = errors.New("flow is closed")

const assessmentServiceName = "assessment"

type armedTimer struct {
	handle ports.Timer
	token  uint64
}

type runningAssessment struct {
	session uint64
	cancel  context.CancelFunc
}

// Controller owns the state, timers and in-flight assessment of one flow.
type Controller struct {
	id        kernel.UUID
	timings   Timings
	scheduler ports.Scheduler
	assessor  ports.AssessmentService
	publisher ports.FlowPublisher
	logger    *slog.Logger
	clock     func() time.Time

	// lifetime is cancelled by Close and parents every assessment call.
	lifetime context.Context
	stop     context.CancelFunc

	mu           sync.Mutex
	state        delivery.State
	version      uint64
	updatedAt    time.Time
	lastActivity time.Time
	timers       map[delivery.TimerKind]armedTimer
	timerSeq     uint64
	running      *runningAssessment
	closed       bool
}

func newController(id kernel.UUID, cfg Config) *Controller {
	lifetime, stop := context.WithCancel(context.Background())
	now := cfg.Clock()
	return &Controller{
		id:           id,
		timings:      cfg.Timings,
		scheduler:    cfg.Scheduler,
		assessor:     cfg.Assessor,
		publisher:    cfg.Publisher,
		logger:       cfg.Logger.With("component", "flow_controller", "flow_id", id.String()),
		clock:        cfg.Clock,
		lifetime:     lifetime,
		stop:         stop,
		state:        delivery.InitialState(),
		updatedAt:    now,
		lastActivity: now,
		timers:       make(map[delivery.TimerKind]armedTimer),
	}
}

// ID returns the flow identifier.
func (c *Controller) ID() kernel.UUID {
	return c.id
}

// SetAddresses records raw address input. Accepted only in the request step.
func (c *Controller) SetAddresses(ctx context.Context, pickup, dropoff string) (delivery.Snapshot, error) {
	return c.dispatch(ctx, delivery.AddressesChanged{Pickup: pickup, Delivery: dropoff})
}

// RequestDelivery starts matching. Missing addresses yield a validation error
// and a Missing Information notification without any transition.
func (c *Controller) RequestDelivery(ctx context.Context) (delivery.Snapshot, error) {
	return c.dispatch(ctx, delivery.DeliveryRequested{})
}

// StartReliabilityAssessment opens the assessment panel and assesses the demo
// driver record asynchronously. The returned snapshot shows the assessment in
// progress; its outcome arrives through the publisher.
func (c *Controller) StartReliabilityAssessment(ctx context.Context) (delivery.Snapshot, error) {
	return c.dispatch(ctx, delivery.AssessmentRequested{})
}

// CloseAssessmentPanel closes the panel and cancels an in-flight assessment.
func (c *Controller) CloseAssessmentPanel(ctx context.Context) (delivery.Snapshot, error) {
	return c.dispatch(ctx, delivery.AssessmentPanelClosed{})
}

// ConfirmPayment starts tracking. Accepted only in the matched step.
func (c *Controller) ConfirmPayment(ctx context.Context, method delivery.PaymentMethod) (delivery.Snapshot, error) {
	return c.dispatch(ctx, delivery.PaymentConfirmed{Method: method})
}

// Reset cancels every timer and assessment and returns the flow to its initial values.
func (c *Controller) Reset(ctx context.Context) (delivery.Snapshot, error) {
	return c.dispatch(ctx, delivery.ResetRequested{})
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() (delivery.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return delivery.Snapshot{}, ErrFlowIsClosed
	}
	return c.snapshotLocked(), nil
}

// LastActivity returns when a user operation last reached the flow.
func (c *Controller) LastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActivity
}

// ArmedTimers returns the timers currently armed.
func (c *Controller) ArmedTimers() []delivery.TimerKind {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]delivery.TimerKind, 0, len(c.timers))
	for _, kind := range delivery.AllTimers() {
		if _, ok := c.timers[kind]; ok {
			out = append(out, kind)
		}
	}
	return out
}

// Close stops every timer and cancels the in-flight assessment. Later
// operations return ErrFlowIsClosed. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for kind := range c.timers {
		c.cancelTimerLocked(kind)
	}
	if c.running != nil {
		c.running.cancel()
		c.running = nil
	}
	c.stop()
	c.logger.Info("flow closed")
}

func (c *Controller) dispatch(ctx context.Context, e delivery.Event) (delivery.Snapshot, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return delivery.Snapshot{}, ErrFlowIsClosed
	}
	c.lastActivity = c.clock()
	out := c.applyLocked(e)
	c.mu.Unlock()

	c.publish(ctx, out)
	if out.err != nil {
		c.logger.DebugContext(ctx, "event rejected", "event", e.Name(), "step", out.snapshot.State.Step().String(), "error", out.err)
	}
	return out.snapshot, out.err
}

type outcome struct {
	snapshot      delivery.Snapshot
	changed       bool
	notifications []delivery.Notification
	err           error
}

func (c *Controller) applyLocked(e delivery.Event) outcome {
	next, effects, err := delivery.Transition(c.state, e)
	if err == nil {
		c.state = next
		c.version++
		c.updatedAt = c.clock()
	}

	notifications := c.executeLocked(effects)
	return outcome{
		snapshot:      c.snapshotLocked(),
		changed:       err == nil,
		notifications: notifications,
		err:           err,
	}
}

func (c *Controller) executeLocked(effects []delivery.Effect) []delivery.Notification {
	var notifications []delivery.Notification
	for _, effect := range effects {
		switch eff := effect.(type) {
		case delivery.ArmTimer:
			c.armTimerLocked(eff.Timer)
		case delivery.CancelTimer:
			c.cancelTimerLocked(eff.Timer)
		case delivery.RunAssessment:
			c.runAssessmentLocked(eff)
		case delivery.CancelAssessment:
			if c.running != nil && c.running.session == eff.Session {
				c.running.cancel()
				c.running = nil
			}
		case delivery.Notify:
			notifications = append(notifications, eff.Notification)
		default:
			c.logger.Error("unsupported effect", "effect", fmt.Sprintf("%T", effect))
		}
	}
	return notifications
}

func (c *Controller) armTimerLocked(kind delivery.TimerKind) {
	c.cancelTimerLocked(kind)

	c.timerSeq++
	token := c.timerSeq
	fire := func() { c.onTimer(kind, token) }

	var handle ports.Timer
	switch kind {
	case delivery.MatchingTimer:
		handle = c.scheduler.After(c.timings.MatchingDelay, fire)
	case delivery.TrackingTimer:
		handle = c.scheduler.Every(c.timings.TrackingInterval, fire)
	case delivery.DeliveryTimer:
		handle = c.scheduler.After(c.timings.DeliveryDelay, fire)
	default:
		c.logger.Error("unsupported timer", "timer", kind.String())
		return
	}
	c.timers[kind] = armedTimer{handle: handle, token: token}
}

func (c *Controller) cancelTimerLocked(kind delivery.TimerKind) {
	if t, ok := c.timers[kind]; ok {
		t.handle.Stop()
		delete(c.timers, kind)
	}
}

func (c *Controller) onTimer(kind delivery.TimerKind, token uint64) {
	ctx := c.lifetime

	c.mu.Lock()
	t, ok := c.timers[kind]
	if c.closed || !ok || t.token != token {
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "stale timer firing dropped", "timer", kind.String())
		return
	}
	if !kind.IsPeriodic() {
		delete(c.timers, kind)
	}
	out := c.applyLocked(kind.Event())
	c.mu.Unlock()

	if out.err != nil {
		c.logger.WarnContext(ctx, "timer firing rejected", "timer", kind.String(), "error", out.err)
	}
	c.publish(ctx, out)
}

func (c *Controller) runAssessmentLocked(eff delivery.RunAssessment) {
	if c.running != nil {
		c.running.cancel()
	}
	ctx, cancel := context.WithTimeout(c.lifetime, c.timings.AssessmentTimeout)
	c.running = &runningAssessment{session: eff.Session, cancel: cancel}

	go c.assess(ctx, cancel, eff)
}

func (c *Controller) assess(ctx context.Context, cancel context.CancelFunc, eff delivery.RunAssessment) {
	defer cancel()

	started := c.clock()
	result, err := c.assessor.Assess(ctx, eff.Request)
	if err == nil {
		if verr := result.Validate(); verr != nil {
			err = errs.NewServiceUnavailableErrorWithCause(assessmentServiceName, verr)
		}
	}
	if err != nil && ctx.Err() != nil && !errors.Is(err, errs.ErrServiceIsUnavailable) {
		err = errs.NewServiceUnavailableErrorWithCause(assessmentServiceName, ctx.Err())
	}

	var event delivery.Event = delivery.AssessmentSucceeded{Session: eff.Session, Result: result}
	if err != nil {
		event = delivery.AssessmentFailed{Session: eff.Session, Err: err}
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.running != nil && c.running.session == eff.Session {
		c.running = nil
	}
	out := c.applyLocked(event)
	c.mu.Unlock()

	logCtx := c.lifetime
	switch {
	case errors.Is(out.err, delivery.ErrStaleAssessment):
		c.logger.DebugContext(logCtx, "stale assessment outcome dropped", "session", eff.Session)
		return
	case out.err != nil:
		c.logger.ErrorContext(logCtx, "assessment outcome rejected", "session", eff.Session, "error", out.err)
	case err != nil:
		c.logger.WarnContext(logCtx, "assessment failed", "session", eff.Session, "error", err)
	default:
		c.logger.InfoContext(logCtx, "assessment completed",
			"session", eff.Session,
			"score", result.ReliabilityScore(),
			"duration", c.clock().Sub(started))
	}
	c.publish(logCtx, out)
}

func (c *Controller) snapshotLocked() delivery.Snapshot {
	return delivery.Snapshot{
		FlowID:    c.id,
		State:     c.state,
		Version:   c.version,
		UpdatedAt: c.updatedAt,
	}
}

func (c *Controller) publish(ctx context.Context, out outcome) {
	if out.changed {
		c.publisher.PublishSnapshot(ctx, out.snapshot)
	}
	for _, n := range out.notifications {
		c.publisher.PublishNotification(ctx, c.id, n)
	}
}
