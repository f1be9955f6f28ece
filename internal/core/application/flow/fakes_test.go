package flow_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/core/domain/model/delivery"
	"rushdrop/internal/core/domain/model/kernel"
	"rushdrop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// manualScheduler fires callbacks only when Advance moves its clock.
type manualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
	// leaky keeps stopped timers firing, like a firing racing its cancellation.
	leaky bool
}

type manualTimer struct {
	s       *manualScheduler
	due     time.Duration
	every   time.Duration
	fn      func()
	stopped bool
	done    bool
}

func (s *manualScheduler) After(d time.Duration, fn func()) ports.Timer {
	return s.add(d, 0, fn)
}

func (s *manualScheduler) Every(d time.Duration, fn func()) ports.Timer {
	return s.add(d, d, fn)
}

func (s *manualScheduler) add(d, every time.Duration, fn func()) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &manualTimer{s: s, due: s.now + d, every: every, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (t *manualTimer) Stop() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.stopped = true
}

func (t *manualTimer) live(leaky bool) bool {
	return !t.done && (!t.stopped || leaky)
}

// Advance moves the clock by d, running due callbacks in order.
func (s *manualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		var next *manualTimer
		for _, t := range s.timers {
			if t.live(s.leaky) && t.due <= target && (next == nil || t.due < next.due) {
				next = t
			}
		}
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.due
		if next.every > 0 && !next.stopped {
			next.due += next.every
		} else {
			next.done = true
		}
		fn := next.fn
		s.mu.Unlock()

		fn()
	}
}

// Pending counts timers that are neither stopped nor spent.
func (s *manualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.timers {
		if t.live(false) {
			n++
		}
	}
	return n
}

type recordingPublisher struct {
	mu            sync.Mutex
	snapshots     []delivery.Snapshot
	notifications []delivery.Notification
}

func (p *recordingPublisher) PublishSnapshot(_ context.Context, s delivery.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshots = append(p.snapshots, s)
}

func (p *recordingPublisher) PublishNotification(_ context.Context, _ kernel.UUID, n delivery.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifications = append(p.notifications, n)
}

func (p *recordingPublisher) Notifications() []delivery.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]delivery.Notification(nil), p.notifications...)
}

func (p *recordingPublisher) SnapshotCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.snapshots)
}

type MockAssessor struct{ mock.Mock }

func (m *MockAssessor) Assess(ctx context.Context, req assessment.Request) (assessment.Result, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(assessment.Result), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
