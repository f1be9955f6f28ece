package scheduler_test

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"rushdrop/internal/adapters/out/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduler(t *testing.T) *scheduler.CronScheduler {
	t.Helper()
	s := scheduler.NewCronScheduler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Start()
	t.Cleanup(func() { <-s.Stop().Done() })
	return s
}

func TestCronScheduler_After(t *testing.T) {
	t.Run("should fire exactly once", func(t *testing.T) {
		s := newScheduler(t)
		var calls atomic.Int32

		s.After(20*time.Millisecond, func() { calls.Add(1) })

		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
		assert.Never(t, func() bool { return calls.Load() > 1 }, 100*time.Millisecond, 10*time.Millisecond)
		assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("should not fire once stopped", func(t *testing.T) {
		s := newScheduler(t)
		var calls atomic.Int32

		timer := s.After(50*time.Millisecond, func() { calls.Add(1) })
		timer.Stop()
		timer.Stop()

		assert.Never(t, func() bool { return calls.Load() > 0 }, 150*time.Millisecond, 10*time.Millisecond)
		assert.Zero(t, s.Len())
	})

	t.Run("should respect the delay", func(t *testing.T) {
		s := newScheduler(t)
		fired := make(chan time.Time, 1)
		started := time.Now()

		s.After(60*time.Millisecond, func() { fired <- time.Now() })

		select {
		case at := <-fired:
			assert.GreaterOrEqual(t, at.Sub(started), 60*time.Millisecond)
		case <-time.After(time.Second):
			t.Fatal("timer did not fire")
		}
	})
}

func TestCronScheduler_Every(t *testing.T) {
	s := newScheduler(t)
	var calls atomic.Int32

	timer := s.Every(15*time.Millisecond, func() { calls.Add(1) })

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	timer.Stop()
	// a firing claimed before Stop may still be finishing
	time.Sleep(20 * time.Millisecond)
	after := calls.Load()
	assert.Never(t, func() bool { return calls.Load() > after }, 100*time.Millisecond, 10*time.Millisecond)
	assert.Zero(t, s.Len())
}

func TestCronScheduler_RecoversPanics(t *testing.T) {
	s := newScheduler(t)
	var calls atomic.Int32

	s.After(10*time.Millisecond, func() { panic("boom") })
	s.After(30*time.Millisecond, func() { calls.Add(1) })

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}
