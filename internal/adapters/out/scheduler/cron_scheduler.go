// Package scheduler implements ports.Scheduler on top of github.com/robfig/cron/v3.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rushdrop/internal/core/ports"
	"rushdrop/internal/pkg/slogcron"

	"github.com/robfig/cron/v3"
)

// delaySchedule fires d after the previous activation. Unlike cron.Every it
// keeps sub-second precision.
type delaySchedule time.Duration

func (d delaySchedule) Next(t time.Time) time.Time {
	return t.Add(time.Duration(d))
}

// CronScheduler runs flow timers as cron entries of a single cron instance.
// A panicking callback is recovered and logged.
type CronScheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func NewCronScheduler(logger *slog.Logger) *CronScheduler {
	logger = logger.With("component", "cron_scheduler")
	cronLogger := slogcron.New(logger)
	return &CronScheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger)),
		),
		logger: logger,
	}
}

// Start runs the scheduler in its own goroutine.
func (s *CronScheduler) Start() {
	s.cron.Start()
	s.logger.InfoContext(context.Background(), "Scheduler started")
}

// Stop stops scheduling and returns a context done once running callbacks return.
func (s *CronScheduler) Stop() context.Context {
	ctx := s.cron.Stop()
	s.logger.InfoContext(context.Background(), "Scheduler stopped")
	return ctx
}

// Len returns the number of scheduled entries.
func (s *CronScheduler) Len() int {
	return len(s.cron.Entries())
}

func (s *CronScheduler) After(d time.Duration, fn func()) ports.Timer {
	return s.schedule(d, true, fn)
}

func (s *CronScheduler) Every(d time.Duration, fn func()) ports.Timer {
	return s.schedule(d, false, fn)
}

func (s *CronScheduler) schedule(d time.Duration, once bool, fn func()) ports.Timer {
	t := &cronTimer{cron: s.cron}
	id := s.cron.Schedule(delaySchedule(d), cron.FuncJob(func() {
		if t.claim(once) {
			fn()
		}
	}))
	t.bind(id)
	return t
}

type cronTimer struct {
	cron *cron.Cron

	mu      sync.Mutex
	id      cron.EntryID
	bound   bool
	stopped bool
}

// bind records the entry id; a timer stopped before it was bound is removed here.
func (t *cronTimer) bind(id cron.EntryID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.id, t.bound = id, true
	if t.stopped {
		t.cron.Remove(id)
	}
}

// claim reports whether a firing may run. One-shot timers stop themselves on
// their first firing.
func (t *cronTimer) claim(once bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return false
	}
	if once {
		t.stopLocked()
	}
	return true
}

func (t *cronTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.stopped {
		t.stopLocked()
	}
}

func (t *cronTimer) stopLocked() {
	t.stopped = true
	if t.bound {
		t.cron.Remove(t.id)
	}
}
