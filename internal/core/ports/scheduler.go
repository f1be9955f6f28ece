package ports

import (
	"time"
)

// Scheduler runs callbacks after a delay. Callbacks run on the scheduler's
// goroutines, never on the caller's.
type Scheduler interface {
	// After runs fn once, d from now.
	After(d time.Duration, fn func()) Timer

	// Every runs fn every d until the returned Timer is stopped.
	Every(d time.Duration, fn func()) Timer
}

// Timer is a cancellable handle to a scheduled callback.
type Timer interface {
	// Stop prevents future runs. It does not wait for a run in progress and is
	// safe to call more than once.
	Stop()
}
