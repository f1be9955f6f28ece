// Package delivery models the lifecycle of a single RushDrop delivery flow as a
// pure state machine.
//
// The package includes:
//   - Step: the lifecycle position, Request -> Matching -> Matched -> Tracking -> Delivered
//   - State: an immutable snapshot of everything a flow knows (addresses, tracking
//     index, payment method, assessment panel)
//   - Event: everything that can happen to a flow (user actions, timer firings,
//     assessment completions)
//   - Effect: what the owner of a State must do after a transition (arm or cancel
//     a timer, run or cancel an assessment, show a notification)
//   - Transition: the pure function (State, Event) -> (State, []Effect, error)
//
// Key business rules:
//   - Leaving Request needs both a pickup and a delivery address
//   - Only Reset leads back to an earlier step
//   - The tracking index only grows while tracking and starts at 1 for every new delivery
//   - Assessments never change the step; a late outcome of a superseded or closed
//     assessment session is rejected with ErrStaleAssessment
//
// Nothing in this package performs I/O, reads clocks or starts goroutines, so
// every rule above is testable by feeding events to Transition.
package delivery
