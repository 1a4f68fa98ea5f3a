package playable

import "time"

// Scheduler defers presentation-side work such as pacing between visible steps.
// The engine itself advances synchronously and never depends on a scheduler;
// one is injected only by callers that want animation-style delays.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// Immediate is a Scheduler that runs the work right away
type Immediate struct{}

// Schedule runs fn immediately, ignoring the delay
func (Immediate) Schedule(_ time.Duration, fn func()) {
	fn()
}

// Delayed is a Scheduler that waits out the delay before running the work
type Delayed struct{}

// Schedule sleeps for the delay, then runs fn
func (Delayed) Schedule(delay time.Duration, fn func()) {
	time.Sleep(delay)
	fn()
}
