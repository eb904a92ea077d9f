package testutil

import (
	"sync"
	"time"
)

// Epoch is the default start time of a StepClock.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// StepClock is a thread-safe clock that advances by a fixed step per reading.
//
// Conversion history tests use it in place of the wall clock so recorded
// timestamps, and anything rendered from them, are reproducible.
type StepClock struct {
	mu    sync.Mutex
	start time.Time
	step  time.Duration
	ticks int64
}

// NewStepClock creates a clock starting at Epoch that advances one second per reading.
//
// The first call to Now() returns Epoch plus one step.
func NewStepClock() *StepClock {
	return &StepClock{start: Epoch, step: time.Second}
}

// Now advances the clock and returns the new time.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks++
	return c.start.Add(time.Duration(c.ticks) * c.step)
}

// Ticks returns the number of readings taken so far.
func (c *StepClock) Ticks() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Reset rewinds the clock to its start.
//
// After Reset(), the next call to Now() returns the same time as the first call did.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks = 0
}
