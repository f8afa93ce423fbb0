// Package alerttest provides a manually driven alert.Clock for tests.
package alerttest

import (
	"slices"
	"sync"
	"time"

	"github.com/hay-kot/devboard/internal/core/alert"
)

var _ alert.Clock = (*Clock)(nil)

// Clock is an alert.Clock whose time only moves when Advance is called.
type Clock struct {
	mu      sync.Mutex
	now     time.Time
	seq     int
	pending []*timer
}

type timer struct {
	clock *Clock
	at    time.Time
	seq   int
	fn    func()
}

// NewClock returns a clock starting at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) AfterFunc(d time.Duration, fn func()) alert.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &timer{clock: c, at: c.now.Add(d), seq: c.seq, fn: fn}
	c.pending = append(c.pending, t)
	return t
}

// Stop removes the timer from the pending set.
func (t *timer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.pending)
	c.pending = slices.DeleteFunc(c.pending, func(o *timer) bool { return o == t })
	return len(c.pending) != n
}

// Advance moves the clock forward by d, firing every timer that becomes due
// in deadline order. Callbacks run on the calling goroutine with the clock
// set to their deadline.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDue(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.pending = slices.DeleteFunc(c.pending, func(o *timer) bool { return o == next })
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of timers that have not fired or been stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Clock) nextDue(target time.Time) *timer {
	var next *timer
	for _, t := range c.pending {
		if t.at.After(target) {
			continue
		}
		if next == nil || t.at.Before(next.at) || (t.at.Equal(next.at) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}
