// Package clock provides time utilities for the engine
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/coachfight/arena-api/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed implements Clock with a settable time for tests
type Fixed struct {
	now time.Time
}

// NewFixed returns a clock pinned at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now returns the pinned time
func (c *Fixed) Now() time.Time {
	return c.now
}

// Advance moves the pinned time forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
