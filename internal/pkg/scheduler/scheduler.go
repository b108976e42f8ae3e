// Package scheduler provides cancellable delayed callbacks for battle pacing.
//
// The battle state machine owns no timers of its own; every delayed phase
// transition goes through a Scheduler so that resets can cancel everything
// still pending and tests can fire callbacks synchronously.
package scheduler

import (
	"sync"
	"time"
)

//go:generate mockgen -destination=mock/mock.go -package=schedulermock github.com/coachfight/arena-api/internal/pkg/scheduler Scheduler

// Cancel stops a scheduled callback. Calling it after the callback has
// fired is a no-op.
type Cancel func()

// Scheduler schedules a callback to run after a delay
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Cancel
}

// Real implements Scheduler on top of time.AfterFunc
type Real struct{}

// New returns a new real scheduler
func New() Scheduler {
	return &Real{}
}

// Schedule runs fn after delay unless cancelled first
func (s *Real) Schedule(delay time.Duration, fn func()) Cancel {
	timer := time.AfterFunc(delay, fn)
	return func() { timer.Stop() }
}

// Manual implements Scheduler for tests. Callbacks are queued and only run
// when Fire or FireAll is called.
type Manual struct {
	mu      sync.Mutex
	pending []*manualEntry
}

type manualEntry struct {
	fn        func()
	cancelled bool
}

// NewManual returns a new manual scheduler
func NewManual() *Manual {
	return &Manual{}
}

// Schedule queues fn; the delay is recorded nowhere because manual firing
// is explicit
func (s *Manual) Schedule(_ time.Duration, fn func()) Cancel {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &manualEntry{fn: fn}
	s.pending = append(s.pending, entry)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		entry.cancelled = true
	}
}

// Fire runs the oldest pending callback that has not been cancelled.
// Returns false if nothing was run.
func (s *Manual) Fire() bool {
	s.mu.Lock()
	var fn func()
	for len(s.pending) > 0 {
		entry := s.pending[0]
		s.pending = s.pending[1:]
		if !entry.cancelled {
			fn = entry.fn
			break
		}
	}
	s.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// FireAll runs pending callbacks until none remain, including any that
// were scheduled while firing
func (s *Manual) FireAll() int {
	fired := 0
	for s.Fire() {
		fired++
	}
	return fired
}

// PendingCount reports how many callbacks are queued and not cancelled
func (s *Manual) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, entry := range s.pending {
		if !entry.cancelled {
			count++
		}
	}
	return count
}
