package engine

import "time"

// TickScheduler tracks fixed-cadence tick boundaries for the frame loop
// The loop waits on input for Timeout(), then calls Due() to decide whether to tick
//
// Missed boundaries are not replayed: after a stall the next deadline is
// re-anchored to now rather than firing a burst of catch-up ticks
type TickScheduler struct {
	clock    TimeProvider
	interval time.Duration
	deadline time.Time
}

// NewTickScheduler starts the first interval at the current time
func NewTickScheduler(clock TimeProvider, interval time.Duration) *TickScheduler {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &TickScheduler{
		clock:    clock,
		interval: interval,
		deadline: clock.Now().Add(interval),
	}
}

// Timeout returns the time left until the next boundary, never negative
func (s *TickScheduler) Timeout() time.Duration {
	left := s.deadline.Sub(s.clock.Now())
	if left < 0 {
		return 0
	}
	return left
}

// Due reports whether the boundary has passed and, if so, schedules the next one
func (s *TickScheduler) Due() bool {
	now := s.clock.Now()
	if now.Before(s.deadline) {
		return false
	}
	s.deadline = s.deadline.Add(s.interval)
	if !s.deadline.After(now) {
		s.deadline = now.Add(s.interval)
	}
	return true
}

// Reset starts a fresh interval from now
func (s *TickScheduler) Reset() {
	s.deadline = s.clock.Now().Add(s.interval)
}

// SetInterval changes the cadence, taking effect from now
func (s *TickScheduler) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	s.interval = interval
	s.Reset()
}

func (s *TickScheduler) Interval() time.Duration {
	return s.interval
}
