package mock

import (
	"sync"
	"time"
)

// Clock is a controllable clock for scenarios that depend on the current
// time. It satisfies the application's Clock adapter.
type Clock struct {
	mu        sync.Mutex
	startTime time.Time
	setAt     time.Time
}

// NewClock creates a clock that starts at the real current time.
func NewClock() *Clock {
	now := time.Now().UTC()
	return &Clock{
		startTime: now,
		setAt:     now,
	}
}

// SetCurrentTime pins the clock to the given instant. Time keeps advancing
// at the normal rate from that point.
func (c *Clock) SetCurrentTime(currentTime time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startTime = currentTime.UTC()
	c.setAt = time.Now()
}

// Now returns the current mock time in UTC.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	elapsed := time.Since(c.setAt)
	return c.startTime.Add(elapsed)
}
