package time

import (
	"sync"
	"time"
)

type (
	Clock interface {
		Now() time.Time
	}

	// AdjustableClock stands still until it is moved and is safe for concurrent use.
	AdjustableClock interface {
		Clock
		Set(time.Time)
		Add(time.Duration)
	}

	systemClock struct{}

	adjustableClock struct {
		mu  sync.RWMutex
		now time.Time
	}
)

func NewClock() Clock {
	return systemClock{}
}

func NewAdjustableClock(now time.Time) AdjustableClock {
	return &adjustableClock{now: now}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (c *adjustableClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *adjustableClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *adjustableClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
