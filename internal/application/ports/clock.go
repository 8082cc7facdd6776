package ports

import (
	"sync"
	"time"
)

// Clock abstracts timers so poll ticks and simulation steps can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// InstantClock fires every timer immediately and records the requested
// delays. The zero value is ready to use.
type InstantClock struct {
	Fixed time.Time

	mu     sync.Mutex
	delays []time.Duration
}

func (c *InstantClock) Now() time.Time {
	if c.Fixed.IsZero() {
		return time.Now()
	}
	return c.Fixed
}

func (c *InstantClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.delays = append(c.delays, d)
	c.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- c.Now()
	return ch
}

// Delays returns every duration passed to After, in call order.
func (c *InstantClock) Delays() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.delays...)
}
