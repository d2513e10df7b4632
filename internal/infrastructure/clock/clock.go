package clock

import (
	"sync"
	"time"

	"github.com/tdex-network/tdex-timelock/internal/core/ports"
)

type systemClock struct{}

// NewSystemClock returns a ports.Clock reading the wall-clock time.
func NewSystemClock() ports.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Manual is a ports.Clock that moves only when told to. It is meant for tests
// and simulated setups where the lock period must be skipped.
type Manual struct {
	lock *sync.RWMutex
	now  time.Time
}

// NewManualClock returns a Manual clock set at the given time.
func NewManualClock(start time.Time) *Manual {
	return &Manual{&sync.RWMutex{}, start}
}

func (c *Manual) Now() time.Time {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.now
}

// Advance moves the clock forward by d. Negative durations are ignored so
// that the clock never goes backward.
func (c *Manual) Advance(d time.Duration) time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()

	if d > 0 {
		c.now = c.now.Add(d)
	}
	return c.now
}
