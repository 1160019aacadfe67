package engine

import (
	"sync"
	"time"
)

// countdown is a cancellable, re-armable one-shot timer. Each arm bumps a
// generation number; a firing scheduled under an older generation is
// discarded, so re-arming on cue escalation can never leak a stale timeout
// into a later item.
type countdown struct {
	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

// arm schedules fire after d, invalidating any earlier schedule.
func (c *countdown) arm(d time.Duration, fire func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	gen := c.gen
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(d, func() {
		c.mu.Lock()
		live := gen == c.gen
		c.mu.Unlock()
		if live {
			fire()
		}
	})
}

// cancel invalidates any pending firing.
func (c *countdown) cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
