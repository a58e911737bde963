package lesson

import "time"

// Clock counts milliseconds of animation time. It may be paused, in which
// case Millis stays fixed until it is resumed.
type Clock struct {
	now      func() time.Time
	start    time.Time
	pausedAt time.Time
	paused   bool
}

// NewClock returns a running clock starting at zero. If now is nil
// time.Now is used.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, start: now()}
}

// Millis returns the animation time elapsed while the clock was running.
func (c *Clock) Millis() uint64 {
	t := c.now()
	if c.paused {
		t = c.pausedAt
	}
	d := t.Sub(c.start)
	if d < 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}

// Paused reports whether the clock is stopped.
func (c *Clock) Paused() bool { return c.paused }

// Toggle pauses a running clock or resumes a paused one.
func (c *Clock) Toggle() {
	t := c.now()
	if c.paused {
		c.start = c.start.Add(t.Sub(c.pausedAt))
		c.paused = false
		return
	}
	c.pausedAt = t
	c.paused = true
}
