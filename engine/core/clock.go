package core

import "time"

// Clock measures elapsed seconds since Start. A stopped clock keeps reporting
// the last elapsed value.
type Clock struct {
	start   time.Time
	running bool
	elapsed float64
	now     func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Update refreshes the elapsed time. Has no effect on clocks that are not running.
func (c *Clock) Update() {
	if c.running {
		c.elapsed = c.now().Sub(c.start).Seconds()
	}
}

// Start resets the elapsed time and starts counting.
func (c *Clock) Start() {
	c.start = c.now()
	c.running = true
	c.elapsed = 0
}

// Stop freezes the clock. Elapsed time is kept.
func (c *Clock) Stop() {
	c.running = false
}

// Elapsed returns the seconds counted at the last Update.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}
