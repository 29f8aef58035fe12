package game

import "time"

// Clock is a monotonic millisecond time source
type Clock interface {
	NowMillis() uint64
}

// SystemClock counts milliseconds since it was created
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since creation
func (c *SystemClock) NowMillis() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

// ManualClock only moves when told to
type ManualClock struct {
	Now uint64
}

// NowMillis returns the current manual time
func (c *ManualClock) NowMillis() uint64 {
	return c.Now
}

// Advance moves the clock forward by ms milliseconds
func (c *ManualClock) Advance(ms uint64) {
	c.Now += ms
}
