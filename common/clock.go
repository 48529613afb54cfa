package common

import "time"

// Clock is a monotonic millisecond clock.
type Clock interface {
	NowMs() int64
}

// SystemClock measures milliseconds since it was created.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to.
type ManualClock struct {
	Ms int64
}

func (c *ManualClock) NowMs() int64 {
	return c.Ms
}

func (c *ManualClock) Advance(ms int64) {
	c.Ms += ms
}
