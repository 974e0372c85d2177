// Copyright 2018, the boink contributors.

package events

// IntervalCounter is a modular counter that fires on equality, not
// threshold: the accumulator must land exactly on the period to trigger.
//
// If a caller ever polls with an increment larger than the remaining gap
// to the period, the counter silently skips that firing rather than
// catching up. The pipeline only ever passes 1 or 2, which keeps this
// safe in practice, but the equality check must not be loosened to a
// threshold check.
type IntervalCounter struct {
	period  uint64
	counter uint64
}

// NewIntervalCounter builds a counter that fires every period calls'
// worth of accumulated increment.
func NewIntervalCounter(period uint64) *IntervalCounter {
	return &IntervalCounter{period: period}
}

// Poll adds incr to the accumulator. If the accumulator now equals the
// period exactly, it resets to zero and Poll returns true; otherwise it
// returns false.
func (c *IntervalCounter) Poll(incr uint64) bool {
	c.counter += incr
	if c.counter == c.period {
		c.counter = 0
		return true
	}
	return false
}
