package sim

// StepSeconds is the fixed logical timestep. All gameplay timers and
// integration advance in whole multiples of this slice.
const StepSeconds = 1.0 / 60.0

// maxFrameSeconds clamps a single real-time frame contribution so a stalled
// host cannot trigger a catch-up spiral.
const maxFrameSeconds = 0.05

// Clock accumulates real elapsed time and converts it into whole fixed steps.
// While paused (an upgrade draft is pending) no time accumulates at all; the
// simulation simply does not advance.
type Clock struct {
	accumulator float64
	paused      bool
	steps       uint64
}

// NewClock returns a clock with an empty accumulator.
func NewClock() *Clock {
	return &Clock{}
}

// Advance feeds elapsed wall time into the accumulator and returns the number
// of whole fixed steps the caller must run. Elapsed time is clamped to
// maxFrameSeconds before accumulating.
func (c *Clock) Advance(elapsed float64) int {
	if c == nil || c.paused {
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameSeconds {
		elapsed = maxFrameSeconds
	}
	c.accumulator += elapsed
	steps := 0
	for c.accumulator >= StepSeconds {
		c.accumulator -= StepSeconds
		steps++
	}
	c.steps += uint64(steps)
	return steps
}

// Pause suspends stepping entirely. Pending accumulator time is discarded so
// the resume does not replay a burst of stale steps.
func (c *Clock) Pause() {
	if c == nil {
		return
	}
	c.paused = true
	c.accumulator = 0
}

// Resume re-enables stepping from a clean accumulator.
func (c *Clock) Resume() {
	if c == nil {
		return
	}
	c.paused = false
	c.accumulator = 0
}

// Paused reports whether stepping is currently suspended.
func (c *Clock) Paused() bool {
	return c != nil && c.paused
}

// Steps returns the total number of fixed steps issued since construction.
func (c *Clock) Steps() uint64 {
	if c == nil {
		return 0
	}
	return c.steps
}
