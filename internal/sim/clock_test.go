package sim

import (
	"math"
	"testing"
)

func TestClockConservationOfStep(t *testing.T) {
	clock := NewClock()
	const frames = 240
	total := 0
	for i := 0; i < frames; i++ {
		total += clock.Advance(StepSeconds)
	}
	if total != frames {
		t.Fatalf("expected %d steps from %d whole-step frames, got %d", frames, frames, total)
	}

	// N whole-step frames plus a sub-step remainder frame, each below the
	// stall clamp, must still yield exactly N.
	clock = NewClock()
	const n = 37
	total = 0
	for i := 0; i < n; i++ {
		total += clock.Advance(StepSeconds)
	}
	total += clock.Advance(StepSeconds * 0.49)
	if total != n {
		t.Fatalf("expected exactly %d steps, got %d", n, total)
	}
}

func TestClockClampsStalledFrames(t *testing.T) {
	clock := NewClock()
	steps := clock.Advance(10.0)
	maxSteps := int(math.Floor(maxFrameSeconds / StepSeconds))
	if steps != maxSteps {
		t.Fatalf("stalled frame should clamp to %d steps, got %d", maxSteps, steps)
	}
}

func TestClockPauseSuspendsStepping(t *testing.T) {
	clock := NewClock()
	clock.Pause()
	if steps := clock.Advance(1.0); steps != 0 {
		t.Fatalf("paused clock must not step, got %d", steps)
	}
	clock.Resume()
	if steps := clock.Advance(StepSeconds / 2); steps != 0 {
		t.Fatalf("resume must start from an empty accumulator, got %d steps", steps)
	}
	if steps := clock.Advance(StepSeconds); steps == 0 {
		t.Fatalf("expected a step after resume once a full slice elapsed")
	}
}

func TestClockCountsTotalSteps(t *testing.T) {
	clock := NewClock()
	clock.Advance(3 * StepSeconds)
	clock.Advance(2 * StepSeconds)
	if got := clock.Steps(); got != 5 {
		t.Fatalf("expected 5 total steps, got %d", got)
	}
}
