package sim

// Timer is the shared windup/cooldown value type. Every gameplay window
// (telegraphs, attack cadence, invulnerability, dash bursts) decrements
// through Tick so the clamp-at-zero rule lives in exactly one place.
type Timer struct {
	remaining float64
	armed     bool
}

// Arm starts the timer with the given duration in seconds.
func (t *Timer) Arm(duration float64) {
	if t == nil {
		return
	}
	if duration < 0 {
		duration = 0
	}
	t.remaining = duration
	t.armed = true
}

// Tick advances the timer, clamping at zero.
func (t *Timer) Tick(dt float64) {
	if t == nil || !t.armed || dt <= 0 {
		return
	}
	t.remaining -= dt
	if t.remaining < 0 {
		t.remaining = 0
	}
}

// Ready reports whether the window has fully elapsed. A timer that was never
// armed is ready.
func (t *Timer) Ready() bool {
	if t == nil {
		return true
	}
	return !t.armed || t.remaining == 0
}

// Active reports whether the timer is armed with time remaining.
func (t *Timer) Active() bool {
	return t != nil && t.armed && t.remaining > 0
}

// Remaining returns the seconds left in the window.
func (t *Timer) Remaining() float64 {
	if t == nil {
		return 0
	}
	return t.remaining
}

// Clear disarms the timer.
func (t *Timer) Clear() {
	if t == nil {
		return
	}
	t.remaining = 0
	t.armed = false
}
