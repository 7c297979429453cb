// Package journal accumulates the gameplay events the core emits for
// presentation, audio, and telemetry collaborators. Events are buffered per
// step and drained once per presentation frame.
package journal

// EventType identifies one gameplay event kind.
type EventType string

const (
	// EventDamageApplied fires whenever an attack, projectile, zone tick, or
	// tether tick lands on a target.
	EventDamageApplied EventType = "combat.damage"
	// EventEntityDied fires when any entity's health reaches zero.
	EventEntityDied EventType = "combat.death"
	// EventLevelUp fires once per level gained.
	EventLevelUp EventType = "progression.level_up"
	// EventDraftRequested fires when a level-up pauses the clock for a draft.
	EventDraftRequested EventType = "progression.draft_requested"
	// EventUpgradeChosen fires when the player locks in a draft option.
	EventUpgradeChosen EventType = "progression.upgrade_chosen"
	// EventBossPhaseChanged fires on every boss phase transition.
	EventBossPhaseChanged EventType = "boss.phase_changed"
	// EventContentMissing is the diagnostic emitted when a content id fails to
	// resolve and a fallback record was substituted.
	EventContentMissing EventType = "content.missing"
)

// Event is one journal entry. Field usage varies by type: damage events fill
// Target/Amount/IsBoss, deaths fill Kind and position, phase changes fill
// Detail with the new phase name.
type Event struct {
	Type   EventType `json:"type"`
	Step   uint64    `json:"step"`
	Actor  string    `json:"actor,omitempty"`
	Target string    `json:"target,omitempty"`
	Kind   string    `json:"kind,omitempty"`
	Detail string    `json:"detail,omitempty"`
	Amount float64   `json:"amount,omitempty"`
	Value  int       `json:"value,omitempty"`
	IsBoss bool      `json:"isBoss,omitempty"`
	X      float64   `json:"x,omitempty"`
	Y      float64   `json:"y,omitempty"`
}

// Journal is a bounded event buffer. The simulation is the sole writer, so no
// locking is required; collaborators drain between steps.
type Journal struct {
	events   []Event
	capacity int
	dropped  uint64
}

// DefaultCapacity bounds the undrained backlog.
const DefaultCapacity = 1024

// New returns a journal holding at most capacity undrained events.
func New(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Journal{capacity: capacity}
}

// Append records an event, dropping the oldest entry when the buffer is full.
// A stalled reader costs history, never simulation progress.
func (j *Journal) Append(event Event) {
	if j == nil {
		return
	}
	if len(j.events) >= j.capacity {
		copy(j.events, j.events[1:])
		j.events = j.events[:len(j.events)-1]
		j.dropped++
	}
	j.events = append(j.events, event)
}

// Drain returns all buffered events and clears the buffer.
func (j *Journal) Drain() []Event {
	if j == nil || len(j.events) == 0 {
		return nil
	}
	drained := j.events
	j.events = nil
	return drained
}

// Len reports the undrained backlog size.
func (j *Journal) Len() int {
	if j == nil {
		return 0
	}
	return len(j.events)
}

// Dropped reports how many events were discarded to stay within capacity.
func (j *Journal) Dropped() uint64 {
	if j == nil {
		return 0
	}
	return j.dropped
}
