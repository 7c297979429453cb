// Package logging routes structured gameplay and system events to a set of
// configurable sinks. The simulation publishes through the Publisher
// interface and never blocks on sink I/O.
package logging

import (
	"context"
	"time"
)

// EventType identifies one structured event kind, namespaced by category
// ("combat.damage", "progression.level_up", ...).
type EventType string

// Severity orders events for sink filtering.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

// EntityKind tags which kind of simulation entity an EntityRef names.
type EntityKind string

const (
	EntityKindUnknown    EntityKind = "unknown"
	EntityKindPlayer     EntityKind = "player"
	EntityKindEnemy      EntityKind = "enemy"
	EntityKindBoss       EntityKind = "boss"
	EntityKindProjectile EntityKind = "projectile"
	EntityKindZone       EntityKind = "zone"
	EntityKindWorld      EntityKind = "world"
)

// EntityRef names one entity in an event.
type EntityRef struct {
	ID   string     `json:"id"`
	Kind EntityKind `json:"kind"`
}

const (
	CategoryGameplay    = "gameplay"
	CategoryCombat      = "combat"
	CategoryProgression = "progression"
	CategorySystem      = "system"
)

// Event is one structured log entry.
type Event struct {
	Type     EventType      `json:"type"`
	Step     uint64         `json:"step"`
	Time     time.Time      `json:"time"`
	Actor    EntityRef      `json:"actor"`
	Targets  []EntityRef    `json:"targets,omitempty"`
	Severity Severity       `json:"severity"`
	Category string         `json:"category,omitempty"`
	Payload  any            `json:"payload,omitempty"`
	Extra    map[string]any `json:"extra,omitempty"`
}

// Publisher accepts events for routing.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// PublisherFunc adapts a function into a Publisher.
type PublisherFunc func(ctx context.Context, event Event)

// Publish implements Publisher.
func (f PublisherFunc) Publish(ctx context.Context, event Event) {
	if f == nil {
		return
	}
	f(ctx, event)
}

// NopPublisher discards every event. Useful default for tests and tools.
func NopPublisher() Publisher {
	return PublisherFunc(func(context.Context, Event) {})
}
