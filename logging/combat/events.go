// Package combatlog publishes typed combat events.
package combatlog

import (
	"context"

	"hordebreak/server/logging"
)

const (
	EventDamage logging.EventType = "combat.damage"
	EventDefeat logging.EventType = "combat.defeat"
)

// DamagePayload describes a single resolved damage application.
type DamagePayload struct {
	Amount     float64 `json:"amount"`
	Kind       string  `json:"kind"`
	Health     float64 `json:"health"`
	FromAttack string  `json:"fromAttack,omitempty"`
}

// Damage publishes one damage application from attacker to target.
func Damage(ctx context.Context, pub logging.Publisher, step uint64, attacker, target logging.EntityRef, payload DamagePayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDamage,
		Step:     step,
		Actor:    attacker,
		Targets:  []logging.EntityRef{target},
		Severity: logging.SeverityDebug,
		Category: logging.CategoryCombat,
		Payload:  payload,
	})
}

// DefeatPayload describes an entity reaching zero health.
type DefeatPayload struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	XPValue int     `json:"xpValue,omitempty"`
}

// Defeat publishes the death of target, credited to attacker.
func Defeat(ctx context.Context, pub logging.Publisher, step uint64, attacker, target logging.EntityRef, payload DefeatPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDefeat,
		Step:     step,
		Actor:    attacker,
		Targets:  []logging.EntityRef{target},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryCombat,
		Payload:  payload,
	})
}
