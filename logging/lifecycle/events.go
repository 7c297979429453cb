// Package lifecyclelog publishes typed run and boss lifecycle events.
package lifecyclelog

import (
	"context"

	"hordebreak/server/logging"
)

const (
	EventRunStarted       logging.EventType = "lifecycle.run_started"
	EventRunEnded         logging.EventType = "lifecycle.run_ended"
	EventBossSpawned      logging.EventType = "lifecycle.boss_spawned"
	EventBossPhaseChanged logging.EventType = "lifecycle.boss_phase_changed"
	EventContentMissing   logging.EventType = "lifecycle.content_missing"
)

// RunStarted publishes the start of a run with its seed.
func RunStarted(ctx context.Context, pub logging.Publisher, step uint64, seed uint64) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventRunStarted,
		Step:     step,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  map[string]any{"seed": seed},
	})
}

// RunEnded publishes the end of a run and its outcome.
func RunEnded(ctx context.Context, pub logging.Publisher, step uint64, victory bool) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventRunEnded,
		Step:     step,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  map[string]any{"victory": victory},
	})
}

// BossSpawned publishes the boss entering the arena.
func BossSpawned(ctx context.Context, pub logging.Publisher, step uint64, boss logging.EntityRef, contentID string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventBossSpawned,
		Step:     step,
		Actor:    boss,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  map[string]any{"contentId": contentID},
	})
}

// BossPhaseChanged publishes a boss state machine transition.
func BossPhaseChanged(ctx context.Context, pub logging.Publisher, step uint64, boss logging.EntityRef, from, to string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventBossPhaseChanged,
		Step:     step,
		Actor:    boss,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryGameplay,
		Payload:  map[string]any{"from": from, "to": to},
	})
}

// ContentMissing publishes a content lookup falling back to defaults.
func ContentMissing(ctx context.Context, pub logging.Publisher, step uint64, contentID, kind string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventContentMissing,
		Step:     step,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityWarn,
		Category: logging.CategorySystem,
		Payload:  map[string]any{"contentId": contentID, "kind": kind},
	})
}
