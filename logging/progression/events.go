// Package progressionlog publishes typed progression events.
package progressionlog

import (
	"context"

	"hordebreak/server/logging"
)

const (
	EventLevelUp       logging.EventType = "progression.level_up"
	EventDraftOffered  logging.EventType = "progression.draft_offered"
	EventUpgradeChosen logging.EventType = "progression.upgrade_chosen"
)

// LevelUp publishes a player reaching a new level.
func LevelUp(ctx context.Context, pub logging.Publisher, step uint64, player logging.EntityRef, level int, xpToNext int) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventLevelUp,
		Step:     step,
		Actor:    player,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryProgression,
		Payload:  map[string]any{"level": level, "xpToNext": xpToNext},
	})
}

// DraftOffered publishes the upgrade options presented to a player.
func DraftOffered(ctx context.Context, pub logging.Publisher, step uint64, player logging.EntityRef, options []string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDraftOffered,
		Step:     step,
		Actor:    player,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryProgression,
		Payload:  map[string]any{"options": options},
	})
}

// UpgradeChosen publishes the upgrade a player locked in.
func UpgradeChosen(ctx context.Context, pub logging.Publisher, step uint64, player logging.EntityRef, upgradeID string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventUpgradeChosen,
		Step:     step,
		Actor:    player,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryProgression,
		Payload:  map[string]any{"upgradeId": upgradeID},
	})
}
