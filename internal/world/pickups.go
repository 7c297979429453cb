package world

import (
	"context"
	"fmt"

	"hordebreak/server/internal/content"
	"hordebreak/server/internal/journal"
	"hordebreak/server/internal/state"
	"hordebreak/server/logging"
	progressionlog "hordebreak/server/logging/progression"
)

const (
	// gemLifeSeconds bounds how long an uncollected gem lingers.
	gemLifeSeconds = 30.0
	// attractionRadius is the base pull range, extended by upgrades.
	attractionRadius = 70.0
	gemAccel         = 480.0
	gemDrag          = 4.0
	gemCollectPad    = 6.0
)

// dropGem places an experience gem at a defeated enemy's position.
func (w *World) dropGem(pos state.Vec2, value int) {
	if value <= 0 {
		return
	}
	w.gems = append(w.gems, &state.PickupGem{
		ID:    w.allocID("gem"),
		Pos:   pos,
		Value: value,
		Life:  gemLifeSeconds,
	})
}

// updateGems ages, attracts, and collects gems. Collection grants experience
// immediately; a level-up queues a draft which suspends stepping.
func (w *World) updateGems(dt float64) {
	p := w.player
	pull := attractionRadius + p.Bonuses.PickupRadiusAdd
	for _, gem := range w.gems {
		if gem.Life <= 0 {
			continue
		}
		gem.Life -= dt

		if p.Alive() {
			toPlayer := p.Pos.Sub(gem.Pos)
			if toPlayer.Length() <= pull {
				gem.Vel = gem.Vel.Add(toPlayer.Normalized().Scale(gemAccel * dt))
			}
		}
		gem.Vel = gem.Vel.Scale(1 / (1 + gemDrag*dt))
		gem.Pos = gem.Pos.Add(gem.Vel.Scale(dt))

		if p.Alive() && state.Distance(gem.Pos, p.Pos) <= p.Radius+gemCollectPad {
			gem.Life = 0
			w.grantXP(gem.Value)
		}
	}
}

// grantXP feeds collected experience into progression, journals each level
// gained, and opens a draft when one is due.
func (w *World) grantXP(amount int) {
	levels := w.prog.GrantXP(amount)
	for i := 0; i < levels; i++ {
		w.journal.Append(journal.Event{
			Type:   journal.EventLevelUp,
			Step:   w.step,
			Actor:  w.player.ID,
			Value:  w.prog.Level - levels + i + 1,
			Detail: fmt.Sprintf("xpToNext=%d", w.prog.XPToNext),
		})
	}
	if levels > 0 {
		progressionlog.LevelUp(context.Background(), w.pub, w.step,
			logging.EntityRef{ID: w.player.ID, Kind: logging.EntityKindPlayer},
			w.prog.Level, w.prog.XPToNext)
		w.metrics.Store("player_level", uint64(w.prog.Level))
	}
	w.maybeOpenDraft()
}

// maybeOpenDraft builds the next draft when level-ups are owed and none is
// already on offer. Stepping suspends until the player chooses.
func (w *World) maybeOpenDraft() {
	if len(w.pendingDraft) > 0 || w.prog.PendingDrafts <= 0 {
		return
	}
	draft := w.prog.BuildDraft(w.cfg.Content.UpgradeCatalog(), w.rng, w.cfg.DraftSize)
	if len(draft) == 0 {
		// Catalog exhausted: burn the pending draft instead of deadlocking.
		w.prog.PendingDrafts--
		return
	}
	w.pendingDraft = draft

	ids := make([]string, len(draft))
	for i, def := range draft {
		ids[i] = def.ID
	}
	w.journal.Append(journal.Event{
		Type:   journal.EventDraftRequested,
		Step:   w.step,
		Actor:  w.player.ID,
		Detail: fmt.Sprintf("options=%d", len(draft)),
	})
	progressionlog.DraftOffered(context.Background(), w.pub, w.step,
		logging.EntityRef{ID: w.player.ID, Kind: logging.EntityKindPlayer}, ids)
}

// ChooseUpgrade resolves the pending draft with the option at index, applies
// its effects, and either opens the next queued draft or resumes stepping.
func (w *World) ChooseUpgrade(index int) error {
	if w == nil || len(w.pendingDraft) == 0 {
		return fmt.Errorf("no draft pending")
	}
	if index < 0 || index >= len(w.pendingDraft) {
		return fmt.Errorf("draft index %d out of range [0,%d)", index, len(w.pendingDraft))
	}
	chosen := w.pendingDraft[index]
	w.pendingDraft = nil
	w.prog.Choose(chosen)
	w.applyUpgrade(chosen)

	w.journal.Append(journal.Event{
		Type:   journal.EventUpgradeChosen,
		Step:   w.step,
		Actor:  w.player.ID,
		Detail: chosen.ID,
	})
	progressionlog.UpgradeChosen(context.Background(), w.pub, w.step,
		logging.EntityRef{ID: w.player.ID, Kind: logging.EntityKindPlayer}, chosen.ID)

	w.maybeOpenDraft()
	return nil
}

// applyUpgrade folds an upgrade's stat deltas into the player's permanent
// bonuses. A max-health addition also heals by the same amount, and a weapon
// evolution swaps the active attack profile.
func (w *World) applyUpgrade(def content.UpgradeDefinition) {
	p := w.player
	effects := def.Effects
	if effects.DamageMult != 0 {
		p.Bonuses.DamageMult *= effects.DamageMult
	}
	if effects.CadenceMult != 0 {
		p.Bonuses.CadenceMult *= effects.CadenceMult
	}
	if effects.MoveSpeedMult != 0 {
		p.Bonuses.MoveSpeedMult *= effects.MoveSpeedMult
	}
	if effects.MaxHealthAdd != 0 {
		p.Bonuses.MaxHealthAdd += effects.MaxHealthAdd
		p.MaxHealth += effects.MaxHealthAdd
		p.Health += effects.MaxHealthAdd
		if p.Health > p.MaxHealth {
			p.Health = p.MaxHealth
		}
	}
	if effects.PickupRadiusAdd != 0 {
		p.Bonuses.PickupRadiusAdd += effects.PickupRadiusAdd
	}
	if def.WeaponID != "" {
		p.WeaponID = def.WeaponID
		w.weapon = w.resolveAttack(def.WeaponID)
	}
	p.Upgrades = append(p.Upgrades, def.ID)
}
