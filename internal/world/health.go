package world

import (
	"context"

	"hordebreak/server/internal/journal"
	"hordebreak/server/internal/state"
	"hordebreak/server/logging"
	combatlog "hordebreak/server/logging/combat"
	lifecyclelog "hordebreak/server/logging/lifecycle"
)

// damagePlayer applies one hit to the player, honoring the post-hit grace
// window. Health clamps at zero and death ends the run.
func (w *World) damagePlayer(amount float64, sourceID string, kind state.DamageKind) {
	p := w.player
	if amount <= 0 || !p.Alive() || p.Invulnerability.Active() {
		return
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Invulnerability.Arm(invulnSeconds)
	w.recordDamage(sourceID, p.ID, amount, kind, p.Health, false)

	if p.Health == 0 {
		w.journal.Append(journal.Event{
			Type:  journal.EventEntityDied,
			Step:  w.step,
			Actor: p.ID,
			Kind:  "player",
			X:     p.Pos.X,
			Y:     p.Pos.Y,
		})
		combatlog.Defeat(context.Background(), w.pub, w.step,
			logging.EntityRef{ID: sourceID, Kind: logging.EntityKindEnemy},
			logging.EntityRef{ID: p.ID, Kind: logging.EntityKindPlayer},
			combatlog.DefeatPayload{X: p.Pos.X, Y: p.Pos.Y})
		w.endRun(false)
	}
}

// damageEnemy applies one hit to an enemy by id. Death drops an experience
// gem at the corpse and records the kill.
func (w *World) damageEnemy(id string, amount float64, sourceID string, kind state.DamageKind) {
	enemy := w.enemyByID(id)
	if enemy == nil || amount <= 0 || !enemy.Alive() {
		return
	}
	enemy.Health -= amount
	if enemy.Health < 0 {
		enemy.Health = 0
	}
	w.recordDamage(sourceID, enemy.ID, amount, kind, enemy.Health, false)

	if enemy.Health == 0 {
		w.journal.Append(journal.Event{
			Type:  journal.EventEntityDied,
			Step:  w.step,
			Actor: enemy.ID,
			Kind:  enemy.Archetype.String(),
			Value: enemy.Stats.XPValue,
			X:     enemy.Pos.X,
			Y:     enemy.Pos.Y,
		})
		combatlog.Defeat(context.Background(), w.pub, w.step,
			logging.EntityRef{ID: sourceID, Kind: logging.EntityKindPlayer},
			logging.EntityRef{ID: enemy.ID, Kind: logging.EntityKindEnemy},
			combatlog.DefeatPayload{X: enemy.Pos.X, Y: enemy.Pos.Y, XPValue: enemy.Stats.XPValue})
		w.dropGem(enemy.Pos, enemy.Stats.XPValue)
		w.metrics.Add("enemies_defeated", 1)
	}
}

// damageBoss applies one hit to the boss. The intro window is inert; callers
// filter it out before reaching here via target selection.
func (w *World) damageBoss(amount float64, sourceID string, kind state.DamageKind) {
	boss := w.boss
	if boss == nil || amount <= 0 || !boss.Alive() {
		return
	}
	boss.Health -= amount
	if boss.Health < 0 {
		boss.Health = 0
	}
	w.recordDamage(sourceID, boss.ID, amount, kind, boss.Health, true)

	if boss.Health == 0 {
		w.journal.Append(journal.Event{
			Type:   journal.EventEntityDied,
			Step:   w.step,
			Actor:  boss.ID,
			Kind:   "boss",
			Value:  boss.Stats.XPValue,
			IsBoss: true,
			X:      boss.Pos.X,
			Y:      boss.Pos.Y,
		})
		combatlog.Defeat(context.Background(), w.pub, w.step,
			logging.EntityRef{ID: sourceID, Kind: logging.EntityKindPlayer},
			logging.EntityRef{ID: boss.ID, Kind: logging.EntityKindBoss},
			combatlog.DefeatPayload{X: boss.Pos.X, Y: boss.Pos.Y, XPValue: boss.Stats.XPValue})
		w.endRun(true)
	}
}

func (w *World) recordDamage(sourceID, targetID string, amount float64, kind state.DamageKind, health float64, isBoss bool) {
	w.journal.Append(journal.Event{
		Type:   journal.EventDamageApplied,
		Step:   w.step,
		Actor:  sourceID,
		Target: targetID,
		Kind:   string(kind),
		Amount: amount,
		IsBoss: isBoss,
	})
	combatlog.Damage(context.Background(), w.pub, w.step,
		logging.EntityRef{ID: sourceID},
		logging.EntityRef{ID: targetID},
		combatlog.DamagePayload{Amount: amount, Kind: string(kind), Health: health})
	w.metrics.Add("damage_events", 1)
}

func (w *World) endRun(victory bool) {
	if w.over {
		return
	}
	w.over = true
	w.victory = victory
	lifecyclelog.RunEnded(context.Background(), w.pub, w.step, victory)
}
