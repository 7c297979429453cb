package world

import (
	"hordebreak/server/internal/ai"
	"hordebreak/server/internal/combat"
	"hordebreak/server/internal/content"
	"hordebreak/server/internal/state"
)

// resolvePlayerAttack consumes a pending swing once the weapon cooldown has
// elapsed. Aim falls back to the current facing when the command carried a
// zero vector.
func (w *World) resolvePlayerAttack() {
	p := w.player
	if !p.Alive() || !p.PendingAttack || !p.AttackCooldown.Ready() {
		return
	}
	p.PendingAttack = false

	aim := p.PendingAim
	if aim.X == 0 && aim.Y == 0 {
		aim = p.Facing
	}
	if aim.X == 0 && aim.Y == 0 {
		aim = state.Vec2{X: 1}
	}
	p.Facing = aim.Normalized()

	targets := w.attackTargets()
	damage := w.weapon.Damage * p.Bonuses.DamageMult

	combat.ResolveAttack(combat.AttackConfig{
		AttackerID: p.ID,
		X:          p.Pos.X,
		Y:          p.Pos.Y,
		AimX:       aim.X,
		AimY:       aim.Y,
		Damage:     damage,
		Profile:    w.weapon,
		Targets:    targets,
		ApplyDamage: func(target combat.TargetRef, amount float64) {
			w.damageTarget(target, amount, p.ID, state.DamagePhysical)
		},
		SpawnProjectile: func(spec content.ProjectileSpec, dmg float64, dirX, dirY float64, zone *content.ZoneEffect) {
			w.spawnProjectile(spec, dmg, state.Vec2{X: dirX, Y: dirY}, state.OwnerPlayer, p.ID, zone)
		},
		SpawnZone: func(x, y float64, zone content.ZoneEffect) {
			w.spawnZone(state.Vec2{X: x, Y: y}, zone, state.OwnerPlayer)
		},
		AttachTether: func(target combat.TargetRef, tether content.TetherEffect) {
			w.attachTether(target, tether)
		},
		MoveSelf: func(dx, dy float64) {
			p.Pos = w.clampToArena(p.Pos.Add(state.Vec2{X: dx, Y: dy}), p.Radius)
		},
	})

	cadence := w.weapon.Cadence * p.Bonuses.CadenceMult
	p.AttackCooldown.Arm(cadence)
}

// attackTargets lists every attackable hostile in spawn order, boss last.
// Stable ordering keeps simultaneous multi-hit resolution reproducible.
func (w *World) attackTargets() []combat.TargetRef {
	targets := make([]combat.TargetRef, 0, len(w.enemies)+1)
	for _, enemy := range w.enemies {
		if !enemy.Alive() {
			continue
		}
		targets = append(targets, combat.TargetRef{
			ID:     enemy.ID,
			X:      enemy.Pos.X,
			Y:      enemy.Pos.Y,
			Radius: enemy.Radius,
		})
	}
	if w.boss != nil && w.boss.Alive() && w.boss.Phase != state.BossIntro {
		targets = append(targets, combat.TargetRef{
			ID:     w.boss.ID,
			X:      w.boss.Pos.X,
			Y:      w.boss.Pos.Y,
			Radius: w.boss.Radius,
			IsBoss: true,
		})
	}
	return targets
}

// resolveEnemyIntents applies the strike and fire intents the directors
// produced this step, in spawn order.
func (w *World) resolveEnemyIntents(intents []ai.Intent) {
	for i, enemy := range w.enemies {
		if !enemy.Alive() {
			continue
		}
		intent := intents[i]
		if intent.Strike != nil {
			w.resolveEnemyStrike(enemy, *intent.Strike)
		}
		if intent.Fire != nil {
			w.resolveEnemyFire(enemy, *intent.Fire)
		}
	}
}

// resolveEnemyStrike lands a melee hit only if the player is still inside the
// strike reach when the windup releases. Backing out dodges it.
func (w *World) resolveEnemyStrike(enemy *state.Enemy, strike ai.StrikeIntent) {
	if !w.player.Alive() {
		return
	}
	reach := strike.Range + w.player.Radius
	if state.Distance(enemy.Pos, w.player.Pos) > reach {
		return
	}
	w.damagePlayer(strike.Damage, enemy.ID, state.DamagePhysical)
}

// resolveEnemyFire spawns a hostile projectile along the aim captured at
// windup start. Spitter shots carry the poison zone payload.
func (w *World) resolveEnemyFire(enemy *state.Enemy, fire ai.FireIntent) {
	var zone *content.ZoneEffect
	kind := state.DamagePhysical
	if fire.Poison {
		kind = state.DamagePoison
		zone = &content.ZoneEffect{
			Radius:         poisonZoneRadius,
			Duration:       poisonZoneDuration,
			TickInterval:   poisonZoneTickInterval,
			TickDamage:     poisonZoneTickDamage,
			SlowMultiplier: poisonZoneSlow,
			Kind:           string(state.DamagePoison),
		}
	}
	spec := content.ProjectileSpec{
		Speed:  fire.Speed,
		Range:  fire.Range,
		Radius: fire.Radius,
		Kind:   string(kind),
	}
	w.spawnProjectile(spec, fire.Damage, fire.Dir, state.OwnerEnemy, enemy.ID, zone)
}

// resolveBossSlam applies the slam's area damage once, against the point the
// boss committed to at telegraph start.
func (w *World) resolveBossSlam(intent ai.BossIntent) {
	if intent.Slam == nil || !w.player.Alive() {
		return
	}
	slam := intent.Slam
	if state.Distance(slam.Target, w.player.Pos) > slam.Radius+w.player.Radius {
		return
	}
	w.damagePlayer(slam.Damage, w.boss.ID, state.DamagePhysical)
}

// damageTarget routes resolver hits to the right health pool.
func (w *World) damageTarget(target combat.TargetRef, amount float64, attackerID string, kind state.DamageKind) {
	if target.IsBoss {
		w.damageBoss(amount, attackerID, kind)
		return
	}
	w.damageEnemy(target.ID, amount, attackerID, kind)
}
