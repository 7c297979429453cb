package world

import (
	"hordebreak/server/internal/combat"
	"hordebreak/server/internal/content"
	"hordebreak/server/internal/state"
)

// Poison zone payload attached to spitter shots.
const (
	poisonZoneRadius       = 42.0
	poisonZoneDuration     = 3.0
	poisonZoneTickInterval = 0.5
	poisonZoneTickDamage   = 3.0
	poisonZoneSlow         = 0.6
)

// spawnProjectile creates a traveling hazard. Life is the remaining travel
// distance, so range stays independent of speed.
func (w *World) spawnProjectile(spec content.ProjectileSpec, damage float64, dir state.Vec2, owner state.OwnerKind, ownerID string, zone *content.ZoneEffect) {
	dir = dir.Normalized()
	if dir.X == 0 && dir.Y == 0 {
		dir = state.Vec2{X: 1}
	}
	kind := state.DamageKind(spec.Kind)
	if kind == "" {
		kind = state.DamagePhysical
	}
	var zoneSpec *state.ZoneSpec
	if zone != nil {
		zoneSpec = zoneSpecFromEffect(*zone)
	}
	origin := w.player.Pos
	if owner != state.OwnerPlayer {
		origin = w.ownerPos(owner, ownerID)
	}
	w.projectiles = append(w.projectiles, &state.Projectile{
		ID:      w.allocID("projectile"),
		Pos:     origin,
		Vel:     dir.Scale(spec.Speed),
		Radius:  spec.Radius,
		Life:    spec.Range,
		Damage:  damage,
		Owner:   owner,
		OwnerID: ownerID,
		Kind:    kind,
		Zone:    zoneSpec,
	})
}

func (w *World) ownerPos(owner state.OwnerKind, ownerID string) state.Vec2 {
	switch owner {
	case state.OwnerBoss:
		if w.boss != nil {
			return w.boss.Pos
		}
	case state.OwnerEnemy:
		for _, enemy := range w.enemies {
			if enemy.ID == ownerID {
				return enemy.Pos
			}
		}
	}
	return w.player.Pos
}

// advanceProjectiles integrates projectile travel and resolves impacts with a
// swept test so a fast shot cannot tunnel through a target in one step.
func (w *World) advanceProjectiles(dt float64) {
	for _, proj := range w.projectiles {
		if proj.Life <= 0 {
			continue
		}
		speed := proj.Vel.Length()
		travel := speed * dt
		if travel > proj.Life {
			travel = proj.Life
		}
		oldPos := proj.Pos
		dir := proj.Vel.Normalized()
		proj.Pos = proj.Pos.Add(dir.Scale(travel))
		proj.Life -= travel

		if w.projectileHit(proj, oldPos) {
			proj.Life = 0
			continue
		}
		if proj.Life <= 0 && proj.Zone != nil {
			// Range end still detonates the payload (spitter lobs).
			w.spawnZoneFromSpec(proj.Pos, *proj.Zone, proj.Owner)
		}
	}
}

// projectileHit tests the swept segment against the opposing side and applies
// the impact. Returns true when the projectile is spent.
func (w *World) projectileHit(proj *state.Projectile, oldPos state.Vec2) bool {
	if proj.Owner == state.OwnerPlayer {
		for _, enemy := range w.enemies {
			if !enemy.Alive() {
				continue
			}
			if combat.SegmentCircleOverlap(oldPos.X, oldPos.Y, proj.Pos.X, proj.Pos.Y,
				enemy.Pos.X, enemy.Pos.Y, enemy.Radius+proj.Radius) {
				w.impactProjectile(proj, enemy.Pos)
				w.damageEnemy(enemy.ID, proj.Damage, proj.OwnerID, proj.Kind)
				return true
			}
		}
		if w.boss != nil && w.boss.Alive() && w.boss.Phase != state.BossIntro {
			if combat.SegmentCircleOverlap(oldPos.X, oldPos.Y, proj.Pos.X, proj.Pos.Y,
				w.boss.Pos.X, w.boss.Pos.Y, w.boss.Radius+proj.Radius) {
				w.impactProjectile(proj, w.boss.Pos)
				w.damageBoss(proj.Damage, proj.OwnerID, proj.Kind)
				return true
			}
		}
		return false
	}

	if !w.player.Alive() {
		return false
	}
	if combat.SegmentCircleOverlap(oldPos.X, oldPos.Y, proj.Pos.X, proj.Pos.Y,
		w.player.Pos.X, w.player.Pos.Y, w.player.Radius+proj.Radius) {
		w.impactProjectile(proj, w.player.Pos)
		w.damagePlayer(proj.Damage, proj.OwnerID, proj.Kind)
		return true
	}
	return false
}

func (w *World) impactProjectile(proj *state.Projectile, at state.Vec2) {
	if proj.Zone != nil {
		w.spawnZoneFromSpec(at, *proj.Zone, proj.Owner)
	}
}

func zoneSpecFromEffect(effect content.ZoneEffect) *state.ZoneSpec {
	kind := state.DamageKind(effect.Kind)
	if kind == "" {
		kind = state.DamagePhysical
	}
	return &state.ZoneSpec{
		Radius:         effect.Radius,
		Duration:       effect.Duration,
		TickInterval:   effect.TickInterval,
		TickDamage:     effect.TickDamage,
		SlowMultiplier: effect.SlowMultiplier,
		Kind:           kind,
	}
}

// spawnZone places a lingering hazard from an attack-profile effect.
func (w *World) spawnZone(pos state.Vec2, effect content.ZoneEffect, owner state.OwnerKind) {
	w.spawnZoneFromSpec(pos, *zoneSpecFromEffect(effect), owner)
}

func (w *World) spawnZoneFromSpec(pos state.Vec2, spec state.ZoneSpec, owner state.OwnerKind) {
	zone := &state.HazardZone{
		ID:             w.allocID("zone"),
		Pos:            pos,
		Radius:         spec.Radius,
		Life:           spec.Duration,
		TickDamage:     spec.TickDamage,
		TickInterval:   spec.TickInterval,
		SlowMultiplier: spec.SlowMultiplier,
		Owner:          owner,
		Kind:           spec.Kind,
	}
	zone.TickTimer.Arm(spec.TickInterval)
	w.zones = append(w.zones, zone)
}

// tickZones expires zone lifetimes and applies periodic damage to whatever
// overlaps them on the opposing side.
func (w *World) tickZones(dt float64) {
	for _, zone := range w.zones {
		if zone.Life <= 0 {
			continue
		}
		zone.Life -= dt
		zone.TickTimer.Tick(dt)
		if !zone.TickTimer.Ready() {
			continue
		}
		zone.TickTimer.Arm(zone.TickInterval)
		if zone.TickDamage <= 0 {
			continue
		}
		if zone.Owner == state.OwnerPlayer {
			for _, enemy := range w.enemies {
				if !enemy.Alive() {
					continue
				}
				if state.Distance(zone.Pos, enemy.Pos) <= zone.Radius+enemy.Radius {
					w.damageEnemy(enemy.ID, zone.TickDamage, zone.ID, zone.Kind)
				}
			}
			if w.boss != nil && w.boss.Alive() && w.boss.Phase != state.BossIntro {
				if state.Distance(zone.Pos, w.boss.Pos) <= zone.Radius+w.boss.Radius {
					w.damageBoss(zone.TickDamage, zone.ID, zone.Kind)
				}
			}
			continue
		}
		if w.player.Alive() && state.Distance(zone.Pos, w.player.Pos) <= zone.Radius+w.player.Radius {
			w.damagePlayer(zone.TickDamage, zone.ID, zone.Kind)
		}
	}
}

// attachTether links a damage-over-time effect to a freshly hit target.
func (w *World) attachTether(target combat.TargetRef, effect content.TetherEffect) {
	tether := &state.Tether{
		ID:           w.allocID("tether"),
		TargetID:     target.ID,
		TargetIsBoss: target.IsBoss,
		Remaining:    effect.Duration,
		TickDamage:   effect.TickDamage,
		TickInterval: effect.TickInterval,
	}
	tether.TickTimer.Arm(effect.TickInterval)
	w.tethers = append(w.tethers, tether)
}

// tickTethers applies periodic tether damage and expires finished links.
func (w *World) tickTethers(dt float64) {
	for _, tether := range w.tethers {
		if tether.Remaining <= 0 {
			continue
		}
		tether.Remaining -= dt
		tether.TickTimer.Tick(dt)
		if !tether.TickTimer.Ready() {
			continue
		}
		tether.TickTimer.Arm(tether.TickInterval)
		if tether.TargetIsBoss {
			if w.boss != nil && w.boss.Alive() {
				w.damageBoss(tether.TickDamage, tether.ID, state.DamagePhysical)
			} else {
				tether.Remaining = 0
			}
			continue
		}
		target := w.enemyByID(tether.TargetID)
		if target == nil || !target.Alive() {
			tether.Remaining = 0
			continue
		}
		w.damageEnemy(target.ID, tether.TickDamage, tether.ID, state.DamagePhysical)
	}
}

func (w *World) enemyByID(id string) *state.Enemy {
	for _, enemy := range w.enemies {
		if enemy.ID == id {
			return enemy
		}
	}
	return nil
}
