package world

import (
	"hordebreak/server/internal/ai"
	"hordebreak/server/internal/state"
)

// integrate applies one step of movement for every actor, in a fixed order:
// player, enemies (spawn order), boss. Positions are clamped to the arena and
// overlaps are separated afterwards so no step ends with actors stacked.
func (w *World) integrate(dt float64, intents []ai.Intent, bossIntent ai.BossIntent) {
	w.integratePlayer(dt)

	for i, enemy := range w.enemies {
		if !enemy.Alive() {
			continue
		}
		move := intents[i].Move
		if move.X == 0 && move.Y == 0 {
			continue
		}
		slow := w.zoneSlowFor(enemy.Pos, enemy.Radius, state.OwnerPlayer)
		enemy.Pos = w.clampToArena(enemy.Pos.Add(move.Scale(dt*slow)), enemy.Radius)
	}

	if w.boss != nil && w.boss.Alive() {
		move := bossIntent.Move
		if move.X != 0 || move.Y != 0 {
			w.boss.Pos = w.clampToArena(w.boss.Pos.Add(move.Scale(dt)), w.boss.Radius)
		}
	}

	w.separateOverlaps()
}

func (w *World) integratePlayer(dt float64) {
	p := w.player
	if !p.Alive() {
		return
	}
	intent := p.Intent
	if intent.X == 0 && intent.Y == 0 {
		return
	}
	speed := p.MoveSpeed * p.Bonuses.MoveSpeedMult
	speed *= w.zoneSlowFor(p.Pos, p.Radius, state.OwnerEnemy)
	if w.touchingEnemy() {
		speed *= contactFriction
	}
	p.Facing = intent
	p.Pos = w.clampToArena(p.Pos.Add(intent.Scale(speed*dt)), p.Radius)
}

// touchingEnemy reports whether the player currently overlaps any hostile.
func (w *World) touchingEnemy() bool {
	p := w.player
	for _, enemy := range w.enemies {
		if !enemy.Alive() {
			continue
		}
		if state.Distance(p.Pos, enemy.Pos) < p.Radius+enemy.Radius {
			return true
		}
	}
	if w.boss != nil && w.boss.Alive() {
		if state.Distance(p.Pos, w.boss.Pos) < p.Radius+w.boss.Radius {
			return true
		}
	}
	return false
}

// zoneSlowFor folds the slow multipliers of every overlapping hazard zone
// created by the given side. Zones never slow their own side; callers pass
// the hostile owner kind for the actor being moved.
func (w *World) zoneSlowFor(pos state.Vec2, radius float64, hostileTo state.OwnerKind) float64 {
	slow := 1.0
	for _, zone := range w.zones {
		if zone.SlowMultiplier <= 0 || zone.SlowMultiplier >= 1 {
			continue
		}
		hostile := zone.Owner == hostileTo
		if hostileTo != state.OwnerPlayer {
			// Enemy and boss zones both count as hostile to the player.
			hostile = zone.Owner != state.OwnerPlayer
		}
		if !hostile {
			continue
		}
		if state.Distance(pos, zone.Pos) <= radius+zone.Radius {
			slow *= zone.SlowMultiplier
		}
	}
	return slow
}

// separateOverlaps resolves actor-vs-actor penetration. Enemy pairs split the
// push evenly; the player is pushed out of enemies (and fully out of the
// boss) after a friction-scaled move, so crowding stalls rather than hurts.
func (w *World) separateOverlaps() {
	for i := 0; i < len(w.enemies); i++ {
		a := w.enemies[i]
		if !a.Alive() {
			continue
		}
		for j := i + 1; j < len(w.enemies); j++ {
			b := w.enemies[j]
			if !b.Alive() {
				continue
			}
			pushApart(&a.Actor, &b.Actor, 0.5)
		}
	}
	p := &w.player.Actor
	for _, enemy := range w.enemies {
		if enemy.Alive() {
			pushApart(p, &enemy.Actor, 0.5)
		}
	}
	if w.boss != nil && w.boss.Alive() {
		// The boss does not yield.
		pushApart(p, &w.boss.Actor, 1.0)
	}
	w.player.Pos = w.clampToArena(w.player.Pos, w.player.Radius)
	for _, enemy := range w.enemies {
		enemy.Pos = w.clampToArena(enemy.Pos, enemy.Radius)
	}
}

// pushApart separates two overlapping actors along their center axis.
// aShare is the fraction of the push applied to a; b receives the rest.
// Exactly coincident centers separate along +X so the result stays
// deterministic.
func pushApart(a, b *state.Actor, aShare float64) {
	minDist := a.Radius + b.Radius
	delta := a.Pos.Sub(b.Pos)
	dist := delta.Length()
	if dist >= minDist {
		return
	}
	dir := delta.Normalized()
	if dir.X == 0 && dir.Y == 0 {
		dir = state.Vec2{X: 1}
	}
	depth := minDist - dist
	a.Pos = a.Pos.Add(dir.Scale(depth * aShare))
	b.Pos = b.Pos.Sub(dir.Scale(depth * (1 - aShare)))
}
