package world

import (
	"context"
	"math"

	"hordebreak/server/internal/ai"
	"hordebreak/server/internal/content"
	"hordebreak/server/internal/state"
	"hordebreak/server/logging"
	lifecyclelog "hordebreak/server/logging/lifecycle"
)

const (
	spawnBaseInterval = 2.2
	spawnMinInterval  = 0.5
	// spawnDecayPerLevel compounds per player level to thicken the horde.
	spawnDecayPerLevel = 0.92

	// Spawn ring distances keep new enemies off-screen but relevant.
	spawnRingMin = 380.0
	spawnRingMax = 520.0
)

// spawnInterval computes the delay before the next spawn at the current
// player level. The pace tightens geometrically and floors at the minimum.
func (w *World) spawnInterval() float64 {
	interval := w.cfg.SpawnBaseInterval * math.Pow(spawnDecayPerLevel, float64(w.prog.Level-1))
	if interval < w.cfg.SpawnMinInterval {
		interval = w.cfg.SpawnMinInterval
	}
	return interval
}

// updateSpawning runs the spawn timer and the boss trigger.
func (w *World) updateSpawning(dt float64) {
	w.spawnTimer.Tick(dt)
	if w.spawnTimer.Ready() {
		w.spawnEnemy()
		w.spawnTimer.Arm(w.spawnInterval())
	}
	if !w.bossSpawned && w.elapsed >= w.cfg.BossTriggerSeconds {
		w.spawnBoss()
	}
}

// spawnEnemy draws a creature from the level-gated spawn table and places it
// on a ring around the player. A missing creature record spawns the fallback
// husk rather than skipping the beat.
func (w *World) spawnEnemy() {
	entries := w.cfg.Content.SpawnTable(w.prog.Level)
	if len(entries) == 0 {
		return
	}
	total := 0.0
	for _, entry := range entries {
		total += entry.Weight
	}
	if total <= 0 {
		return
	}
	roll := w.rng.Next() * total
	chosen := entries[len(entries)-1]
	for _, entry := range entries {
		roll -= entry.Weight
		if roll < 0 {
			chosen = entry
			break
		}
	}

	def := w.resolveCreature(chosen.CreatureID)
	pos := w.ringPosition(spawnRingMin, spawnRingMax, def.Radius)
	enemy := &state.Enemy{
		Actor: state.Actor{
			ID:        w.allocID("enemy"),
			Pos:       pos,
			Facing:    state.Vec2{X: 1},
			Health:    def.MaxHealth,
			MaxHealth: def.MaxHealth,
			Radius:    def.Radius,
			MoveSpeed: def.MoveSpeed,
		},
		ContentID: def.ID,
		Archetype: ai.ArchetypeForContentID(def.ID, w.cfg.Assets),
		Stats: state.StatBlock{
			MaxHealth:       def.MaxHealth,
			MoveSpeed:       def.MoveSpeed,
			Damage:          def.Damage,
			AttackRange:     def.AttackRange,
			AttackCadence:   def.AttackCadence,
			ProjectileSpeed: def.ProjectileSpeed,
			XPValue:         def.XPValue,
		},
	}
	w.enemies = append(w.enemies, enemy)
	w.metrics.Add("enemies_spawned", 1)
}

// spawnBoss places the encounter boss on the outer spawn ring and starts its
// intro. Regular spawning continues underneath the fight.
func (w *World) spawnBoss() {
	w.bossSpawned = true
	def := w.resolveCreature(content.CreatureGravelord)
	slam := w.resolveAttack(content.AttackGravelordSlam)
	slamDamage := slam.Damage
	if slamDamage <= 0 {
		slamDamage = def.Damage
	}
	slamRadius := def.AttackRange
	for _, shape := range slam.Shapes {
		if shape.Kind == content.ShapeCircle && shape.Radius > 0 {
			slamRadius = shape.Radius
			break
		}
	}
	pos := w.ringPosition(spawnRingMax, spawnRingMax+60, def.Radius)
	w.boss = &state.Boss{
		Actor: state.Actor{
			ID:        w.allocID("boss"),
			Pos:       pos,
			Facing:    state.Vec2{X: 1},
			Health:    def.MaxHealth,
			MaxHealth: def.MaxHealth,
			Radius:    def.Radius,
			MoveSpeed: def.MoveSpeed,
		},
		ContentID: def.ID,
		Stats: state.StatBlock{
			MaxHealth:     def.MaxHealth,
			MoveSpeed:     def.MoveSpeed,
			Damage:        def.Damage,
			AttackRange:   def.AttackRange,
			AttackCadence: def.AttackCadence,
			XPValue:       def.XPValue,
		},
		SlamDamage: slamDamage,
		SlamRadius: slamRadius,
	}
	ai.EnterBoss(w.boss)
	lifecyclelog.BossSpawned(context.Background(), w.pub, w.step,
		logging.EntityRef{ID: w.boss.ID, Kind: logging.EntityKindBoss}, def.ID)
	w.metrics.Add("boss_spawns", 1)
}

// ringPosition picks a deterministic point on an annulus around the player,
// clamped into the arena.
func (w *World) ringPosition(minDist, maxDist, radius float64) state.Vec2 {
	angle := w.rng.Range(0, 2*math.Pi)
	dist := w.rng.Range(minDist, maxDist)
	pos := state.Vec2{
		X: w.player.Pos.X + math.Cos(angle)*dist,
		Y: w.player.Pos.Y + math.Sin(angle)*dist,
	}
	return w.clampToArena(pos, radius)
}
