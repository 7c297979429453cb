// Package ai drives enemy behavior and the boss encounter. Every decision is
// a pure function of entity state, the player view, and the shared RNG
// stream, so replays with the same seed reproduce identical behavior.
package ai

import (
	"hash/fnv"

	"hordebreak/server/internal/content"
	"hordebreak/server/internal/state"
)

// ArchetypeForContentID derives an enemy archetype from a stable hash of its
// content identifier. The mapping never consumes the RNG stream: the same id
// always seeds the same behavior. When the asset index reports the sprite
// missing, seeding falls back to the simplest archetype rather than failing.
func ArchetypeForContentID(id string, assets content.AssetIndex) state.Archetype {
	if assets != nil && !assets.Has(id) {
		return state.ArchetypeMelee
	}
	hasher := fnv.New64a()
	hasher.Write([]byte(id))
	return state.Archetype(hasher.Sum64() % 4)
}

// PlayerView is the read-only slice of player state the directors consume.
type PlayerView struct {
	Pos   state.Vec2
	Alive bool
}

// StrikeIntent asks the world to apply one melee damage tick to the player if
// the player is still within range when the windup releases.
type StrikeIntent struct {
	Damage float64
	Range  float64
}

// FireIntent asks the world to spawn one projectile along a fixed aim vector
// captured at windup start.
type FireIntent struct {
	Dir    state.Vec2
	Damage float64
	Speed  float64
	Range  float64
	Radius float64
	// Poison marks spitter shots: a small direct hit plus a hazard zone at
	// the impact point.
	Poison bool
}

// Intent is the per-step output of one enemy's state machine: a desired
// velocity plus at most one attack.
type Intent struct {
	Move   state.Vec2
	Strike *StrikeIntent
	Fire   *FireIntent
}
