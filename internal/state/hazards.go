package state

import "hordebreak/server/internal/sim"

// OwnerKind tags which side produced a projectile, zone, or tether.
type OwnerKind uint8

const (
	OwnerPlayer OwnerKind = iota
	OwnerEnemy
	OwnerBoss
)

// String names the owner for snapshots and logs.
func (k OwnerKind) String() string {
	switch k {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	case OwnerBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// DamageKind distinguishes damage sources for presentation and telemetry.
type DamageKind string

const (
	DamagePhysical DamageKind = "physical"
	DamagePoison   DamageKind = "poison"
)

// ZoneSpec describes the hazard zone a projectile spawns on impact.
type ZoneSpec struct {
	Radius         float64
	Duration       float64
	TickInterval   float64
	TickDamage     float64
	SlowMultiplier float64
	Kind           DamageKind
}

// Projectile is a traveling hazard. Life is measured in remaining travel
// distance so visual range stays independent of speed.
type Projectile struct {
	ID      string
	Pos     Vec2
	Vel     Vec2
	Radius  float64
	Life    float64
	Damage  float64
	Owner   OwnerKind
	OwnerID string
	Kind    DamageKind
	Zone    *ZoneSpec
}

// HazardZone is a stationary area applying periodic damage and an optional
// slow to overlapping actors until its life expires.
type HazardZone struct {
	ID             string
	Pos            Vec2
	Radius         float64
	Life           float64
	TickDamage     float64
	TickInterval   float64
	TickTimer      sim.Timer
	SlowMultiplier float64
	Owner          OwnerKind
	Kind           DamageKind
}

// PickupGem carries experience dropped by a defeated enemy. It drifts toward
// the player inside the attraction radius and expires if never collected.
type PickupGem struct {
	ID    string
	Pos   Vec2
	Vel   Vec2
	Value int
	Life  float64
}

// Tether is a periodic damage-over-time link between a hit target and the
// attacker, attached by weapon effects for a fixed duration.
type Tether struct {
	ID           string
	TargetID     string
	TargetIsBoss bool
	Remaining    float64
	TickDamage   float64
	TickInterval float64
	TickTimer    sim.Timer
}
