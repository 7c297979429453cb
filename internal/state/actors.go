package state

import "hordebreak/server/internal/sim"

// StatBlock carries the creature numbers resolved from content at spawn time.
// Copying them onto the entity keeps the hot path free of catalog lookups and
// makes a mid-run content reload harmless.
type StatBlock struct {
	MaxHealth       float64
	MoveSpeed       float64
	Damage          float64
	AttackRange     float64
	AttackCadence   float64
	ProjectileSpeed float64
	XPValue         int
}

// Actor captures the shared state for any living entity in the arena.
type Actor struct {
	ID        string  `json:"id"`
	Pos       Vec2    `json:"pos"`
	Facing    Vec2    `json:"facing"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"maxHealth"`
	Radius    float64 `json:"radius"`
	MoveSpeed float64 `json:"moveSpeed"`
}

// Alive reports whether the actor still has health.
func (a *Actor) Alive() bool {
	return a != nil && a.Health > 0
}

// PlayerBonuses accumulates the permanent stat deltas granted by chosen
// upgrades. Multipliers start at 1 and additions at 0.
type PlayerBonuses struct {
	DamageMult      float64
	CadenceMult     float64
	MoveSpeedMult   float64
	MaxHealthAdd    float64
	PickupRadiusAdd float64
}

// NewPlayerBonuses returns the identity bonus set.
func NewPlayerBonuses() PlayerBonuses {
	return PlayerBonuses{DamageMult: 1, CadenceMult: 1, MoveSpeedMult: 1}
}

// Player is the single controlled avatar. Exactly one exists per run.
type Player struct {
	Actor
	Intent          Vec2
	WeaponID        string
	AttackCooldown  sim.Timer
	Invulnerability sim.Timer
	Upgrades        []string
	Bonuses         PlayerBonuses

	// pendingAim holds a requested swing until the next step resolves it.
	PendingAttack bool
	PendingAim    Vec2
}

// Archetype is the closed set of enemy behavior categories.
type Archetype uint8

const (
	ArchetypeMelee Archetype = iota
	ArchetypeRanged
	ArchetypeSpitter
	ArchetypeCharger
)

// String names the archetype for snapshots and logs.
func (a Archetype) String() string {
	switch a {
	case ArchetypeMelee:
		return "melee"
	case ArchetypeRanged:
		return "ranged"
	case ArchetypeSpitter:
		return "spitter"
	case ArchetypeCharger:
		return "charger"
	default:
		return "unknown"
	}
}

// EnemyPhase tracks where an enemy is inside its archetype state machine.
type EnemyPhase uint8

const (
	// EnemyApproach covers default movement: closing, repositioning, wandering.
	EnemyApproach EnemyPhase = iota
	// EnemyTelegraph is the stationary windup before an attack resolves.
	EnemyTelegraph
	// EnemyDash is the charger's burst-movement window.
	EnemyDash
)

// Enemy is one hostile unit driven by the archetype director.
type Enemy struct {
	Actor
	ContentID string
	Archetype Archetype
	Phase     EnemyPhase
	Stats     StatBlock

	Cooldown sim.Timer
	Windup   sim.Timer
	DashLeft sim.Timer

	// AimDir is captured when a windup starts and held fixed until release.
	AimDir  Vec2
	DashDir Vec2
	// DashHit latches once per dash so a charger connects at most one tick.
	DashHit bool
}

// BossPhase enumerates the encounter state machine.
type BossPhase uint8

const (
	BossIntro BossPhase = iota
	BossChase
	BossTelegraph
	BossSlam
	BossRecover
)

// String names the phase for snapshots and events.
func (p BossPhase) String() string {
	switch p {
	case BossIntro:
		return "intro"
	case BossChase:
		return "chase"
	case BossTelegraph:
		return "telegraph"
	case BossSlam:
		return "slam"
	case BossRecover:
		return "recover"
	default:
		return "unknown"
	}
}

// Boss is the single encounter actor. At most one exists per run.
type Boss struct {
	Actor
	ContentID string
	Phase     BossPhase
	Stats     StatBlock

	PhaseTimer     sim.Timer
	AttackCooldown sim.Timer

	// Slam damage and radius come from the slam attack profile, resolved from
	// content at spawn.
	SlamDamage float64
	SlamRadius float64

	// SlamTarget is the player position captured at telegraph start. The slam
	// resolves against this point, not the player's live position; moving
	// during the telegraph dodges it.
	SlamTarget Vec2
	Enraged    bool
}
