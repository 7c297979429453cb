package ai

import "hordebreak/server/internal/state"

const (
	meleeWindupSeconds   = 0.45
	rangedWindupSeconds  = 0.6
	spitterWindupSeconds = 1.0
	chargerWindupSeconds = 0.5
	chargerDashSeconds   = 0.35
	chargerDashSpeedMult = 3.2

	// Stand-off bands as fractions of attack range.
	rangedPreferredRatio  = 0.8
	rangedRetreatRatio    = 0.5
	spitterPreferredRatio = 0.9
	spitterRetreatRatio   = 0.65
)

// Update advances one enemy's archetype state machine by a fixed step and
// returns its movement and attack intent. All per-archetype timers decrement
// unconditionally every step and gate their transitions at zero.
func Update(enemy *state.Enemy, view PlayerView, dt float64) Intent {
	if enemy == nil || !enemy.Alive() {
		return Intent{}
	}
	enemy.Cooldown.Tick(dt)
	enemy.Windup.Tick(dt)
	enemy.DashLeft.Tick(dt)

	if !view.Alive {
		return Intent{}
	}

	switch enemy.Archetype {
	case state.ArchetypeMelee:
		return updateMelee(enemy, view)
	case state.ArchetypeRanged:
		return updateRanged(enemy, view, rangedWindupSeconds, rangedPreferredRatio, rangedRetreatRatio, false)
	case state.ArchetypeSpitter:
		return updateRanged(enemy, view, spitterWindupSeconds, spitterPreferredRatio, spitterRetreatRatio, true)
	case state.ArchetypeCharger:
		return updateCharger(enemy, view)
	default:
		return Intent{}
	}
}

func updateMelee(enemy *state.Enemy, view PlayerView) Intent {
	toPlayer := view.Pos.Sub(enemy.Pos)
	dist := toPlayer.Length()

	switch enemy.Phase {
	case state.EnemyTelegraph:
		// Stationary windup; the strike lands only if the player stayed close.
		if enemy.Windup.Ready() {
			enemy.Phase = state.EnemyApproach
			enemy.Cooldown.Arm(enemy.Stats.AttackCadence)
			return Intent{Strike: &StrikeIntent{Damage: enemy.Stats.Damage, Range: enemy.Stats.AttackRange}}
		}
		return Intent{}
	default:
		strikeReach := enemy.Stats.AttackRange + enemy.Radius
		if dist <= strikeReach && enemy.Cooldown.Ready() {
			enemy.Phase = state.EnemyTelegraph
			enemy.Windup.Arm(meleeWindupSeconds)
			enemy.Facing = toPlayer.Normalized()
			return Intent{}
		}
		dir := toPlayer.Normalized()
		enemy.Facing = dir
		return Intent{Move: dir.Scale(enemy.Stats.MoveSpeed)}
	}
}

func updateRanged(enemy *state.Enemy, view PlayerView, windup, preferredRatio, retreatRatio float64, poison bool) Intent {
	toPlayer := view.Pos.Sub(enemy.Pos)
	dist := toPlayer.Length()

	switch enemy.Phase {
	case state.EnemyTelegraph:
		// Aim vector was captured at windup start and is held fixed.
		if enemy.Windup.Ready() {
			enemy.Phase = state.EnemyApproach
			enemy.Cooldown.Arm(enemy.Stats.AttackCadence)
			return Intent{Fire: &FireIntent{
				Dir:    enemy.AimDir,
				Damage: enemy.Stats.Damage,
				Speed:  enemy.Stats.ProjectileSpeed,
				Range:  enemy.Stats.AttackRange,
				Radius: 6,
				Poison: poison,
			}}
		}
		return Intent{}
	default:
		if dist <= enemy.Stats.AttackRange && enemy.Cooldown.Ready() {
			enemy.Phase = state.EnemyTelegraph
			enemy.Windup.Arm(windup)
			enemy.AimDir = toPlayer.Normalized()
			enemy.Facing = enemy.AimDir
			return Intent{}
		}
		preferred := enemy.Stats.AttackRange * preferredRatio
		retreat := enemy.Stats.AttackRange * retreatRatio
		dir := toPlayer.Normalized()
		enemy.Facing = dir
		if dist > preferred {
			return Intent{Move: dir.Scale(enemy.Stats.MoveSpeed)}
		}
		if dist < retreat {
			return Intent{Move: dir.Scale(-enemy.Stats.MoveSpeed)}
		}
		return Intent{}
	}
}

func updateCharger(enemy *state.Enemy, view PlayerView) Intent {
	toPlayer := view.Pos.Sub(enemy.Pos)
	dist := toPlayer.Length()

	switch enemy.Phase {
	case state.EnemyTelegraph:
		if enemy.Windup.Ready() {
			enemy.Phase = state.EnemyDash
			enemy.DashLeft.Arm(chargerDashSeconds)
			enemy.DashDir = enemy.AimDir
			enemy.DashHit = false
		}
		return Intent{}
	case state.EnemyDash:
		if enemy.DashLeft.Ready() {
			enemy.Phase = state.EnemyApproach
			enemy.Cooldown.Arm(enemy.Stats.AttackCadence)
			return Intent{}
		}
		intent := Intent{Move: enemy.DashDir.Scale(enemy.Stats.MoveSpeed * chargerDashSpeedMult)}
		// The dash itself is the attack: one damage tick on contact.
		if !enemy.DashHit && dist <= enemy.Radius+chargerContactReach {
			enemy.DashHit = true
			intent.Strike = &StrikeIntent{Damage: enemy.Stats.Damage, Range: enemy.Radius + chargerContactReach}
		}
		return intent
	default:
		// Only trigger from distances the dash can fully cross, so every dash
		// carries its contact hit into the player. A point-blank charger still
		// dashes straight through.
		dashReach := enemy.Stats.MoveSpeed * chargerDashSpeedMult * chargerDashSeconds
		if dashReach > enemy.Stats.AttackRange {
			dashReach = enemy.Stats.AttackRange
		}
		if enemy.Cooldown.Ready() && dist <= dashReach {
			enemy.Phase = state.EnemyTelegraph
			enemy.Windup.Arm(chargerWindupSeconds)
			enemy.AimDir = toPlayer.Normalized()
			enemy.Facing = enemy.AimDir
			return Intent{}
		}
		dir := toPlayer.Normalized()
		enemy.Facing = dir
		return Intent{Move: dir.Scale(enemy.Stats.MoveSpeed)}
	}
}

// chargerContactReach pads the dash contact test so a glancing pass still
// connects at the fixed timestep.
const chargerContactReach = 18.0
