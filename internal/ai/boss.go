package ai

import "hordebreak/server/internal/state"

const (
	bossIntroSeconds     = 2.5
	bossTelegraphSeconds = 1.1
	bossSlamSeconds      = 0.4
	bossRecoverSeconds   = 1.4

	// Enrage is a one-way transition at 30% health: faster movement, tighter
	// cadence, shorter telegraphs, for the rest of the encounter.
	enrageHealthFraction = 0.30
	enrageSpeedMult      = 1.4
	enrageCadenceMult    = 0.6
	enrageTelegraphMult  = 0.7
)

// PhaseChange records one boss phase transition for the event stream.
type PhaseChange struct {
	From state.BossPhase
	To   state.BossPhase
}

// SlamIntent asks the world to apply the slam's area damage once, against the
// point captured at telegraph start.
type SlamIntent struct {
	Target state.Vec2
	Radius float64
	Damage float64
}

// BossIntent is the per-step output of the encounter state machine.
type BossIntent struct {
	Move       state.Vec2
	Slam       *SlamIntent
	Transition *PhaseChange
}

// EnterBoss initializes a freshly spawned boss into its intro phase.
func EnterBoss(boss *state.Boss) {
	if boss == nil {
		return
	}
	boss.Phase = state.BossIntro
	boss.PhaseTimer.Arm(bossIntroSeconds)
}

// UpdateBoss advances the encounter state machine by one fixed step.
//
// The slam resolves against the position captured when the telegraph began,
// not the player's live position: moving during the telegraph dodges it. This
// mirrors the authored encounter design and must not be "fixed".
func UpdateBoss(boss *state.Boss, view PlayerView, dt float64) BossIntent {
	if boss == nil || !boss.Alive() {
		return BossIntent{}
	}
	boss.PhaseTimer.Tick(dt)
	boss.AttackCooldown.Tick(dt)

	if !boss.Enraged && boss.Health <= boss.MaxHealth*enrageHealthFraction {
		boss.Enraged = true
	}

	switch boss.Phase {
	case state.BossIntro:
		// Entrance window: no movement, no damage interactions.
		if boss.PhaseTimer.Ready() {
			return transition(boss, state.BossChase)
		}
		return BossIntent{}

	case state.BossChase:
		if !view.Alive {
			return BossIntent{}
		}
		toPlayer := view.Pos.Sub(boss.Pos)
		if boss.AttackCooldown.Ready() && toPlayer.Length() <= boss.Stats.AttackRange {
			boss.SlamTarget = view.Pos
			boss.PhaseTimer.Arm(bossTelegraphSeconds * telegraphMult(boss))
			return transition(boss, state.BossTelegraph)
		}
		dir := toPlayer.Normalized()
		boss.Facing = dir
		return BossIntent{Move: dir.Scale(boss.Stats.MoveSpeed * speedMult(boss))}

	case state.BossTelegraph:
		if boss.PhaseTimer.Ready() {
			boss.PhaseTimer.Arm(bossSlamSeconds)
			intent := transition(boss, state.BossSlam)
			intent.Slam = &SlamIntent{
				Target: boss.SlamTarget,
				Radius: boss.SlamRadius,
				Damage: boss.SlamDamage,
			}
			return intent
		}
		return BossIntent{}

	case state.BossSlam:
		if boss.PhaseTimer.Ready() {
			boss.PhaseTimer.Arm(bossRecoverSeconds)
			return transition(boss, state.BossRecover)
		}
		return BossIntent{}

	case state.BossRecover:
		// Stationary, vulnerable window.
		if boss.PhaseTimer.Ready() {
			boss.AttackCooldown.Arm(boss.Stats.AttackCadence * cadenceMult(boss))
			return transition(boss, state.BossChase)
		}
		return BossIntent{}

	default:
		return BossIntent{}
	}
}

func transition(boss *state.Boss, to state.BossPhase) BossIntent {
	from := boss.Phase
	boss.Phase = to
	return BossIntent{Transition: &PhaseChange{From: from, To: to}}
}

func speedMult(boss *state.Boss) float64 {
	if boss.Enraged {
		return enrageSpeedMult
	}
	return 1
}

func cadenceMult(boss *state.Boss) float64 {
	if boss.Enraged {
		return enrageCadenceMult
	}
	return 1
}

func telegraphMult(boss *state.Boss) float64 {
	if boss.Enraged {
		return enrageTelegraphMult
	}
	return 1
}
