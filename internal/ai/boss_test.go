package ai

import (
	"testing"

	"hordebreak/server/internal/state"
)

func testBoss() *state.Boss {
	boss := &state.Boss{
		Actor: state.Actor{
			ID:        "boss-1",
			Pos:       state.Vec2{X: 0, Y: 0},
			Health:    900,
			MaxHealth: 900,
			Radius:    34,
		},
		Stats: state.StatBlock{
			MaxHealth:     900,
			MoveSpeed:     44,
			Damage:        28,
			AttackRange:   150,
			AttackCadence: 4,
		},
		SlamDamage: 28,
		SlamRadius: 90,
	}
	EnterBoss(boss)
	return boss
}

func TestBossPhaseTotality(t *testing.T) {
	boss := testBoss()
	view := PlayerView{Pos: state.Vec2{X: 60, Y: 0}, Alive: true}

	seen := map[state.BossPhase]bool{state.BossIntro: true}
	slams := 0
	returnedToChase := false
	// Without external damage, repeated stepping must reach slam and loop
	// back to chase in finite steps.
	for i := 0; i < 3600 && !returnedToChase; i++ {
		intent := UpdateBoss(boss, view, testStep)
		if intent.Transition != nil {
			seen[intent.Transition.To] = true
			if intent.Transition.From == state.BossRecover && intent.Transition.To == state.BossChase {
				returnedToChase = true
			}
		}
		if intent.Slam != nil {
			slams++
		}
	}
	for _, phase := range []state.BossPhase{state.BossChase, state.BossTelegraph, state.BossSlam, state.BossRecover} {
		if !seen[phase] {
			t.Fatalf("phase %s never reached", phase)
		}
	}
	if !returnedToChase {
		t.Fatalf("boss never looped back to chase")
	}
	if slams != 1 {
		t.Fatalf("one full loop must produce exactly one slam, got %d", slams)
	}
}

func TestBossIntroHasNoMovementOrAttacks(t *testing.T) {
	boss := testBoss()
	view := PlayerView{Pos: state.Vec2{X: 10, Y: 0}, Alive: true}
	intent := UpdateBoss(boss, view, testStep)
	if intent.Move != (state.Vec2{}) || intent.Slam != nil {
		t.Fatalf("intro must be inert, got %+v", intent)
	}
	if boss.Phase != state.BossIntro {
		t.Fatalf("intro must hold for its duration")
	}
}

func TestBossSlamTargetsCapturedPoint(t *testing.T) {
	boss := testBoss()
	// Skip the intro.
	boss.Phase = state.BossChase
	boss.PhaseTimer.Clear()

	start := state.Vec2{X: 100, Y: 0}
	view := PlayerView{Pos: start, Alive: true}
	for i := 0; i < 600 && boss.Phase != state.BossTelegraph; i++ {
		UpdateBoss(boss, view, testStep)
	}
	if boss.Phase != state.BossTelegraph {
		t.Fatalf("boss never telegraphed")
	}
	if boss.SlamTarget != start {
		t.Fatalf("telegraph must capture the player position, got %+v", boss.SlamTarget)
	}

	// The player dodges during the telegraph; the slam must not track.
	dodged := PlayerView{Pos: state.Vec2{X: -300, Y: 300}, Alive: true}
	var slam *SlamIntent
	for i := 0; i < 600 && slam == nil; i++ {
		intent := UpdateBoss(boss, dodged, testStep)
		slam = intent.Slam
	}
	if slam == nil {
		t.Fatalf("telegraph never released a slam")
	}
	if slam.Target != start {
		t.Fatalf("slam must resolve against the captured point %+v, got %+v", start, slam.Target)
	}
	if slam.Damage != boss.SlamDamage || slam.Radius != boss.SlamRadius {
		t.Fatalf("slam must carry the resolved profile, got damage=%v radius=%v", slam.Damage, slam.Radius)
	}
}

func TestBossEnrageIsOneWay(t *testing.T) {
	boss := testBoss()
	boss.Phase = state.BossChase
	boss.PhaseTimer.Clear()
	boss.AttackCooldown.Arm(100) // keep it chasing
	view := PlayerView{Pos: state.Vec2{X: 400, Y: 0}, Alive: true}

	calm := UpdateBoss(boss, view, testStep)
	boss.Health = boss.MaxHealth * 0.25
	enraged := UpdateBoss(boss, view, testStep)
	if enraged.Move.Length() <= calm.Move.Length() {
		t.Fatalf("enrage must raise movement speed: %v vs %v", enraged.Move.Length(), calm.Move.Length())
	}
	if !boss.Enraged {
		t.Fatalf("enrage flag must latch")
	}

	// Healing back above the threshold must not revert the enrage.
	boss.Health = boss.MaxHealth
	UpdateBoss(boss, view, testStep)
	if !boss.Enraged {
		t.Fatalf("enrage is one-way and must never revert")
	}
}
