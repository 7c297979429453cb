package world

import (
	"encoding/json"
	"testing"

	"hordebreak/server/internal/content"
	"hordebreak/server/internal/journal"
	"hordebreak/server/internal/sim"
	"hordebreak/server/internal/state"
)

func newTestWorld(seed int64) *World {
	return New(Config{Seed: seed})
}

// runScripted drives a world through a fixed command script: hold a movement
// direction, swing every swingEvery steps, and always pick the first draft
// option. Returns the accumulated event log.
func runScripted(t *testing.T, w *World, steps, swingEvery int) []journal.Event {
	t.Helper()
	var events []journal.Event
	if err := w.Apply(sim.Command{Type: sim.CommandMove, Move: &sim.MoveCommand{DX: 1, DY: 0.25}}); err != nil {
		t.Fatalf("apply move: %v", err)
	}
	for i := 0; i < steps; i++ {
		if w.DraftPending() {
			if err := w.Apply(sim.Command{Type: sim.CommandChooseUpgrade, Choose: &sim.ChooseUpgradeCommand{Index: 0}}); err != nil {
				t.Fatalf("apply choose: %v", err)
			}
		}
		if swingEvery > 0 && i%swingEvery == 0 {
			if err := w.Apply(sim.Command{Type: sim.CommandAttack, Attack: &sim.AttackCommand{AimX: 1, AimY: 0}}); err != nil {
				t.Fatalf("apply attack: %v", err)
			}
		}
		w.Step()
		events = append(events, w.DrainEvents()...)
	}
	return events
}

func TestDeterministicReplay(t *testing.T) {
	const steps = 900

	a := newTestWorld(99)
	b := newTestWorld(99)
	eventsA := runScripted(t, a, steps, 30)
	eventsB := runScripted(t, b, steps, 30)

	snapA, err := json.Marshal(a.Snapshot())
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	snapB, err := json.Marshal(b.Snapshot())
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	if string(snapA) != string(snapB) {
		t.Fatalf("replays diverged:\n%s\n%s", snapA, snapB)
	}
	if a.RNGState() != b.RNGState() {
		t.Fatalf("rng streams diverged: %d vs %d", a.RNGState(), b.RNGState())
	}
	if len(eventsA) != len(eventsB) {
		t.Fatalf("event logs diverged: %d vs %d entries", len(eventsA), len(eventsB))
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := newTestWorld(1)
	b := newTestWorld(2)
	runScripted(t, a, 600, 0)
	runScripted(t, b, 600, 0)

	snapA, _ := json.Marshal(a.Snapshot())
	snapB, _ := json.Marshal(b.Snapshot())
	if string(snapA) == string(snapB) {
		t.Fatal("different seeds produced identical worlds")
	}
}

func TestChargerRunsAreReproducible(t *testing.T) {
	catalog := content.DefaultCatalog()
	catalog.Spawns = []content.SpawnEntry{
		{CreatureID: content.CreatureChargerBrute, MinLevel: 1, Weight: 1},
	}
	cfg := Config{Seed: 7, Content: catalog}

	run := func() (*World, []journal.Event) {
		w := New(cfg)
		var events []journal.Event
		for i := 0; i < 3000; i++ {
			if w.DraftPending() {
				if err := w.Apply(sim.Command{Type: sim.CommandChooseUpgrade, Choose: &sim.ChooseUpgradeCommand{Index: 0}}); err != nil {
					t.Fatalf("apply choose: %v", err)
				}
			}
			w.Step()
			events = append(events, w.DrainEvents()...)
		}
		return w, events
	}

	a, eventsA := run()
	b, eventsB := run()

	snapA, _ := json.Marshal(a.Snapshot())
	snapB, _ := json.Marshal(b.Snapshot())
	if string(snapA) != string(snapB) {
		t.Fatalf("charger runs diverged:\n%s\n%s", snapA, snapB)
	}
	if len(eventsA) != len(eventsB) {
		t.Fatalf("charger event logs diverged: %d vs %d", len(eventsA), len(eventsB))
	}

	damage := 0
	for _, event := range eventsA {
		if event.Type == journal.EventDamageApplied && event.Target == playerID {
			damage++
		}
	}
	if damage == 0 {
		t.Fatal("expected at least one charger hit on the player")
	}
	if a.player.Health >= playerMaxHealth {
		over, _ := a.Over()
		if !over {
			t.Fatal("player took damage events but health never dropped")
		}
	}
}

func TestContactAloneDealsNoDamage(t *testing.T) {
	w := newTestWorld(5)
	def := content.DefaultCatalog()
	husk, _ := def.Creature(content.CreatureHusk)
	enemy := &state.Enemy{
		Actor: state.Actor{
			ID:        "enemy-test",
			Pos:       w.player.Pos.Add(state.Vec2{X: husk.Radius}),
			Health:    husk.MaxHealth,
			MaxHealth: husk.MaxHealth,
			Radius:    husk.Radius,
			MoveSpeed: husk.MoveSpeed,
		},
		ContentID: husk.ID,
		Stats: state.StatBlock{
			MaxHealth:     husk.MaxHealth,
			MoveSpeed:     husk.MoveSpeed,
			Damage:        husk.Damage,
			AttackRange:   husk.AttackRange,
			AttackCadence: husk.AttackCadence,
			XPValue:       husk.XPValue,
		},
	}
	w.enemies = append(w.enemies, enemy)

	// A melee windup is 0.45s; ten steps of pure overlap stay harmless.
	for i := 0; i < 10; i++ {
		w.Step()
	}
	if w.player.Health != playerMaxHealth {
		t.Fatalf("contact damaged the player: health %v", w.player.Health)
	}
	if state.Distance(w.player.Pos, enemy.Pos) < w.player.Radius+enemy.Radius-0.01 {
		t.Fatal("overlap was not separated")
	}
}

func TestGemCollectionLevelsUpAndPauses(t *testing.T) {
	w := newTestWorld(11)
	w.dropGem(w.player.Pos, 10)
	w.Step()

	if w.prog.Level != 2 {
		t.Fatalf("expected level 2 after a 10 XP gem, got %d", w.prog.Level)
	}
	if !w.DraftPending() {
		t.Fatal("expected a pending draft after leveling")
	}
	if got := len(w.PendingDraft()); got != 3 {
		t.Fatalf("expected 3 draft options, got %d", got)
	}

	before := w.Step64()
	w.Step()
	if w.Step64() != before {
		t.Fatal("step advanced while a draft was pending")
	}

	if err := w.ChooseUpgrade(0); err != nil {
		t.Fatalf("choose upgrade: %v", err)
	}
	if w.DraftPending() {
		t.Fatal("draft still pending after choosing")
	}
	w.Step()
	if w.Step64() != before+1 {
		t.Fatal("step did not resume after choosing")
	}

	events := w.DrainEvents()
	var sawLevel, sawDraft, sawChoice bool
	for _, event := range events {
		switch event.Type {
		case journal.EventLevelUp:
			sawLevel = true
		case journal.EventDraftRequested:
			sawDraft = true
		case journal.EventUpgradeChosen:
			sawChoice = true
		}
	}
	if !sawLevel || !sawDraft || !sawChoice {
		t.Fatalf("missing progression events: level=%v draft=%v choice=%v", sawLevel, sawDraft, sawChoice)
	}
}

func TestChooseUpgradeValidation(t *testing.T) {
	w := newTestWorld(3)
	if err := w.ChooseUpgrade(0); err == nil {
		t.Fatal("expected error with no draft pending")
	}
	w.dropGem(w.player.Pos, 10)
	w.Step()
	if err := w.ChooseUpgrade(-1); err == nil {
		t.Fatal("expected error for negative index")
	}
	if err := w.ChooseUpgrade(99); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if err := w.ChooseUpgrade(0); err != nil {
		t.Fatalf("valid choice rejected: %v", err)
	}
}

func TestMaxHealthUpgradeHeals(t *testing.T) {
	w := newTestWorld(4)
	w.player.Health = 50
	w.applyUpgrade(content.UpgradeDefinition{
		ID:      "thick-hide",
		Effects: content.StatDeltas{MaxHealthAdd: 20},
	})
	if w.player.MaxHealth != playerMaxHealth+20 {
		t.Fatalf("max health not raised: %v", w.player.MaxHealth)
	}
	if w.player.Health != 70 {
		t.Fatalf("heal not applied: %v", w.player.Health)
	}
}

func TestWeaponEvolutionSwapsProfile(t *testing.T) {
	w := newTestWorld(4)
	w.applyUpgrade(content.UpgradeDefinition{
		ID:       "soulreaver-pact",
		WeaponID: content.AttackSoulreaver,
	})
	if w.player.WeaponID != content.AttackSoulreaver {
		t.Fatalf("weapon id not swapped: %s", w.player.WeaponID)
	}
	if w.weapon.ID != content.AttackSoulreaver {
		t.Fatalf("active profile not swapped: %s", w.weapon.ID)
	}
}

func TestDamageNeverGoesNegative(t *testing.T) {
	w := newTestWorld(6)
	w.spawnEnemy()
	if len(w.enemies) != 1 {
		t.Fatalf("expected one enemy, got %d", len(w.enemies))
	}
	enemy := w.enemies[0]
	w.damageEnemy(enemy.ID, enemy.MaxHealth*10, playerID, state.DamagePhysical)
	if enemy.Health != 0 {
		t.Fatalf("enemy health went negative: %v", enemy.Health)
	}

	w.damagePlayer(playerMaxHealth*10, enemy.ID, state.DamagePhysical)
	if w.player.Health != 0 {
		t.Fatalf("player health went negative: %v", w.player.Health)
	}
}

func TestInvulnerabilityAbsorbsFollowup(t *testing.T) {
	w := newTestWorld(6)
	w.damagePlayer(10, "enemy-x", state.DamagePhysical)
	w.damagePlayer(10, "enemy-x", state.DamagePhysical)
	if w.player.Health != playerMaxHealth-10 {
		t.Fatalf("expected one hit to land, health %v", w.player.Health)
	}
}

func TestPlayerDeathEndsRun(t *testing.T) {
	w := newTestWorld(8)
	w.damagePlayer(playerMaxHealth, "enemy-x", state.DamagePhysical)
	over, victory := w.Over()
	if !over || victory {
		t.Fatalf("expected defeat, got over=%v victory=%v", over, victory)
	}

	before := w.Step64()
	w.Step()
	if w.Step64() != before {
		t.Fatal("world kept stepping after the run ended")
	}
}

func TestBossKillIsVictory(t *testing.T) {
	w := newTestWorld(8)
	w.spawnBoss()
	if w.boss == nil {
		t.Fatal("boss did not spawn")
	}
	bossID := w.boss.ID
	w.damageBoss(w.boss.MaxHealth, playerID, state.DamagePhysical)

	over, victory := w.Over()
	if !over || !victory {
		t.Fatalf("expected victory, got over=%v victory=%v", over, victory)
	}

	deaths := 0
	for _, event := range w.DrainEvents() {
		if event.Type == journal.EventEntityDied && event.Actor == bossID {
			deaths++
		}
	}
	if deaths != 1 {
		t.Fatalf("expected exactly one boss death event, got %d", deaths)
	}
}

func TestBossSlamResolvesFromAttackProfile(t *testing.T) {
	catalog := content.DefaultCatalog()
	for i := range catalog.Attacks {
		if catalog.Attacks[i].ID == content.AttackGravelordSlam {
			catalog.Attacks[i].Damage = 40
			catalog.Attacks[i].Shapes = []content.HitShape{{Kind: content.ShapeCircle, Radius: 120}}
		}
	}
	w := New(Config{Seed: 9, Content: catalog})
	w.spawnBoss()
	if w.boss.SlamDamage != 40 || w.boss.SlamRadius != 120 {
		t.Fatalf("slam not resolved from the attack profile: damage=%v radius=%v",
			w.boss.SlamDamage, w.boss.SlamRadius)
	}
}

func TestBossTriggerSpawnsOnce(t *testing.T) {
	w := New(Config{Seed: 9, BossTriggerSeconds: 0.1})
	for i := 0; i < 30; i++ {
		w.Step()
	}
	if w.boss == nil {
		t.Fatal("boss never spawned past the trigger time")
	}
	first := w.boss.ID
	for i := 0; i < 30; i++ {
		w.Step()
	}
	if w.boss.ID != first {
		t.Fatal("boss respawned")
	}
	if w.boss.Phase != state.BossIntro {
		t.Fatalf("expected the boss to still be in intro, got %s", w.boss.Phase)
	}
}

func TestProjectileExpiresAtRange(t *testing.T) {
	w := newTestWorld(10)
	w.spawnProjectile(content.ProjectileSpec{Speed: 200, Range: 50, Radius: 4},
		5, state.Vec2{X: 1}, state.OwnerEnemy, "enemy-x", nil)
	// Aim away from the player so the shot runs its full range.
	w.projectiles[0].Pos = state.Vec2{X: 100, Y: 100}

	for i := 0; i < 30; i++ {
		w.advanceProjectiles(sim.StepSeconds)
	}
	if w.projectiles[0].Life > 0 {
		t.Fatalf("projectile outlived its range: %v", w.projectiles[0].Life)
	}
	w.prune()
	if len(w.projectiles) != 0 {
		t.Fatal("expired projectile not pruned")
	}
}

func TestSpitterShotLeavesPoisonZone(t *testing.T) {
	w := newTestWorld(10)
	w.spawnProjectile(content.ProjectileSpec{Speed: 200, Range: 40, Radius: 4, Kind: string(state.DamagePoison)},
		4, state.Vec2{X: 1}, state.OwnerEnemy, "enemy-x",
		&content.ZoneEffect{Radius: 42, Duration: 3, TickInterval: 0.5, TickDamage: 3, SlowMultiplier: 0.6, Kind: string(state.DamagePoison)})
	w.projectiles[0].Pos = state.Vec2{X: 100, Y: 100}

	for i := 0; i < 30; i++ {
		w.advanceProjectiles(sim.StepSeconds)
	}
	if len(w.zones) != 1 {
		t.Fatalf("expected a poison zone at range end, got %d zones", len(w.zones))
	}
	zone := w.zones[0]
	if zone.Kind != state.DamagePoison || zone.SlowMultiplier != 0.6 {
		t.Fatalf("unexpected zone payload: kind=%s slow=%v", zone.Kind, zone.SlowMultiplier)
	}
}

func TestHostileZoneSlowsPlayer(t *testing.T) {
	w := newTestWorld(12)
	w.spawnZoneFromSpec(w.player.Pos, state.ZoneSpec{
		Radius:         60,
		Duration:       5,
		SlowMultiplier: 0.5,
		Kind:           state.DamagePoison,
	}, state.OwnerEnemy)

	start := w.player.Pos
	w.player.Intent = state.Vec2{X: 1}
	w.integratePlayer(sim.StepSeconds)
	moved := state.Distance(start, w.player.Pos)

	expected := playerMoveSpeed * 0.5 * sim.StepSeconds
	if diff := moved - expected; diff > 0.001 || diff < -0.001 {
		t.Fatalf("expected slowed travel %v, got %v", expected, moved)
	}
}

func TestContentFallbackEmitsEvent(t *testing.T) {
	w := New(Config{Seed: 13, PlayerWeaponID: "no-such-weapon"})
	if w.weapon.ID != "no-such-weapon" {
		t.Fatalf("fallback attack not substituted: %s", w.weapon.ID)
	}
	var sawMissing bool
	for _, event := range w.DrainEvents() {
		if event.Type == journal.EventContentMissing {
			sawMissing = true
		}
	}
	if !sawMissing {
		t.Fatal("missing content event not recorded")
	}
}
