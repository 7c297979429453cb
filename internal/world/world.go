// Package world owns the authoritative arena simulation: the single player,
// the enemy horde, the boss encounter, hazards, pickups, and progression. All
// mutation happens inside Step, one fixed slice at a time, so two worlds with
// the same seed and the same ordered command stream stay bit-identical.
package world

import (
	"context"
	"fmt"
	"math"

	"hordebreak/server/internal/ai"
	"hordebreak/server/internal/content"
	"hordebreak/server/internal/journal"
	"hordebreak/server/internal/progression"
	"hordebreak/server/internal/sim"
	"hordebreak/server/internal/state"
	"hordebreak/server/internal/telemetry"
	"hordebreak/server/logging"
	lifecyclelog "hordebreak/server/logging/lifecycle"
)

const (
	defaultWidth       = 1600.0
	defaultHeight      = 900.0
	defaultBossTrigger = 900.0

	playerID        = "player-1"
	playerRadius    = 14.0
	playerMaxHealth = 120.0
	playerMoveSpeed = 170.0

	// invulnSeconds is the post-hit grace window on the player.
	invulnSeconds = 0.4

	// contactFriction scales player movement while overlapping an enemy.
	// Contact itself never deals damage.
	contactFriction = 0.6
)

// Config tunes one run. Zero values fall back to defaults.
type Config struct {
	Seed               int64
	Width              float64
	Height             float64
	BossTriggerSeconds float64
	SpawnBaseInterval  float64
	SpawnMinInterval   float64
	DraftSize          int
	PlayerWeaponID     string

	Content   content.Provider
	Assets    content.AssetIndex
	Publisher logging.Publisher
	Metrics   telemetry.Metrics
}

func (c Config) normalized() Config {
	if c.Seed == 0 {
		c.Seed = sim.DefaultSeed
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.BossTriggerSeconds <= 0 {
		c.BossTriggerSeconds = defaultBossTrigger
	}
	if c.SpawnBaseInterval <= 0 {
		c.SpawnBaseInterval = spawnBaseInterval
	}
	if c.SpawnMinInterval <= 0 {
		c.SpawnMinInterval = spawnMinInterval
	}
	if c.DraftSize <= 0 {
		c.DraftSize = progression.DefaultDraftSize
	}
	if c.PlayerWeaponID == "" {
		c.PlayerWeaponID = content.AttackGravecleaver
	}
	if c.Content == nil {
		c.Content = content.DefaultCatalog()
	}
	if c.Publisher == nil {
		c.Publisher = logging.NopPublisher()
	}
	if c.Metrics == nil {
		c.Metrics = telemetry.NopMetrics()
	}
	return c
}

// World is the complete simulation state for one run.
type World struct {
	cfg     Config
	rng     *sim.RNG
	journal *journal.Journal
	pub     logging.Publisher
	metrics telemetry.Metrics

	step    uint64
	elapsed float64

	player *state.Player
	weapon content.AttackProfile

	enemies     []*state.Enemy
	boss        *state.Boss
	projectiles []*state.Projectile
	zones       []*state.HazardZone
	gems        []*state.PickupGem
	tethers     []*state.Tether

	prog         *progression.State
	pendingDraft []content.UpgradeDefinition

	spawnTimer  sim.Timer
	bossSpawned bool

	over    bool
	victory bool

	nextSerial uint64
}

// New builds a world for a fresh run and publishes its start event.
func New(cfg Config) *World {
	cfg = cfg.normalized()
	w := &World{
		cfg:     cfg,
		rng:     sim.NewRNG(sim.SeedValue(cfg.Seed, "world")),
		journal: journal.New(journal.DefaultCapacity),
		pub:     cfg.Publisher,
		metrics: cfg.Metrics,
		prog:    progression.NewState(),
	}
	w.player = &state.Player{
		Actor: state.Actor{
			ID:        playerID,
			Pos:       state.Vec2{X: cfg.Width / 2, Y: cfg.Height / 2},
			Facing:    state.Vec2{X: 1},
			Health:    playerMaxHealth,
			MaxHealth: playerMaxHealth,
			Radius:    playerRadius,
			MoveSpeed: playerMoveSpeed,
		},
		WeaponID: cfg.PlayerWeaponID,
		Bonuses:  state.NewPlayerBonuses(),
	}
	w.weapon = w.resolveAttack(cfg.PlayerWeaponID)
	w.spawnTimer.Arm(w.spawnInterval())
	lifecyclelog.RunStarted(context.Background(), w.pub, 0, uint64(cfg.Seed))
	return w
}

// Apply feeds one command into the world. Movement and attack intents take
// effect on the next step; upgrade choices resolve immediately because the
// step loop is suspended while a draft is pending.
func (w *World) Apply(cmd sim.Command) error {
	if w == nil || w.over {
		return nil
	}
	switch cmd.Type {
	case sim.CommandMove:
		if cmd.Move == nil {
			return fmt.Errorf("move command without payload")
		}
		w.player.Intent = state.Vec2{X: cmd.Move.DX, Y: cmd.Move.DY}.Normalized()
		return nil
	case sim.CommandAttack:
		if cmd.Attack == nil {
			return fmt.Errorf("attack command without payload")
		}
		w.player.PendingAttack = true
		w.player.PendingAim = state.Vec2{X: cmd.Attack.AimX, Y: cmd.Attack.AimY}
		return nil
	case sim.CommandChooseUpgrade:
		if cmd.Choose == nil {
			return fmt.Errorf("choose command without payload")
		}
		return w.ChooseUpgrade(cmd.Choose.Index)
	case sim.CommandQuit:
		w.endRun(false)
		return nil
	default:
		return fmt.Errorf("unknown command type %q", cmd.Type)
	}
}

// Step advances the simulation by exactly one fixed slice. It is a no-op
// while an upgrade draft is pending or after the run has ended.
func (w *World) Step() {
	if w == nil || w.over || len(w.pendingDraft) > 0 {
		return
	}
	dt := sim.StepSeconds
	w.step++
	w.elapsed += dt
	w.metrics.Store("world_step", w.step)

	w.player.AttackCooldown.Tick(dt)
	w.player.Invulnerability.Tick(dt)

	view := ai.PlayerView{Pos: w.player.Pos, Alive: w.player.Alive()}
	intents := make([]ai.Intent, len(w.enemies))
	for i, enemy := range w.enemies {
		intents[i] = ai.Update(enemy, view, dt)
	}
	var bossIntent ai.BossIntent
	if w.boss != nil {
		bossIntent = ai.UpdateBoss(w.boss, view, dt)
		if bossIntent.Transition != nil {
			w.recordBossTransition(*bossIntent.Transition)
		}
	}

	w.integrate(dt, intents, bossIntent)
	w.resolvePlayerAttack()
	w.resolveEnemyIntents(intents)
	w.resolveBossSlam(bossIntent)
	w.advanceProjectiles(dt)
	w.tickZones(dt)
	w.tickTethers(dt)
	w.updateGems(dt)
	w.updateSpawning(dt)
	w.prune()
}

// prune drops dead and expired entities, preserving the relative order of
// the survivors so iteration stays deterministic.
func (w *World) prune() {
	enemies := w.enemies[:0]
	for _, enemy := range w.enemies {
		if enemy.Alive() {
			enemies = append(enemies, enemy)
		}
	}
	w.enemies = enemies

	projectiles := w.projectiles[:0]
	for _, proj := range w.projectiles {
		if proj.Life > 0 {
			projectiles = append(projectiles, proj)
		}
	}
	w.projectiles = projectiles

	zones := w.zones[:0]
	for _, zone := range w.zones {
		if zone.Life > 0 {
			zones = append(zones, zone)
		}
	}
	w.zones = zones

	gems := w.gems[:0]
	for _, gem := range w.gems {
		if gem.Life > 0 {
			gems = append(gems, gem)
		}
	}
	w.gems = gems

	tethers := w.tethers[:0]
	for _, tether := range w.tethers {
		if tether.Remaining > 0 {
			tethers = append(tethers, tether)
		}
	}
	w.tethers = tethers

	if w.boss != nil && !w.boss.Alive() {
		w.boss = nil
	}
}

// DraftPending reports whether the step loop is suspended on a draft.
func (w *World) DraftPending() bool {
	return w != nil && len(w.pendingDraft) > 0
}

// PendingDraft returns the current draft options in offer order.
func (w *World) PendingDraft() []content.UpgradeDefinition {
	if w == nil {
		return nil
	}
	return w.pendingDraft
}

// Over reports whether the run has ended, and whether it ended in victory.
func (w *World) Over() (over, victory bool) {
	if w == nil {
		return false, false
	}
	return w.over, w.victory
}

// Step64 returns the current step counter.
func (w *World) Step64() uint64 {
	if w == nil {
		return 0
	}
	return w.step
}

// DrainEvents returns and clears the buffered gameplay events.
func (w *World) DrainEvents() []journal.Event {
	if w == nil {
		return nil
	}
	return w.journal.Drain()
}

// RNGState exposes the raw generator state for replay verification.
func (w *World) RNGState() uint64 {
	if w == nil {
		return 0
	}
	return w.rng.State()
}

// resolveAttack looks up an attack profile, substituting the safe fallback
// and recording the miss when the id does not resolve.
func (w *World) resolveAttack(id string) content.AttackProfile {
	profile, ok := w.cfg.Content.Attack(id)
	if ok {
		return profile
	}
	w.recordContentMissing(id, "attack")
	return content.FallbackAttack(id)
}

func (w *World) resolveCreature(id string) content.CreatureDefinition {
	def, ok := w.cfg.Content.Creature(id)
	if ok {
		return def
	}
	w.recordContentMissing(id, "creature")
	return content.FallbackCreature(id)
}

func (w *World) recordContentMissing(id, kind string) {
	w.journal.Append(journal.Event{
		Type:   journal.EventContentMissing,
		Step:   w.step,
		Actor:  id,
		Detail: kind,
	})
	lifecyclelog.ContentMissing(context.Background(), w.pub, w.step, id, kind)
	w.metrics.Add("content_missing", 1)
}

func (w *World) recordBossTransition(change ai.PhaseChange) {
	w.journal.Append(journal.Event{
		Type:   journal.EventBossPhaseChanged,
		Step:   w.step,
		Actor:  w.boss.ID,
		Detail: change.To.String(),
		IsBoss: true,
	})
	lifecyclelog.BossPhaseChanged(context.Background(), w.pub, w.step,
		logging.EntityRef{ID: w.boss.ID, Kind: logging.EntityKindBoss},
		change.From.String(), change.To.String())
}

// allocID issues the next sequential entity id for the given prefix.
func (w *World) allocID(prefix string) string {
	w.nextSerial++
	return fmt.Sprintf("%s-%d", prefix, w.nextSerial)
}

// clampToArena keeps a position inside the playable bounds, inset by radius.
func (w *World) clampToArena(pos state.Vec2, radius float64) state.Vec2 {
	pos.X = clamp(pos.X, radius, w.cfg.Width-radius)
	pos.Y = clamp(pos.Y, radius, w.cfg.Height-radius)
	return pos
}

func clamp(value, min, max float64) float64 {
	if max < min {
		return min
	}
	return math.Min(math.Max(value, min), max)
}
