package world

import "hordebreak/server/internal/state"

// Snapshot is the full observable world state broadcast to subscribers after
// every frame. All fields are plain values; mutating a snapshot never touches
// the live world.
type Snapshot struct {
	Step    uint64  `json:"step"`
	Elapsed float64 `json:"elapsed"`
	Over    bool    `json:"over"`
	Victory bool    `json:"victory"`

	Player      PlayerSnapshot       `json:"player"`
	Enemies     []EnemySnapshot      `json:"enemies"`
	Boss        *BossSnapshot        `json:"boss,omitempty"`
	Projectiles []ProjectileSnapshot `json:"projectiles,omitempty"`
	Zones       []ZoneSnapshot       `json:"zones,omitempty"`
	Gems        []GemSnapshot        `json:"gems,omitempty"`
	Draft       []DraftOption        `json:"draft,omitempty"`
}

// PlayerSnapshot is the player's observable state plus progression.
type PlayerSnapshot struct {
	ID        string     `json:"id"`
	Pos       state.Vec2 `json:"pos"`
	Facing    state.Vec2 `json:"facing"`
	Health    float64    `json:"health"`
	MaxHealth float64    `json:"maxHealth"`
	WeaponID  string     `json:"weaponId"`
	Level     int        `json:"level"`
	XP        int        `json:"xp"`
	XPToNext  int        `json:"xpToNext"`
	Upgrades  []string   `json:"upgrades,omitempty"`
}

// EnemySnapshot is one hostile's observable state.
type EnemySnapshot struct {
	ID        string     `json:"id"`
	ContentID string     `json:"contentId"`
	Archetype string     `json:"archetype"`
	Pos       state.Vec2 `json:"pos"`
	Facing    state.Vec2 `json:"facing"`
	Health    float64    `json:"health"`
	MaxHealth float64    `json:"maxHealth"`
	Phase     uint8      `json:"phase"`
}

// BossSnapshot is the encounter boss's observable state.
type BossSnapshot struct {
	ID         string     `json:"id"`
	ContentID  string     `json:"contentId"`
	Pos        state.Vec2 `json:"pos"`
	Health     float64    `json:"health"`
	MaxHealth  float64    `json:"maxHealth"`
	Phase      string     `json:"phase"`
	SlamTarget state.Vec2 `json:"slamTarget"`
	Enraged    bool       `json:"enraged"`
}

// ProjectileSnapshot is one traveling hazard.
type ProjectileSnapshot struct {
	ID     string     `json:"id"`
	Pos    state.Vec2 `json:"pos"`
	Vel    state.Vec2 `json:"vel"`
	Radius float64    `json:"radius"`
	Owner  string     `json:"owner"`
	Kind   string     `json:"kind"`
}

// ZoneSnapshot is one lingering hazard zone.
type ZoneSnapshot struct {
	ID     string     `json:"id"`
	Pos    state.Vec2 `json:"pos"`
	Radius float64    `json:"radius"`
	Life   float64    `json:"life"`
	Owner  string     `json:"owner"`
	Kind   string     `json:"kind"`
}

// GemSnapshot is one uncollected experience gem.
type GemSnapshot struct {
	ID    string     `json:"id"`
	Pos   state.Vec2 `json:"pos"`
	Value int        `json:"value"`
}

// DraftOption is one upgrade on offer in the pending draft.
type DraftOption struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
}

// Snapshot captures the current observable state.
func (w *World) Snapshot() Snapshot {
	if w == nil {
		return Snapshot{}
	}
	snap := Snapshot{
		Step:    w.step,
		Elapsed: w.elapsed,
		Over:    w.over,
		Victory: w.victory,
		Player: PlayerSnapshot{
			ID:        w.player.ID,
			Pos:       w.player.Pos,
			Facing:    w.player.Facing,
			Health:    w.player.Health,
			MaxHealth: w.player.MaxHealth,
			WeaponID:  w.player.WeaponID,
			Level:     w.prog.Level,
			XP:        w.prog.XP,
			XPToNext:  w.prog.XPToNext,
			Upgrades:  append([]string(nil), w.player.Upgrades...),
		},
	}
	for _, enemy := range w.enemies {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			ID:        enemy.ID,
			ContentID: enemy.ContentID,
			Archetype: enemy.Archetype.String(),
			Pos:       enemy.Pos,
			Facing:    enemy.Facing,
			Health:    enemy.Health,
			MaxHealth: enemy.MaxHealth,
			Phase:     uint8(enemy.Phase),
		})
	}
	if w.boss != nil {
		snap.Boss = &BossSnapshot{
			ID:         w.boss.ID,
			ContentID:  w.boss.ContentID,
			Pos:        w.boss.Pos,
			Health:     w.boss.Health,
			MaxHealth:  w.boss.MaxHealth,
			Phase:      w.boss.Phase.String(),
			SlamTarget: w.boss.SlamTarget,
			Enraged:    w.boss.Enraged,
		}
	}
	for _, proj := range w.projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{
			ID:     proj.ID,
			Pos:    proj.Pos,
			Vel:    proj.Vel,
			Radius: proj.Radius,
			Owner:  proj.Owner.String(),
			Kind:   string(proj.Kind),
		})
	}
	for _, zone := range w.zones {
		snap.Zones = append(snap.Zones, ZoneSnapshot{
			ID:     zone.ID,
			Pos:    zone.Pos,
			Radius: zone.Radius,
			Life:   zone.Life,
			Owner:  zone.Owner.String(),
			Kind:   string(zone.Kind),
		})
	}
	for _, gem := range w.gems {
		snap.Gems = append(snap.Gems, GemSnapshot{ID: gem.ID, Pos: gem.Pos, Value: gem.Value})
	}
	for _, def := range w.pendingDraft {
		snap.Draft = append(snap.Draft, DraftOption{ID: def.ID, Name: def.Name, Rarity: string(def.Rarity)})
	}
	return snap
}
