// Package content supplies the read-only data contract the simulation core
// consumes: creature base stats, weapon attack profiles, and the upgrade
// catalog. The struct tags double as the source for the machine-readable
// schema produced by cmd/contentschema.
package content

// Rarity tiers weight upgrade draft selection.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Weight returns the fixed draft weight for the tier. Unknown tiers fall back
// to the common weight so a bad content record cannot zero out a draft.
func (r Rarity) Weight() float64 {
	switch r {
	case RarityCommon:
		return 1.0
	case RarityUncommon:
		return 0.6
	case RarityRare:
		return 0.3
	case RarityEpic:
		return 0.15
	case RarityLegendary:
		return 0.08
	default:
		return 1.0
	}
}

// CreatureDefinition models one authored creature stat block.
type CreatureDefinition struct {
	ID              string  `json:"id" jsonschema:"title=Creature id,pattern=^[a-z0-9\\-]+$"`
	MaxHealth       float64 `json:"maxHealth" jsonschema:"minimum=1"`
	MoveSpeed       float64 `json:"moveSpeed" jsonschema:"minimum=0"`
	Damage          float64 `json:"damage" jsonschema:"minimum=0"`
	AttackRange     float64 `json:"attackRange" jsonschema:"minimum=0"`
	AttackCadence   float64 `json:"attackCadence" jsonschema:"description=Seconds between attacks,minimum=0"`
	Radius          float64 `json:"radius" jsonschema:"minimum=1"`
	ProjectileSpeed float64 `json:"projectileSpeed,omitempty" jsonschema:"minimum=0"`
	XPValue         int     `json:"xpValue" jsonschema:"minimum=0"`
}

// HitShapeKind enumerates the supported attack hit-shape geometries.
type HitShapeKind string

const (
	ShapeCircle HitShapeKind = "circle"
	ShapeRect   HitShapeKind = "rect"
	ShapeCone   HitShapeKind = "cone"
	ShapeArc    HitShapeKind = "arc"
	ShapeRing   HitShapeKind = "ring"
)

// HitShape describes one geometric region tested during attack resolution.
// Which fields apply depends on Kind: circle uses Radius (+Offset forward of
// the attacker), rect uses Length/Width, cone uses Radius/HalfAngle, arc uses
// Inner/Outer/HalfAngle, ring uses Inner/Outer.
type HitShape struct {
	Kind      HitShapeKind `json:"kind" jsonschema:"enum=circle,enum=rect,enum=cone,enum=arc,enum=ring"`
	Radius    float64      `json:"radius,omitempty" jsonschema:"minimum=0"`
	Inner     float64      `json:"inner,omitempty" jsonschema:"minimum=0"`
	Outer     float64      `json:"outer,omitempty" jsonschema:"minimum=0"`
	Length    float64      `json:"length,omitempty" jsonschema:"minimum=0"`
	Width     float64      `json:"width,omitempty" jsonschema:"minimum=0"`
	HalfAngle float64      `json:"halfAngle,omitempty" jsonschema:"description=Radians,minimum=0"`
	Offset    float64      `json:"offset,omitempty" jsonschema:"description=Forward offset from the attacker along the aim vector"`
}

// ProjectileSpec describes a simple ranged-projectile attack.
type ProjectileSpec struct {
	Speed  float64 `json:"speed" jsonschema:"minimum=1"`
	Range  float64 `json:"range" jsonschema:"minimum=1"`
	Radius float64 `json:"radius" jsonschema:"minimum=1"`
	Kind   string  `json:"kind,omitempty"`
}

// ZoneEffect spawns a lingering hazard at a computed impact point.
type ZoneEffect struct {
	Radius         float64 `json:"radius" jsonschema:"minimum=1"`
	Duration       float64 `json:"duration" jsonschema:"minimum=0"`
	TickInterval   float64 `json:"tickInterval" jsonschema:"minimum=0"`
	TickDamage     float64 `json:"tickDamage" jsonschema:"minimum=0"`
	SlowMultiplier float64 `json:"slowMultiplier,omitempty" jsonschema:"maximum=1"`
	Kind           string  `json:"damageKind,omitempty"`
}

// TetherEffect attaches a damage-over-time link to each hit target.
type TetherEffect struct {
	Duration     float64 `json:"duration" jsonschema:"minimum=0"`
	TickInterval float64 `json:"tickInterval" jsonschema:"minimum=0"`
	TickDamage   float64 `json:"tickDamage" jsonschema:"minimum=0"`
}

// AttackProfile models one authored attack: either a projectile spec or a
// structured profile of one or more hit-shapes with optional follow-on
// effects and self-movement.
type AttackProfile struct {
	ID         string          `json:"id" jsonschema:"title=Attack id,pattern=^[a-z0-9\\-]+$"`
	Damage     float64         `json:"damage" jsonschema:"minimum=0"`
	Cadence    float64         `json:"cadence" jsonschema:"description=Seconds between uses,minimum=0"`
	Shapes     []HitShape      `json:"shapes,omitempty"`
	Projectile *ProjectileSpec `json:"projectile,omitempty"`
	Zone       *ZoneEffect     `json:"zone,omitempty"`
	Tether     *TetherEffect   `json:"tether,omitempty"`
	Lunge      float64         `json:"lunge,omitempty" jsonschema:"description=Self-movement along the aim vector applied before hit testing"`
}

// StatDeltas enumerates the numeric effects an upgrade applies to the player.
type StatDeltas struct {
	DamageMult      float64 `json:"damageMult,omitempty"`
	CadenceMult     float64 `json:"cadenceMult,omitempty"`
	MoveSpeedMult   float64 `json:"moveSpeedMult,omitempty"`
	MaxHealthAdd    float64 `json:"maxHealthAdd,omitempty"`
	PickupRadiusAdd float64 `json:"pickupRadiusAdd,omitempty"`
}

// UpgradeDefinition models one entry of the upgrade/evolution catalog.
type UpgradeDefinition struct {
	ID             string     `json:"id" jsonschema:"title=Upgrade id,pattern=^[a-z0-9\\-]+$"`
	Name           string     `json:"name"`
	Rarity         Rarity     `json:"rarity"`
	Prerequisites  []string   `json:"prerequisites,omitempty"`
	ExclusiveGroup string     `json:"exclusiveGroup,omitempty"`
	Effects        StatDeltas `json:"effects"`
	WeaponID       string     `json:"weaponId,omitempty" jsonschema:"description=Evolution: replaces the player's weapon when chosen"`
}

// SpawnEntry weights one creature inside the level-gated spawn table.
type SpawnEntry struct {
	CreatureID string  `json:"creatureId"`
	MinLevel   int     `json:"minLevel" jsonschema:"minimum=1"`
	Weight     float64 `json:"weight" jsonschema:"minimum=0"`
}

// Catalog is the complete designer-authored content set.
type Catalog struct {
	Creatures []CreatureDefinition `json:"creatures"`
	Attacks   []AttackProfile      `json:"attacks"`
	Upgrades  []UpgradeDefinition  `json:"upgrades"`
	Spawns    []SpawnEntry         `json:"spawns"`

	creaturesByID map[string]CreatureDefinition
	attacksByID   map[string]AttackProfile
}

// index builds the lookup maps; safe to call repeatedly.
func (c *Catalog) index() {
	if c.creaturesByID != nil {
		return
	}
	c.creaturesByID = make(map[string]CreatureDefinition, len(c.Creatures))
	for _, def := range c.Creatures {
		c.creaturesByID[def.ID] = def
	}
	c.attacksByID = make(map[string]AttackProfile, len(c.Attacks))
	for _, def := range c.Attacks {
		c.attacksByID[def.ID] = def
	}
}

// Creature implements Provider.
func (c *Catalog) Creature(id string) (CreatureDefinition, bool) {
	if c == nil {
		return CreatureDefinition{}, false
	}
	c.index()
	def, ok := c.creaturesByID[id]
	return def, ok
}

// Attack implements Provider.
func (c *Catalog) Attack(id string) (AttackProfile, bool) {
	if c == nil {
		return AttackProfile{}, false
	}
	c.index()
	def, ok := c.attacksByID[id]
	return def, ok
}

// UpgradeCatalog implements Provider.
func (c *Catalog) UpgradeCatalog() []UpgradeDefinition {
	if c == nil {
		return nil
	}
	return c.Upgrades
}

// SpawnTable implements Provider, returning the entries unlocked at the given
// level in authored order.
func (c *Catalog) SpawnTable(level int) []SpawnEntry {
	if c == nil {
		return nil
	}
	entries := make([]SpawnEntry, 0, len(c.Spawns))
	for _, entry := range c.Spawns {
		if entry.MinLevel <= level {
			entries = append(entries, entry)
		}
	}
	return entries
}
