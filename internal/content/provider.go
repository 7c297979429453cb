package content

// Provider is the read-only data contract the simulation core consumes.
type Provider interface {
	Creature(id string) (CreatureDefinition, bool)
	Attack(id string) (AttackProfile, bool)
	UpgradeCatalog() []UpgradeDefinition
	SpawnTable(level int) []SpawnEntry
}

// AssetIndex answers whether a sprite asset exists for a content identifier.
// The core consults it only to seed enemy archetypes; no pixel data crosses
// this boundary.
type AssetIndex interface {
	Has(id string) bool
}

// AssetIndexFunc adapts a function into an AssetIndex.
type AssetIndexFunc func(id string) bool

// Has implements AssetIndex.
func (f AssetIndexFunc) Has(id string) bool {
	if f == nil {
		return true
	}
	return f(id)
}

// FallbackCreature returns the minimal safe stat block substituted when a
// creature id is missing from the provider. The simulation never halts on a
// bad content record; it plays a harmless husk instead.
func FallbackCreature(id string) CreatureDefinition {
	return CreatureDefinition{
		ID:            id,
		MaxHealth:     10,
		MoveSpeed:     40,
		Damage:        1,
		AttackRange:   24,
		AttackCadence: 2,
		Radius:        12,
		XPValue:       1,
	}
}

// FallbackAttack returns the minimal safe attack substituted when an attack
// id is missing from the provider.
func FallbackAttack(id string) AttackProfile {
	return AttackProfile{
		ID:      id,
		Damage:  1,
		Cadence: 1,
		Shapes:  []HitShape{{Kind: ShapeCircle, Radius: 24, Offset: 16}},
	}
}
