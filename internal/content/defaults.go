package content

import "math"

// Built-in content ids. Enemy archetypes are derived from a stable hash of
// the creature id, so these names are part of the gameplay contract.
const (
	CreatureHusk         = "husk"
	CreaturePitArcher    = "pitarcher"
	CreatureSpitterling  = "spitterling"
	CreatureChargerBrute = "chargerbrute"
	CreatureGravelord    = "gravelord"

	AttackGravecleaver  = "gravecleaver"
	AttackSoulreaver    = "soulreaver"
	AttackBoneNova      = "bone-nova"
	AttackGravelordSlam = "gravelord-slam"
)

// DefaultCatalog returns the content set bundled with the server. External
// pipelines may substitute their own Provider; the simulation only sees the
// interface.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Creatures: []CreatureDefinition{
			{
				ID:            CreatureHusk,
				MaxHealth:     18,
				MoveSpeed:     62,
				Damage:        8,
				AttackRange:   30,
				AttackCadence: 1.4,
				Radius:        13,
				XPValue:       2,
			},
			{
				ID:              CreaturePitArcher,
				MaxHealth:       12,
				MoveSpeed:       54,
				Damage:          6,
				AttackRange:     240,
				AttackCadence:   2.2,
				Radius:          12,
				ProjectileSpeed: 220,
				XPValue:         3,
			},
			{
				ID:              CreatureSpitterling,
				MaxHealth:       14,
				MoveSpeed:       46,
				Damage:          4,
				AttackRange:     320,
				AttackCadence:   3.4,
				Radius:          13,
				ProjectileSpeed: 170,
				XPValue:         4,
			},
			{
				ID:            CreatureChargerBrute,
				MaxHealth:     30,
				MoveSpeed:     58,
				Damage:        12,
				AttackRange:   200,
				AttackCadence: 3.0,
				Radius:        16,
				XPValue:       5,
			},
			{
				ID:            CreatureGravelord,
				MaxHealth:     900,
				MoveSpeed:     44,
				Damage:        28,
				AttackRange:   150,
				AttackCadence: 4.0,
				Radius:        34,
				XPValue:       100,
			},
		},
		Attacks: []AttackProfile{
			{
				ID:      AttackGravecleaver,
				Damage:  10,
				Cadence: 0.9,
				Shapes: []HitShape{
					{Kind: ShapeCone, Radius: 80, HalfAngle: math.Pi / 4},
					{Kind: ShapeCircle, Radius: 26, Offset: 30},
				},
			},
			{
				ID:      AttackSoulreaver,
				Damage:  14,
				Cadence: 1.1,
				Shapes: []HitShape{
					{Kind: ShapeArc, Inner: 24, Outer: 110, HalfAngle: math.Pi / 3},
				},
				Tether: &TetherEffect{Duration: 2.0, TickInterval: 0.4, TickDamage: 2},
				Lunge:  18,
			},
			{
				ID:      AttackBoneNova,
				Damage:  9,
				Cadence: 1.3,
				Shapes: []HitShape{
					{Kind: ShapeRing, Inner: 20, Outer: 130},
				},
				Zone: &ZoneEffect{Radius: 46, Duration: 2.5, TickInterval: 0.5, TickDamage: 3, Kind: "physical"},
			},
			{
				ID:      AttackGravelordSlam,
				Damage:  28,
				Cadence: 4.0,
				Shapes: []HitShape{
					{Kind: ShapeCircle, Radius: 90},
				},
			},
		},
		Upgrades: []UpgradeDefinition{
			{ID: "whetstone", Name: "Whetstone", Rarity: RarityCommon, Effects: StatDeltas{DamageMult: 1.15}},
			{ID: "fleetfoot", Name: "Fleetfoot", Rarity: RarityCommon, Effects: StatDeltas{MoveSpeedMult: 1.10}},
			{ID: "thick-hide", Name: "Thick Hide", Rarity: RarityCommon, Effects: StatDeltas{MaxHealthAdd: 20}},
			{ID: "grave-magnet", Name: "Grave Magnet", Rarity: RarityUncommon, Effects: StatDeltas{PickupRadiusAdd: 40}},
			{ID: "quickened-arm", Name: "Quickened Arm", Rarity: RarityUncommon, Effects: StatDeltas{CadenceMult: 0.85}},
			{ID: "heavy-blows", Name: "Heavy Blows", Rarity: RarityRare, Prerequisites: []string{"whetstone"}, Effects: StatDeltas{DamageMult: 1.25}},
			{ID: "iron-pulse", Name: "Iron Pulse", Rarity: RarityRare, Prerequisites: []string{"thick-hide"}, Effects: StatDeltas{MaxHealthAdd: 35}},
			{ID: "soulreaver-pact", Name: "Soulreaver Pact", Rarity: RarityEpic, Prerequisites: []string{"heavy-blows"}, ExclusiveGroup: "weapon-evolution", Effects: StatDeltas{DamageMult: 1.1}, WeaponID: AttackSoulreaver},
			{ID: "bone-nova-rite", Name: "Bone Nova Rite", Rarity: RarityEpic, Prerequisites: []string{"quickened-arm"}, ExclusiveGroup: "weapon-evolution", Effects: StatDeltas{}, WeaponID: AttackBoneNova},
			{ID: "gravelords-bane", Name: "Gravelord's Bane", Rarity: RarityLegendary, Effects: StatDeltas{DamageMult: 1.5}},
		},
		Spawns: []SpawnEntry{
			{CreatureID: CreatureHusk, MinLevel: 1, Weight: 1.0},
			{CreatureID: CreaturePitArcher, MinLevel: 2, Weight: 0.6},
			{CreatureID: CreatureSpitterling, MinLevel: 3, Weight: 0.4},
			{CreatureID: CreatureChargerBrute, MinLevel: 4, Weight: 0.5},
		},
	}
}
