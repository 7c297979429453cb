package combat

import (
	"math"

	"hordebreak/server/internal/content"
)

// TargetRef is the resolver's view of one attackable actor. Callers supply
// targets in a stable order so simultaneous multi-hit situations resolve
// identically across runs.
type TargetRef struct {
	ID     string
	X      float64
	Y      float64
	Radius float64
	IsBoss bool
}

// AttackConfig bundles one attack attempt with the callbacks the resolver
// invokes for its effects. Cooldown gating is the caller's responsibility.
type AttackConfig struct {
	AttackerID string
	X          float64
	Y          float64
	AimX       float64
	AimY       float64
	Damage     float64
	Profile    content.AttackProfile
	Targets    []TargetRef

	ApplyDamage     func(target TargetRef, amount float64)
	SpawnProjectile func(spec content.ProjectileSpec, damage float64, dirX, dirY float64, zone *content.ZoneEffect)
	SpawnZone       func(x, y float64, zone content.ZoneEffect)
	AttachTether    func(target TargetRef, tether content.TetherEffect)
	MoveSelf        func(dx, dy float64)
}

// ResolveAttack turns one attack attempt into hit-shape tests, damage
// application, and follow-on effects. Damage is applied at most once per
// target even when sub-shapes overlap. The hit list is returned for
// journaling.
func ResolveAttack(cfg AttackConfig) []TargetRef {
	dirX, dirY := unit(cfg.AimX, cfg.AimY)

	if cfg.Profile.Lunge > 0 && cfg.MoveSelf != nil {
		cfg.MoveSelf(dirX*cfg.Profile.Lunge, dirY*cfg.Profile.Lunge)
		cfg.X += dirX * cfg.Profile.Lunge
		cfg.Y += dirY * cfg.Profile.Lunge
	}

	if cfg.Profile.Projectile != nil {
		if cfg.SpawnProjectile != nil {
			cfg.SpawnProjectile(*cfg.Profile.Projectile, cfg.Damage, dirX, dirY, cfg.Profile.Zone)
		}
		return nil
	}

	hits := make([]TargetRef, 0, 4)
	hit := make(map[string]bool, len(cfg.Targets))
	for _, shape := range cfg.Profile.Shapes {
		for _, target := range cfg.Targets {
			if hit[target.ID] {
				continue
			}
			if !shapeContains(shape, cfg.X, cfg.Y, dirX, dirY, target) {
				continue
			}
			hit[target.ID] = true
			hits = append(hits, target)
		}
	}

	for _, target := range hits {
		if cfg.ApplyDamage != nil {
			cfg.ApplyDamage(target, cfg.Damage)
		}
		if cfg.Profile.Tether != nil && cfg.AttachTether != nil {
			cfg.AttachTether(target, *cfg.Profile.Tether)
		}
	}

	if cfg.Profile.Zone != nil && cfg.SpawnZone != nil {
		zx, zy := zonePoint(cfg.Profile, cfg.X, cfg.Y, dirX, dirY)
		cfg.SpawnZone(zx, zy, *cfg.Profile.Zone)
	}

	return hits
}

// shapeContains tests one hit-shape against a target's center point, expanded
// by the target radius for the simple radial shapes.
func shapeContains(shape content.HitShape, ox, oy, dirX, dirY float64, target TargetRef) bool {
	switch shape.Kind {
	case content.ShapeCircle:
		cx := ox + dirX*shape.Offset
		cy := oy + dirY*shape.Offset
		return CircleOverlap(cx, cy, shape.Radius, target.X, target.Y, target.Radius)
	case content.ShapeRect:
		return PointInOrientedRect(target.X, target.Y, ox, oy, dirX, dirY, shape.Length, shape.Width+2*target.Radius)
	case content.ShapeCone:
		return PointInCone(target.X, target.Y, ox, oy, dirX, dirY, shape.Radius+target.Radius, shape.HalfAngle)
	case content.ShapeArc:
		inner := shape.Inner - target.Radius
		if inner < 0 {
			inner = 0
		}
		return PointInArc(target.X, target.Y, ox, oy, dirX, dirY, inner, shape.Outer+target.Radius, shape.HalfAngle)
	case content.ShapeRing:
		inner := shape.Inner - target.Radius
		if inner < 0 {
			inner = 0
		}
		return PointInRing(target.X, target.Y, ox, oy, inner, shape.Outer+target.Radius)
	default:
		return false
	}
}

// zonePoint computes where a melee-profile zone lands: offset forward by the
// first shape's reach so the puddle appears where the swing connected.
func zonePoint(profile content.AttackProfile, ox, oy, dirX, dirY float64) (float64, float64) {
	reach := 0.0
	if len(profile.Shapes) > 0 {
		shape := profile.Shapes[0]
		switch shape.Kind {
		case content.ShapeCircle:
			reach = shape.Offset
		case content.ShapeRect:
			reach = shape.Length / 2
		case content.ShapeCone:
			reach = shape.Radius / 2
		case content.ShapeArc, content.ShapeRing:
			reach = (shape.Inner + shape.Outer) / 2
		}
	}
	return ox + dirX*reach, oy + dirY*reach
}

// unit normalizes an aim vector, defaulting to +X when no aim was supplied.
func unit(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 1, 0
	}
	return x / length, y / length
}
