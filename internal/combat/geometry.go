// Package combat provides the geometric hit-testing and attack-resolution
// helpers shared by the world step. All helpers are pure functions over
// float64 coordinates so they stay deterministic and trivially testable.
package combat

import "math"

// CircleOverlap reports whether two circles intersect. Touching edges count
// as a hit, matching the deterministic collision policy.
func CircleOverlap(ax, ay, ar, bx, by, br float64) bool {
	dx := ax - bx
	dy := ay - by
	rsum := ar + br
	return dx*dx+dy*dy <= rsum*rsum
}

// SegmentCircleOverlap reports whether the segment (ax,ay)-(bx,by) passes
// within radius r of the point (cx,cy). Used for swept projectile tests so a
// fast projectile cannot tunnel through a target in one step.
func SegmentCircleOverlap(ax, ay, bx, by, cx, cy, r float64) bool {
	dx := bx - ax
	dy := by - ay
	lengthSq := dx*dx + dy*dy
	t := 0.0
	if lengthSq > 0 {
		t = ((cx-ax)*dx + (cy-ay)*dy) / lengthSq
		t = clamp(t, 0, 1)
	}
	nx := ax + t*dx
	ny := ay + t*dy
	ddx := cx - nx
	ddy := cy - ny
	return ddx*ddx+ddy*ddy <= r*r
}

// PointInCircle reports whether (px,py) lies within the circle.
func PointInCircle(px, py, cx, cy, r float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= r*r
}

// PointInOrientedRect reports whether the point lies inside a box extending
// length units forward of the origin along the unit direction (dirX,dirY),
// spanning width/2 to either side.
func PointInOrientedRect(px, py, ox, oy, dirX, dirY, length, width float64) bool {
	dx := px - ox
	dy := py - oy
	forward := dx*dirX + dy*dirY
	if forward < 0 || forward > length {
		return false
	}
	side := dx*-dirY + dy*dirX
	return math.Abs(side) <= width/2
}

// PointInCone reports whether the point lies inside an angular sector of the
// given radius centered on the unit direction with the given half-angle.
func PointInCone(px, py, ox, oy, dirX, dirY, radius, halfAngle float64) bool {
	dx := px - ox
	dy := py - oy
	distSq := dx*dx + dy*dy
	if distSq > radius*radius {
		return false
	}
	if distSq == 0 {
		return true
	}
	return withinHalfAngle(dx, dy, dirX, dirY, halfAngle)
}

// PointInRing reports whether the point lies inside the annulus between inner
// and outer radii.
func PointInRing(px, py, ox, oy, inner, outer float64) bool {
	dx := px - ox
	dy := py - oy
	distSq := dx*dx + dy*dy
	return distSq >= inner*inner && distSq <= outer*outer
}

// PointInArc reports whether the point lies inside an annulus sector: between
// inner and outer radii and within halfAngle of the unit direction.
func PointInArc(px, py, ox, oy, dirX, dirY, inner, outer, halfAngle float64) bool {
	if !PointInRing(px, py, ox, oy, inner, outer) {
		return false
	}
	dx := px - ox
	dy := py - oy
	if dx == 0 && dy == 0 {
		return inner == 0
	}
	return withinHalfAngle(dx, dy, dirX, dirY, halfAngle)
}

func withinHalfAngle(dx, dy, dirX, dirY, halfAngle float64) bool {
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return true
	}
	cos := (dx*dirX + dy*dirY) / dist
	cos = clamp(cos, -1, 1)
	return math.Acos(cos) <= halfAngle
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
